package viewer

import (
	"cubeview/internal/graphics"
	"cubeview/internal/input"
)

// RenderSettings is the mutable per-frame state edited through the overlay.
// The loop owns it and lends it out by pointer during the overlay step only.
type RenderSettings struct {
	Toggles graphics.RenderToggles
	Camera  graphics.CameraParams
}

// DefaultRenderSettings enables every toggle and places the eye at (5, -5, 5)
func DefaultRenderSettings() RenderSettings {
	return RenderSettings{
		Toggles: graphics.RenderToggles{
			DepthTest: true,
			Blend:     true,
			Wireframe: true,
			Culling:   true,
		},
		Camera: graphics.CameraParams{X: 5, Y: -5, Z: 5},
	}
}

// ApplyAction flips the toggle bound to action and reports whether it did
func (s *RenderSettings) ApplyAction(action input.Action) bool {
	switch action {
	case input.ActionToggleDepthTest:
		s.Toggles.DepthTest = !s.Toggles.DepthTest
	case input.ActionToggleBlend:
		s.Toggles.Blend = !s.Toggles.Blend
	case input.ActionToggleWireframe:
		s.Toggles.Wireframe = !s.Toggles.Wireframe
	case input.ActionToggleCulling:
		s.Toggles.Culling = !s.Toggles.Culling
	default:
		return false
	}
	return true
}
