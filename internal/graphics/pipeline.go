package graphics

import "cubeview/internal/gpu"

// RenderToggles are the four independent fixed-function switches
type RenderToggles struct {
	DepthTest bool
	Blend     bool
	Wireframe bool
	Culling   bool
}

// ApplyPipelineState maps the toggles to context state. It keeps no state of
// its own, so calling it every frame with the same toggles changes nothing.
func ApplyPipelineState(dev gpu.Device, t RenderToggles) {
	if t.DepthTest {
		dev.Enable(gpu.DepthTest)
	} else {
		dev.Disable(gpu.DepthTest)
	}

	if t.Blend {
		dev.Enable(gpu.Blend)
		dev.BlendFunc(gpu.SrcAlpha, gpu.OneMinusSrcAlpha)
	} else {
		dev.Disable(gpu.Blend)
	}

	if t.Wireframe {
		dev.PolygonMode(gpu.Line)
	} else {
		dev.PolygonMode(gpu.Fill)
	}

	if t.Culling {
		dev.Enable(gpu.CullFace)
	} else {
		dev.Disable(gpu.CullFace)
	}
}
