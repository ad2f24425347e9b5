package config

import (
	"path/filepath"
	"sync"
)

// Window and context parameters. The window is not resizable, so the aspect
// ratio used for the projection never changes.
const (
	WinWidth  = 900
	WinHeight = 480
	WinTitle  = "cubeview"

	GLMajor = 3
	GLMinor = 1
)

// Shader file paths, relative to the working directory
const (
	ShadersDir = "assets/shaders"

	CubeVertShader    = "cube.vert"
	CubeFragShader    = "cube.frag"
	OverlayVertShader = "overlay.vert"
	OverlayFragShader = "overlay.frag"
)

// AspectRatio returns the fixed window aspect ratio
func AspectRatio() float32 {
	return float32(WinWidth) / float32(WinHeight)
}

// ShaderPath joins a shader file name with ShadersDir
func ShaderPath(name string) string {
	return filepath.Join(ShadersDir, name)
}

// PacingMode selects how the frame limiter spends the remainder of a frame
type PacingMode int

const (
	// PacingAdaptive sleeps until a monotonic per-frame deadline
	PacingAdaptive PacingMode = iota
	// PacingFixed sleeps the whole frame budget after every frame
	PacingFixed
)

func (m PacingMode) String() string {
	switch m {
	case PacingAdaptive:
		return "adaptive"
	case PacingFixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// FrameSettings holds frame pacing configuration
type FrameSettings struct {
	mu       sync.RWMutex
	fpsLimit int
	pacing   PacingMode
}

var globalFrameSettings = &FrameSettings{
	fpsLimit: 60,
	pacing:   PacingAdaptive,
}

// FPSLimit returns the target frame rate; 0 disables pacing
func FPSLimit() int {
	globalFrameSettings.mu.RLock()
	defer globalFrameSettings.mu.RUnlock()
	return globalFrameSettings.fpsLimit
}

// SetFPSLimit sets the target frame rate. Values <= 0 disable pacing.
func SetFPSLimit(limit int) {
	globalFrameSettings.mu.Lock()
	defer globalFrameSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}
	globalFrameSettings.fpsLimit = limit
}

// Pacing returns the current pacing mode
func Pacing() PacingMode {
	globalFrameSettings.mu.RLock()
	defer globalFrameSettings.mu.RUnlock()
	return globalFrameSettings.pacing
}

// SetPacing sets the pacing mode; unknown modes fall back to adaptive
func SetPacing(mode PacingMode) {
	globalFrameSettings.mu.Lock()
	defer globalFrameSettings.mu.Unlock()

	if mode != PacingFixed {
		mode = PacingAdaptive
	}
	globalFrameSettings.pacing = mode
}
