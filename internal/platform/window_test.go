package platform_test

import (
	"testing"

	"cubeview/internal/input"
	"cubeview/internal/platform"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestContextHints(t *testing.T) {
	tests := []struct {
		name         string
		major, minor int
		profile      int
	}{
		{"3.1 has no profiles", 3, 1, glfw.OpenGLAnyProfile},
		{"3.2 core", 3, 2, glfw.OpenGLCoreProfile},
		{"4.1 core", 4, 1, glfw.OpenGLCoreProfile},
		{"2.1 legacy", 2, 1, glfw.OpenGLAnyProfile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hints := platform.ContextHints(tt.major, tt.minor)
			if hints[glfw.OpenGLProfile] != tt.profile {
				t.Errorf("expected profile %#x, got %#x", tt.profile, hints[glfw.OpenGLProfile])
			}
			if hints[glfw.ContextVersionMajor] != tt.major || hints[glfw.ContextVersionMinor] != tt.minor {
				t.Errorf("expected version %d.%d", tt.major, tt.minor)
			}
			if hints[glfw.OpenGLForwardCompatible] != glfw.True {
				t.Errorf("expected forward compatible context")
			}
			if hints[glfw.Resizable] != glfw.False {
				t.Errorf("expected fixed-size window")
			}
		})
	}
}

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		key    glfw.Key
		action glfw.Action
		want   input.Event
	}{
		{glfw.KeyEscape, glfw.Press, input.Event{Kind: input.EventKey, Key: input.KeyEscape, Pressed: true}},
		{glfw.KeyEscape, glfw.Repeat, input.Event{Kind: input.EventKey, Key: input.KeyEscape, Pressed: true, Repeat: true}},
		{glfw.KeyEscape, glfw.Release, input.Event{Kind: input.EventKey, Key: input.KeyEscape}},
		{glfw.KeyF, glfw.Press, input.Event{Kind: input.EventKey, Key: input.KeyF, Pressed: true}},
		{glfw.KeyQ, glfw.Press, input.Event{Kind: input.EventKey, Key: input.KeyUnknown, Pressed: true}},
	}
	for _, tt := range tests {
		if got := platform.KeyEvent(tt.key, tt.action); got != tt.want {
			t.Errorf("KeyEvent(%d, %d) = %+v, want %+v", tt.key, tt.action, got, tt.want)
		}
	}
}

func TestMouseButtonEvent(t *testing.T) {
	e, ok := platform.MouseButtonEvent(glfw.MouseButtonLeft, glfw.Press)
	if !ok || e.Kind != input.EventMouseButton || e.Button != input.MouseLeft || !e.Pressed {
		t.Errorf("unexpected left press %+v", e)
	}
	e, ok = platform.MouseButtonEvent(glfw.MouseButtonRight, glfw.Release)
	if !ok || e.Button != input.MouseRight || e.Pressed {
		t.Errorf("unexpected right release %+v", e)
	}
	if _, ok := platform.MouseButtonEvent(glfw.MouseButton5, glfw.Press); ok {
		t.Errorf("expected extra buttons to be dropped")
	}
}
