package viewer

import (
	"testing"
	"time"

	"cubeview/internal/input"
)

func TestFPSCounter(t *testing.T) {
	c := fpsCounter{window: time.Second}
	start := time.Unix(0, 0)
	frame := time.Second / 50

	updated := 0
	for i := 0; i <= 50; i++ {
		if c.tick(start.Add(time.Duration(i) * frame)) {
			updated++
		}
	}
	if updated != 1 {
		t.Fatalf("expected one update per second, got %d", updated)
	}
	if c.fps < 50 || c.fps > 51.1 {
		t.Errorf("expected about 50 fps, got %.2f", c.fps)
	}
}

func TestRenderSettingsApplyAction(t *testing.T) {
	s := DefaultRenderSettings()
	if !s.ApplyAction(input.ActionToggleCulling) || s.Toggles.Culling {
		t.Errorf("expected culling toggled off")
	}
	if s.ApplyAction(input.ActionQuit) || s.ApplyAction(input.ActionNone) {
		t.Errorf("expected non-toggle actions to be ignored")
	}
}
