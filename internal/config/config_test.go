package config_test

import (
	"path/filepath"
	"testing"

	"cubeview/internal/config"
)

func TestAspectRatio(t *testing.T) {
	got := config.AspectRatio()
	want := float32(900) / float32(480)
	if got != want {
		t.Errorf("expected aspect %f, got %f", want, got)
	}
}

func TestShaderPath(t *testing.T) {
	got := config.ShaderPath(config.CubeVertShader)
	want := filepath.Join("assets", "shaders", "cube.vert")
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSetFPSLimitClamps(t *testing.T) {
	orig := config.FPSLimit()
	defer config.SetFPSLimit(orig)

	tests := []struct {
		in, want int
	}{
		{60, 60},
		{-5, 0},
		{0, 0},
		{5000, 1000},
	}
	for _, tt := range tests {
		config.SetFPSLimit(tt.in)
		if got := config.FPSLimit(); got != tt.want {
			t.Errorf("SetFPSLimit(%d): expected %d, got %d", tt.in, tt.want, got)
		}
	}
}

func TestSetPacing(t *testing.T) {
	orig := config.Pacing()
	defer config.SetPacing(orig)

	config.SetPacing(config.PacingFixed)
	if config.Pacing() != config.PacingFixed {
		t.Fatalf("expected fixed pacing, got %v", config.Pacing())
	}
	config.SetPacing(config.PacingMode(42))
	if config.Pacing() != config.PacingAdaptive {
		t.Errorf("unknown mode should fall back to adaptive, got %v", config.Pacing())
	}
	if config.PacingFixed.String() != "fixed" {
		t.Errorf("unexpected String(): %s", config.PacingFixed)
	}
}
