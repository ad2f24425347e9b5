package gpu_test

import (
	"errors"
	"fmt"
	"testing"

	"cubeview/internal/gpu"
)

func TestCompileErrorMessage(t *testing.T) {
	err := &gpu.CompileError{Stage: gpu.FragmentStage, Log: "0:3: syntax error\n\x00"}
	want := "failed to compile fragment shader: 0:3: syntax error"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestLinkErrorUnwrapsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("load cube shader: %w", &gpu.LinkError{Log: "missing main"})
	var le *gpu.LinkError
	if !errors.As(wrapped, &le) {
		t.Fatalf("expected LinkError in chain")
	}
	if le.Log != "missing main" {
		t.Errorf("unexpected log %q", le.Log)
	}
}

func TestGLErrorMessage(t *testing.T) {
	err := &gpu.GLError{Code: 0x0502}
	if err.Error() != "gpu: gl error 0x0502" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
