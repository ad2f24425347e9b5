package graphics_test

import (
	"errors"
	"reflect"
	"testing"

	"cubeview/internal/gpu"
	"cubeview/internal/gpu/gputest"
	"cubeview/internal/graphics"
)

func TestNewMeshBufferUploadsOnce(t *testing.T) {
	dev := gputest.New()
	m, err := graphics.NewMeshBuffer(dev, graphics.CubeVertices[:])
	if err != nil {
		t.Fatalf("NewMeshBuffer: %v", err)
	}
	if m.VertexCount() != 36 {
		t.Errorf("expected 36 vertices, got %d", m.VertexCount())
	}
	if len(dev.Uploads) != 1 || len(dev.Uploads[0]) != 108 {
		t.Fatalf("expected one upload of 108 floats, got %d uploads", len(dev.Uploads))
	}
	if dev.Usages[0] != gpu.StaticDraw {
		t.Errorf("expected static usage, got %d", dev.Usages[0])
	}
	want := []gputest.AttribPointer{{Index: 0, Size: 3, Stride: 12, Offset: 0}}
	if !reflect.DeepEqual(dev.Attribs, want) {
		t.Errorf("expected attrib %v, got %v", want, dev.Attribs)
	}
	if dev.VAO != 0 || dev.ArrayBuffer != 0 {
		t.Errorf("expected bindings reset, vao=%d vbo=%d", dev.VAO, dev.ArrayBuffer)
	}

	// Drawing must not touch the buffer contents again
	m.Draw()
	m.Draw()
	if len(dev.Uploads) != 1 {
		t.Errorf("draw re-uploaded data")
	}
}

func TestMeshBufferSetupOrder(t *testing.T) {
	dev := gputest.New()
	if _, err := graphics.NewMeshBuffer(dev, graphics.CubeVertices[:]); err != nil {
		t.Fatalf("NewMeshBuffer: %v", err)
	}
	want := []string{
		"GenVertexArray",
		"GenBuffer",
		"BindVertexArray(1)",
		"BindArrayBuffer(2)",
		"BufferData(108)",
		"EnableVertexAttribArray(0)",
		"VertexAttribPointer(0,3,12,0)",
		"BindArrayBuffer(0)",
		"BindVertexArray(0)",
	}
	if !reflect.DeepEqual(dev.Calls, want) {
		t.Errorf("expected %v, got %v", want, dev.Calls)
	}
}

func TestMeshBufferDraw(t *testing.T) {
	dev := gputest.New()
	m, err := graphics.NewMeshBuffer(dev, graphics.CubeVertices[:])
	if err != nil {
		t.Fatalf("NewMeshBuffer: %v", err)
	}
	dev.Reset()

	m.Draw()
	if len(dev.Draws) != 1 {
		t.Fatalf("expected 1 draw, got %d", len(dev.Draws))
	}
	d := dev.Draws[0]
	if d.Mode != gpu.Triangles || d.First != 0 || d.Count != 36 {
		t.Errorf("unexpected draw %+v", d)
	}
	if d.VAO == 0 {
		t.Errorf("draw issued without a bound vertex array")
	}
	if dev.VAO != 0 {
		t.Errorf("vertex array left bound after draw")
	}
}

func TestNewMeshBufferRejectsBadInput(t *testing.T) {
	for _, verts := range [][]float32{nil, {0, 1}, {0, 0, 0, 1}} {
		if _, err := graphics.NewMeshBuffer(gputest.New(), verts); err == nil {
			t.Errorf("expected error for %d floats", len(verts))
		}
	}
}

func TestNewMeshBufferAllocationFailure(t *testing.T) {
	dev := gputest.New()
	dev.ZeroHandles = true
	if _, err := graphics.NewMeshBuffer(dev, graphics.CubeVertices[:]); err == nil {
		t.Fatal("expected error when the context returns zero handles")
	}
	if len(dev.Uploads) != 0 {
		t.Errorf("uploaded data after failed allocation")
	}
}

func TestNewMeshBufferOutOfMemory(t *testing.T) {
	dev := gputest.New()
	dev.Errors = []error{gpu.ErrOutOfMemory}
	_, err := graphics.NewMeshBuffer(dev, graphics.CubeVertices[:])
	if !errors.Is(err, gpu.ErrOutOfMemory) {
		t.Fatalf("expected ErrOutOfMemory, got %v", err)
	}
	if len(dev.Deleted) != 2 {
		t.Errorf("expected vao and vbo released, got %v", dev.Deleted)
	}
}

func TestMeshBufferDisposeTwice(t *testing.T) {
	dev := gputest.New()
	m, err := graphics.NewMeshBuffer(dev, graphics.CubeVertices[:])
	if err != nil {
		t.Fatalf("NewMeshBuffer: %v", err)
	}
	m.Dispose()
	m.Dispose()
	if len(dev.Deleted) != 2 {
		t.Errorf("expected 2 deletions, got %v", dev.Deleted)
	}
}
