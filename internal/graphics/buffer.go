package graphics

import (
	"errors"
	"fmt"

	"cubeview/internal/gpu"
)

// MeshBuffer owns a vertex array and the buffer holding its positions.
// The data is uploaded once and never modified afterwards.
type MeshBuffer struct {
	dev         gpu.Device
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// NewMeshBuffer uploads tightly packed xyz positions and describes them as
// vertex attribute 0
func NewMeshBuffer(dev gpu.Device, vertices []float32) (*MeshBuffer, error) {
	if len(vertices) == 0 || len(vertices)%FloatsPerVertex != 0 {
		return nil, fmt.Errorf("mesh buffer: %d floats is not a whole number of vertices", len(vertices))
	}

	m := &MeshBuffer{
		dev:         dev,
		vertexCount: int32(len(vertices) / FloatsPerVertex),
	}
	m.vao = dev.GenVertexArray()
	m.vbo = dev.GenBuffer()
	if m.vao == 0 || m.vbo == 0 {
		m.Dispose()
		return nil, errors.New("mesh buffer: context refused vertex array allocation")
	}

	dev.BindVertexArray(m.vao)
	dev.BindArrayBuffer(m.vbo)
	dev.BufferData(vertices, gpu.StaticDraw)

	dev.EnableVertexAttribArray(0)
	dev.VertexAttribPointer(0, FloatsPerVertex, FloatsPerVertex*4, 0)

	// unset
	dev.BindArrayBuffer(0)
	dev.BindVertexArray(0)

	if err := dev.Err(); err != nil {
		m.Dispose()
		return nil, fmt.Errorf("mesh buffer: upload: %w", err)
	}
	return m, nil
}

// VertexCount returns the number of vertices drawn by Draw
func (m *MeshBuffer) VertexCount() int32 {
	return m.vertexCount
}

// Draw renders the whole mesh as a triangle list
func (m *MeshBuffer) Draw() {
	m.dev.BindVertexArray(m.vao)
	m.dev.DrawArrays(gpu.Triangles, 0, m.vertexCount)
	m.dev.BindVertexArray(0)
}

// Dispose releases the GPU objects. Safe to call more than once.
func (m *MeshBuffer) Dispose() {
	if m.vao != 0 {
		m.dev.DeleteVertexArray(m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		m.dev.DeleteBuffer(m.vbo)
		m.vbo = 0
	}
}
