package graphics

import (
	"fmt"
	"os"

	"cubeview/internal/gpu"

	"github.com/go-gl/mathgl/mgl32"
)

// Attribute and uniform names shared by the cube shader pair
const (
	AttribPosition = "iPosition"

	UniformModel      = "aModel"
	UniformView       = "aView"
	UniformProjection = "aProjection"
)

// Shader represents a linked vertex+fragment program
type Shader struct {
	ID uint32

	dev       gpu.Device
	locations map[string]int32
}

// NewShader creates a new shader program from vertex and fragment shader source files
func NewShader(dev gpu.Device, vertexPath, fragmentPath string, attribs ...string) (*Shader, error) {
	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("could not read vertex shader file: %w", err)
	}

	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("could not read fragment shader file: %w", err)
	}

	return LoadShader(dev, string(vertexSource), string(fragmentSource), attribs...)
}

// LoadShader compiles both stages, links them and resolves the matrix uniforms.
// attribs are bound to locations 0..n-1 in order. Compile failures are
// returned as *gpu.CompileError, link failures as *gpu.LinkError.
func LoadShader(dev gpu.Device, vertexSrc, fragmentSrc string, attribs ...string) (*Shader, error) {
	vertexShader, err := dev.CompileShader(gpu.VertexStage, vertexSrc)
	if err != nil {
		return nil, err
	}
	fragmentShader, err := dev.CompileShader(gpu.FragmentStage, fragmentSrc)
	if err != nil {
		dev.DeleteShader(vertexShader)
		return nil, err
	}

	program, err := dev.LinkProgram(vertexShader, fragmentShader, attribs...)
	dev.DeleteShader(vertexShader)
	dev.DeleteShader(fragmentShader)
	if err != nil {
		return nil, err
	}

	s := &Shader{
		ID:        program,
		dev:       dev,
		locations: make(map[string]int32),
	}
	for _, name := range []string{UniformModel, UniformView, UniformProjection} {
		s.location(name)
	}
	return s, nil
}

// location resolves a uniform once; -1 means the program has no such uniform
func (s *Shader) location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := s.dev.UniformLocation(s.ID, name)
	s.locations[name] = loc
	return loc
}

// Use activates the shader program. It must precede the Set* calls.
func (s *Shader) Use() {
	s.dev.UseProgram(s.ID)
}

// SetMatrix4 sets a 4x4 matrix uniform
func (s *Shader) SetMatrix4(name string, m mgl32.Mat4) {
	if loc := s.location(name); loc >= 0 {
		s.dev.UniformMatrix4(loc, m)
	}
}

// SetVector4 sets a vec4 uniform
func (s *Shader) SetVector4(name string, v mgl32.Vec4) {
	if loc := s.location(name); loc >= 0 {
		s.dev.Uniform4f(loc, v)
	}
}

// SetInt sets an integer (or sampler) uniform
func (s *Shader) SetInt(name string, value int32) {
	if loc := s.location(name); loc >= 0 {
		s.dev.Uniform1i(loc, value)
	}
}

// SetMatrices uploads model, view and projection in one go
func (s *Shader) SetMatrices(model, view, projection mgl32.Mat4) {
	s.SetMatrix4(UniformModel, model)
	s.SetMatrix4(UniformView, view)
	s.SetMatrix4(UniformProjection, projection)
}

// Dispose deletes the program
func (s *Shader) Dispose() {
	if s.ID != 0 {
		s.dev.DeleteProgram(s.ID)
		s.ID = 0
	}
}
