// Package gputest provides a recording gpu.Device for tests that run without
// a graphics context.
package gputest

import (
	"fmt"

	"cubeview/internal/gpu"

	"github.com/go-gl/mathgl/mgl32"
)

// DrawCall captures the pipeline state at the moment of a DrawArrays call
type DrawCall struct {
	Mode      gpu.Primitive
	First     int32
	Count     int32
	VAO       uint32
	Program   uint32
	Texture   uint32
	Polygon   gpu.PolygonMode
	DepthTest bool
	Blend     bool
	CullFace  bool
}

// AttribPointer records a VertexAttribPointer call
type AttribPointer struct {
	Index  uint32
	Size   int32
	Stride int32
	Offset int
}

// TextureImage records a CreateTexture upload
type TextureImage struct {
	Width, Height int32
	Pixels        []byte
}

// Device records every call and tracks the state a real context would hold
type Device struct {
	Calls []string

	// Transitions counts state calls that changed the tracked state
	Transitions int

	Enabled      map[gpu.Capability]bool
	Polygon      gpu.PolygonMode
	BlendSrc     gpu.BlendFactor
	BlendDst     gpu.BlendFactor
	ViewportRect [4]int32
	Clears       []gpu.ClearMask
	Color        mgl32.Vec4

	// CompileFail maps a stage to the log returned when compiling it
	CompileFail map[gpu.ShaderStage]string

	// LinkFail, when set, makes LinkProgram fail with this log
	LinkFail string

	// UniformNames lists the active uniforms of every linked program
	UniformNames []string

	// ZeroHandles makes GenVertexArray, GenBuffer and CreateTexture return 0
	ZeroHandles bool

	// Errors are returned by Err one per call
	Errors []error

	Program      uint32
	Attributes   []string
	VAO          uint32
	ArrayBuffer  uint32
	Uploads      [][]float32
	Usages       []gpu.BufferUsage
	Attribs      []AttribPointer
	EnabledAttrs []uint32
	Draws        []DrawCall
	Matrices     map[string]mgl32.Mat4
	Vectors      map[string]mgl32.Vec4
	Ints         map[string]int32
	Deleted      []string
	Textures     map[uint32]TextureImage
	Texture      uint32

	nextID   uint32
	locNames map[int32]string
}

// New returns a device whose programs expose the cube shader uniforms
func New() *Device {
	return &Device{
		Enabled:      make(map[gpu.Capability]bool),
		CompileFail:  make(map[gpu.ShaderStage]string),
		UniformNames: []string{"aModel", "aView", "aProjection"},
		Matrices:     make(map[string]mgl32.Mat4),
		Vectors:      make(map[string]mgl32.Vec4),
		Ints:         make(map[string]int32),
		Textures:     make(map[uint32]TextureImage),
		locNames:     make(map[int32]string),
	}
}

func (d *Device) record(format string, args ...any) {
	d.Calls = append(d.Calls, fmt.Sprintf(format, args...))
}

func (d *Device) id() uint32 {
	d.nextID++
	return d.nextID
}

// Reset forgets recorded calls and draws but keeps the tracked state
func (d *Device) Reset() {
	d.Calls = nil
	d.Draws = nil
	d.Clears = nil
	d.Transitions = 0
}

func (d *Device) setEnabled(c gpu.Capability, on bool) {
	if d.Enabled[c] != on {
		d.Transitions++
	}
	d.Enabled[c] = on
}

func (d *Device) Enable(c gpu.Capability) {
	d.record("Enable(%s)", c)
	d.setEnabled(c, true)
}

func (d *Device) Disable(c gpu.Capability) {
	d.record("Disable(%s)", c)
	d.setEnabled(c, false)
}

func (d *Device) BlendFunc(src, dst gpu.BlendFactor) {
	d.record("BlendFunc(%d,%d)", src, dst)
	if d.BlendSrc != src || d.BlendDst != dst {
		d.Transitions++
	}
	d.BlendSrc, d.BlendDst = src, dst
}

func (d *Device) PolygonMode(mode gpu.PolygonMode) {
	d.record("PolygonMode(%s)", mode)
	if d.Polygon != mode {
		d.Transitions++
	}
	d.Polygon = mode
}

func (d *Device) Viewport(x, y, width, height int32) {
	d.record("Viewport(%d,%d,%d,%d)", x, y, width, height)
	d.ViewportRect = [4]int32{x, y, width, height}
}

func (d *Device) ClearColor(r, g, b, a float32) {
	d.record("ClearColor")
	d.Color = mgl32.Vec4{r, g, b, a}
}

func (d *Device) Clear(mask gpu.ClearMask) {
	d.record("Clear(%d)", mask)
	d.Clears = append(d.Clears, mask)
}

func (d *Device) CompileShader(stage gpu.ShaderStage, source string) (uint32, error) {
	d.record("CompileShader(%s)", stage)
	if log, ok := d.CompileFail[stage]; ok {
		return 0, &gpu.CompileError{Stage: stage, Log: log}
	}
	return d.id(), nil
}

func (d *Device) LinkProgram(vertex, fragment uint32, attribs ...string) (uint32, error) {
	d.record("LinkProgram(%d,%d)", vertex, fragment)
	d.Attributes = append([]string(nil), attribs...)
	if d.LinkFail != "" {
		return 0, &gpu.LinkError{Log: d.LinkFail}
	}
	return d.id(), nil
}

func (d *Device) DeleteShader(shader uint32) {
	d.record("DeleteShader(%d)", shader)
	d.Deleted = append(d.Deleted, fmt.Sprintf("shader:%d", shader))
}

func (d *Device) DeleteProgram(program uint32) {
	d.record("DeleteProgram(%d)", program)
	d.Deleted = append(d.Deleted, fmt.Sprintf("program:%d", program))
}

func (d *Device) UseProgram(program uint32) {
	d.record("UseProgram(%d)", program)
	d.Program = program
}

// UniformLocation returns -1 for names outside UniformNames, like a driver
// does for unknown or optimized-away uniforms
func (d *Device) UniformLocation(program uint32, name string) int32 {
	d.record("UniformLocation(%s)", name)
	for i, n := range d.UniformNames {
		if n == name {
			loc := int32(program)*100 + int32(i)
			d.locNames[loc] = name
			return loc
		}
	}
	return -1
}

func (d *Device) UniformMatrix4(location int32, m mgl32.Mat4) {
	name := d.locNames[location]
	d.record("UniformMatrix4(%s)", name)
	d.Matrices[name] = m
}

func (d *Device) Uniform4f(location int32, v mgl32.Vec4) {
	name := d.locNames[location]
	d.record("Uniform4f(%s)", name)
	d.Vectors[name] = v
}

func (d *Device) Uniform1i(location int32, v int32) {
	name := d.locNames[location]
	d.record("Uniform1i(%s)", name)
	d.Ints[name] = v
}

func (d *Device) GenVertexArray() uint32 {
	d.record("GenVertexArray")
	if d.ZeroHandles {
		return 0
	}
	return d.id()
}

func (d *Device) GenBuffer() uint32 {
	d.record("GenBuffer")
	if d.ZeroHandles {
		return 0
	}
	return d.id()
}

func (d *Device) BindVertexArray(vao uint32) {
	d.record("BindVertexArray(%d)", vao)
	d.VAO = vao
}

func (d *Device) BindArrayBuffer(vbo uint32) {
	d.record("BindArrayBuffer(%d)", vbo)
	d.ArrayBuffer = vbo
}

func (d *Device) BufferData(data []float32, usage gpu.BufferUsage) {
	d.record("BufferData(%d)", len(data))
	d.Uploads = append(d.Uploads, append([]float32(nil), data...))
	d.Usages = append(d.Usages, usage)
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray(%d)", index)
	d.EnabledAttrs = append(d.EnabledAttrs, index)
}

func (d *Device) VertexAttribPointer(index uint32, size, stride int32, offset int) {
	d.record("VertexAttribPointer(%d,%d,%d,%d)", index, size, stride, offset)
	d.Attribs = append(d.Attribs, AttribPointer{Index: index, Size: size, Stride: stride, Offset: offset})
}

func (d *Device) DrawArrays(mode gpu.Primitive, first, count int32) {
	d.record("DrawArrays(%d,%d,%d)", mode, first, count)
	d.Draws = append(d.Draws, DrawCall{
		Mode:      mode,
		First:     first,
		Count:     count,
		VAO:       d.VAO,
		Program:   d.Program,
		Texture:   d.Texture,
		Polygon:   d.Polygon,
		DepthTest: d.Enabled[gpu.DepthTest],
		Blend:     d.Enabled[gpu.Blend],
		CullFace:  d.Enabled[gpu.CullFace],
	})
}

func (d *Device) DeleteVertexArray(vao uint32) {
	d.record("DeleteVertexArray(%d)", vao)
	d.Deleted = append(d.Deleted, fmt.Sprintf("vao:%d", vao))
}

func (d *Device) DeleteBuffer(vbo uint32) {
	d.record("DeleteBuffer(%d)", vbo)
	d.Deleted = append(d.Deleted, fmt.Sprintf("vbo:%d", vbo))
}

func (d *Device) CreateTexture(width, height int32, pixels []byte) uint32 {
	d.record("CreateTexture(%d,%d)", width, height)
	if d.ZeroHandles {
		return 0
	}
	id := d.id()
	d.Textures[id] = TextureImage{Width: width, Height: height, Pixels: append([]byte(nil), pixels...)}
	return id
}

func (d *Device) BindTexture(texture uint32) {
	d.record("BindTexture(%d)", texture)
	d.Texture = texture
}

func (d *Device) DeleteTexture(texture uint32) {
	d.record("DeleteTexture(%d)", texture)
	d.Deleted = append(d.Deleted, fmt.Sprintf("texture:%d", texture))
}

func (d *Device) Err() error {
	if len(d.Errors) == 0 {
		return nil
	}
	err := d.Errors[0]
	d.Errors = d.Errors[1:]
	return err
}

var _ gpu.Device = (*Device)(nil)
