// Package gpu describes the slice of the graphics context the viewer talks to.
// GLDevice implements it on top of OpenGL; gputest provides a recording fake.
package gpu

import "github.com/go-gl/mathgl/mgl32"

// Capability is a fixed-function pipeline switch
type Capability int

const (
	DepthTest Capability = iota
	Blend
	CullFace
)

func (c Capability) String() string {
	switch c {
	case DepthTest:
		return "DepthTest"
	case Blend:
		return "Blend"
	case CullFace:
		return "CullFace"
	default:
		return "Capability(?)"
	}
}

// PolygonMode is the rasterization mode, always applied to front and back faces
type PolygonMode int

const (
	Fill PolygonMode = iota
	Line
)

func (m PolygonMode) String() string {
	if m == Line {
		return "Line"
	}
	return "Fill"
}

// BlendFactor is a source or destination blend factor
type BlendFactor int

const (
	Zero BlendFactor = iota
	One
	SrcAlpha
	OneMinusSrcAlpha
)

// ClearMask selects the framebuffer planes cleared by Clear
type ClearMask uint32

const (
	ColorBuffer ClearMask = 1 << iota
	DepthBuffer
)

// ShaderStage identifies a programmable pipeline stage
type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	if s == FragmentStage {
		return "fragment"
	}
	return "vertex"
}

// Primitive is the topology used by DrawArrays
type Primitive int

const (
	Triangles Primitive = iota
	Lines
)

// BufferUsage hints how often buffer contents change
type BufferUsage int

const (
	StaticDraw BufferUsage = iota
	DynamicDraw
)

// Device is the graphics context. Every call is synchronous and must be made
// from the thread that owns the context.
type Device interface {
	// Pipeline state
	Enable(c Capability)
	Disable(c Capability)
	BlendFunc(src, dst BlendFactor)
	PolygonMode(mode PolygonMode)
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask ClearMask)

	// Programs
	CompileShader(stage ShaderStage, source string) (uint32, error)
	// LinkProgram binds attribs to locations 0..n-1 before linking
	LinkProgram(vertex, fragment uint32, attribs ...string) (uint32, error)
	DeleteShader(shader uint32)
	DeleteProgram(program uint32)
	UseProgram(program uint32)
	UniformLocation(program uint32, name string) int32
	UniformMatrix4(location int32, m mgl32.Mat4)
	Uniform4f(location int32, v mgl32.Vec4)
	Uniform1i(location int32, v int32)

	// Vertex storage
	GenVertexArray() uint32
	GenBuffer() uint32
	BindVertexArray(vao uint32)
	BindArrayBuffer(vbo uint32)
	BufferData(data []float32, usage BufferUsage)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size, stride int32, offset int)
	DrawArrays(mode Primitive, first, count int32)
	DeleteVertexArray(vao uint32)
	DeleteBuffer(vbo uint32)

	// Textures, all on unit 0
	// CreateTexture uploads a tightly packed single-channel image
	CreateTexture(width, height int32, pixels []byte) uint32
	BindTexture(texture uint32)
	DeleteTexture(texture uint32)

	// Err drains the context error queue and returns the first error, if any
	Err() error
}
