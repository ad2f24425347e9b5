package gpu

import (
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// GL_CONTEXT_LOST is only exported by the 4.5 bindings
const glContextLost = 0x0507

// GLDevice implements Device with OpenGL calls on the current context
type GLDevice struct {
	Version  string
	Renderer string
}

// NewGLDevice loads the OpenGL entry points for the context that is current
// on this thread. It must be called after the context is made current.
func NewGLDevice() (*GLDevice, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	return &GLDevice{
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
	}, nil
}

func glCapability(c Capability) uint32 {
	switch c {
	case Blend:
		return gl.BLEND
	case CullFace:
		return gl.CULL_FACE
	default:
		return gl.DEPTH_TEST
	}
}

func glBlendFactor(f BlendFactor) uint32 {
	switch f {
	case One:
		return gl.ONE
	case SrcAlpha:
		return gl.SRC_ALPHA
	case OneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	default:
		return gl.ZERO
	}
}

func (d *GLDevice) Enable(c Capability)  { gl.Enable(glCapability(c)) }
func (d *GLDevice) Disable(c Capability) { gl.Disable(glCapability(c)) }

func (d *GLDevice) BlendFunc(src, dst BlendFactor) {
	gl.BlendFunc(glBlendFactor(src), glBlendFactor(dst))
}

func (d *GLDevice) PolygonMode(mode PolygonMode) {
	if mode == Line {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		return
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

func (d *GLDevice) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }
func (d *GLDevice) ClearColor(r, g, b, a float32)      { gl.ClearColor(r, g, b, a) }

func (d *GLDevice) Clear(mask ClearMask) {
	var bits uint32
	if mask&ColorBuffer != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&DepthBuffer != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

// CompileShader compiles one stage and returns its handle or a *CompileError
func (d *GLDevice) CompileShader(stage ShaderStage, source string) (uint32, error) {
	shaderType := uint32(gl.VERTEX_SHADER)
	if stage == FragmentStage {
		shaderType = gl.FRAGMENT_SHADER
	}
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, &CompileError{Stage: stage, Log: log}
	}
	return shader, nil
}

// LinkProgram links two compiled stages and returns the program or a *LinkError
func (d *GLDevice) LinkProgram(vertex, fragment uint32, attribs ...string) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	for i, name := range attribs {
		gl.BindAttribLocation(program, uint32(i), gl.Str(name+"\x00"))
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, &LinkError{Log: log}
	}
	gl.DetachShader(program, vertex)
	gl.DetachShader(program, fragment)
	return program, nil
}

func (d *GLDevice) DeleteShader(shader uint32)   { gl.DeleteShader(shader) }
func (d *GLDevice) DeleteProgram(program uint32) { gl.DeleteProgram(program) }
func (d *GLDevice) UseProgram(program uint32)    { gl.UseProgram(program) }

func (d *GLDevice) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// UniformMatrix4 uploads m as-is; mgl32 matrices are already column-major
func (d *GLDevice) UniformMatrix4(location int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (d *GLDevice) Uniform4f(location int32, v mgl32.Vec4) {
	gl.Uniform4f(location, v[0], v[1], v[2], v[3])
}

func (d *GLDevice) Uniform1i(location int32, v int32) { gl.Uniform1i(location, v) }

func (d *GLDevice) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (d *GLDevice) GenBuffer() uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return vbo
}

func (d *GLDevice) BindVertexArray(vao uint32) { gl.BindVertexArray(vao) }
func (d *GLDevice) BindArrayBuffer(vbo uint32) { gl.BindBuffer(gl.ARRAY_BUFFER, vbo) }

func (d *GLDevice) BufferData(data []float32, usage BufferUsage) {
	glUsage := uint32(gl.STATIC_DRAW)
	if usage == DynamicDraw {
		glUsage = gl.DYNAMIC_DRAW
	}
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, glUsage)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), glUsage)
}

func (d *GLDevice) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

// VertexAttribPointer declares a float attribute; stride and offset are in bytes
func (d *GLDevice) VertexAttribPointer(index uint32, size, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, gl.FLOAT, false, stride, gl.PtrOffset(offset))
}

func (d *GLDevice) DrawArrays(mode Primitive, first, count int32) {
	glMode := uint32(gl.TRIANGLES)
	if mode == Lines {
		glMode = gl.LINES
	}
	gl.DrawArrays(glMode, first, count)
}

func (d *GLDevice) DeleteVertexArray(vao uint32) { gl.DeleteVertexArrays(1, &vao) }
func (d *GLDevice) DeleteBuffer(vbo uint32)      { gl.DeleteBuffers(1, &vbo) }

// CreateTexture uploads pixels as GL_RED with linear filtering and clamped edges
func (d *GLDevice) CreateTexture(width, height int32, pixels []byte) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	// Rows of a single-channel image are not 4-byte aligned
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, width, height, 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

func (d *GLDevice) BindTexture(texture uint32) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

func (d *GLDevice) DeleteTexture(texture uint32) { gl.DeleteTextures(1, &texture) }

// Err drains glGetError and maps the first code it saw
func (d *GLDevice) Err() error {
	var first uint32
	for i := 0; i < 16; i++ {
		code := gl.GetError()
		if code == gl.NO_ERROR {
			break
		}
		if first == 0 {
			first = code
		}
	}
	switch first {
	case 0:
		return nil
	case gl.OUT_OF_MEMORY:
		return ErrOutOfMemory
	case glContextLost:
		return ErrContextLost
	default:
		return &GLError{Code: first}
	}
}
