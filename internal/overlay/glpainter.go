package overlay

import (
	"fmt"

	"cubeview/internal/gpu"
	"cubeview/internal/graphics"

	"github.com/go-gl/mathgl/mgl32"
)

// Overlay shader interface
const (
	AttribTexCoord    = "iTexCoord"
	AttribColor       = "iColor"
	UniformProjection = "uProjection"
	UniformGlyphs     = "uGlyphs"
)

// floatsPerVertex is position(2) + texcoord(2) + color(4)
const floatsPerVertex = 8

// GLPainter batches every quad of a frame into one dynamic buffer and draws
// it with a single call at End.
type GLPainter struct {
	dev     gpu.Device
	shader  *graphics.Shader
	atlas   *Atlas
	texture uint32
	vao     uint32
	vbo     uint32

	projection mgl32.Mat4
	vertices   []float32
}

// NewGLPainter uploads the atlas and loads the overlay shader from disk
func NewGLPainter(dev gpu.Device, atlas *Atlas, vertexPath, fragmentPath string) (*GLPainter, error) {
	shader, err := graphics.NewShader(dev, vertexPath, fragmentPath, graphics.AttribPosition, AttribTexCoord, AttribColor)
	if err != nil {
		return nil, fmt.Errorf("overlay shader: %w", err)
	}
	p, err := newGLPainter(dev, atlas, shader)
	if err != nil {
		shader.Dispose()
		return nil, err
	}
	return p, nil
}

// NewGLPainterFromSource is NewGLPainter with the shader sources in memory
func NewGLPainterFromSource(dev gpu.Device, atlas *Atlas, vertexSrc, fragmentSrc string) (*GLPainter, error) {
	shader, err := graphics.LoadShader(dev, vertexSrc, fragmentSrc, graphics.AttribPosition, AttribTexCoord, AttribColor)
	if err != nil {
		return nil, fmt.Errorf("overlay shader: %w", err)
	}
	p, err := newGLPainter(dev, atlas, shader)
	if err != nil {
		shader.Dispose()
		return nil, err
	}
	return p, nil
}

func newGLPainter(dev gpu.Device, atlas *Atlas, shader *graphics.Shader) (*GLPainter, error) {
	p := &GLPainter{
		dev:      dev,
		shader:   shader,
		atlas:    atlas,
		vertices: make([]float32, 0, 512*floatsPerVertex),
	}

	p.texture = dev.CreateTexture(int32(atlas.Width), int32(atlas.Height), atlas.Pix)
	p.vao = dev.GenVertexArray()
	p.vbo = dev.GenBuffer()
	if p.texture == 0 || p.vao == 0 || p.vbo == 0 {
		p.dispose()
		return nil, fmt.Errorf("overlay: failed to allocate GPU objects")
	}

	dev.BindVertexArray(p.vao)
	dev.BindArrayBuffer(p.vbo)
	dev.BufferData(nil, gpu.DynamicDraw)
	const stride = floatsPerVertex * 4
	dev.EnableVertexAttribArray(0)
	dev.VertexAttribPointer(0, 2, stride, 0)
	dev.EnableVertexAttribArray(1)
	dev.VertexAttribPointer(1, 2, stride, 2*4)
	dev.EnableVertexAttribArray(2)
	dev.VertexAttribPointer(2, 4, stride, 4*4)
	dev.BindArrayBuffer(0)
	dev.BindVertexArray(0)

	if err := dev.Err(); err != nil {
		p.dispose()
		return nil, fmt.Errorf("overlay: setup: %w", err)
	}
	return p, nil
}

// Begin starts a frame on a width x height pixel canvas
func (p *GLPainter) Begin(width, height float32) {
	p.vertices = p.vertices[:0]
	p.projection = mgl32.Ortho(0, width, height, 0, -1, 1)
}

func (p *GLPainter) FillRect(r Rect, color mgl32.Vec4) {
	u, v := p.atlas.SolidUV()
	p.quad(r.X, r.Y, r.X+r.W, r.Y+r.H, u, v, u, v, color)
}

func (p *GLPainter) Text(x, y float32, text string, color mgl32.Vec4) {
	baseline := y + p.atlas.Ascent
	aw, ah := float32(p.atlas.Width), float32(p.atlas.Height)
	for _, r := range text {
		g, ok := p.atlas.glyph(r)
		if !ok {
			continue
		}
		if g.Width > 0 && g.Height > 0 {
			x0 := x + g.BearingX
			y0 := baseline - g.BearingY
			p.quad(x0, y0, x0+g.Width, y0+g.Height,
				g.AtlasX/aw, g.AtlasY/ah, (g.AtlasX+g.Width)/aw, (g.AtlasY+g.Height)/ah, color)
		}
		x += g.Advance
	}
}

func (p *GLPainter) TextWidth(text string) float32 {
	return p.atlas.Measure(text)
}

func (p *GLPainter) LineHeight() float32 {
	return p.atlas.LineHeight
}

// End flushes the frame. It leaves fill mode and blending on and depth test
// and culling off; the next frame's pipeline pass restores the toggles.
func (p *GLPainter) End() {
	if len(p.vertices) == 0 {
		return
	}
	dev := p.dev
	dev.PolygonMode(gpu.Fill)
	dev.Disable(gpu.DepthTest)
	dev.Disable(gpu.CullFace)
	dev.Enable(gpu.Blend)
	dev.BlendFunc(gpu.SrcAlpha, gpu.OneMinusSrcAlpha)

	p.shader.Use()
	p.shader.SetMatrix4(UniformProjection, p.projection)
	p.shader.SetInt(UniformGlyphs, 0)
	dev.BindTexture(p.texture)

	dev.BindVertexArray(p.vao)
	dev.BindArrayBuffer(p.vbo)
	dev.BufferData(p.vertices, gpu.DynamicDraw)
	dev.DrawArrays(gpu.Triangles, 0, int32(len(p.vertices)/floatsPerVertex))
	dev.BindArrayBuffer(0)
	dev.BindVertexArray(0)
}

// VertexCount returns the number of vertices queued since Begin
func (p *GLPainter) VertexCount() int {
	return len(p.vertices) / floatsPerVertex
}

// Dispose releases the shader, buffers and texture
func (p *GLPainter) Dispose() {
	p.dispose()
	if p.shader != nil {
		p.shader.Dispose()
		p.shader = nil
	}
}

func (p *GLPainter) dispose() {
	if p.vbo != 0 {
		p.dev.DeleteBuffer(p.vbo)
		p.vbo = 0
	}
	if p.vao != 0 {
		p.dev.DeleteVertexArray(p.vao)
		p.vao = 0
	}
	if p.texture != 0 {
		p.dev.DeleteTexture(p.texture)
		p.texture = 0
	}
}

func (p *GLPainter) quad(x0, y0, x1, y1, u0, v0, u1, v1 float32, c mgl32.Vec4) {
	p.vertices = append(p.vertices,
		// triangle 1
		x0, y0, u0, v0, c[0], c[1], c[2], c[3],
		x1, y0, u1, v0, c[0], c[1], c[2], c[3],
		x1, y1, u1, v1, c[0], c[1], c[2], c[3],
		// triangle 2
		x0, y0, u0, v0, c[0], c[1], c[2], c[3],
		x1, y1, u1, v1, c[0], c[1], c[2], c[3],
		x0, y1, u0, v1, c[0], c[1], c[2], c[3],
	)
}

var _ Painter = (*GLPainter)(nil)
