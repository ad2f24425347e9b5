package overlay

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/chewxy/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultFontSize is the pixel size of the overlay font
const DefaultFontSize = 13

const (
	atlasWidth   = 256
	atlasPadding = 1
	// solidSize is the side of the opaque block at the atlas origin
	solidSize = 2
)

// Glyph describes a single character's placement and metrics within the atlas
type Glyph struct {
	// Pixel coordinates of the glyph bitmap in the atlas (top-left origin)
	AtlasX float32
	AtlasY float32
	Width  float32
	Height float32
	// Offset of the bitmap from the pen position on the baseline
	BearingX float32
	BearingY float32
	Advance  float32
}

// Atlas is a single-channel glyph image plus the metrics needed to lay out text.
// An opaque block at the origin lets untextured quads share the glyph texture.
type Atlas struct {
	Width      int
	Height     int
	Pix        []byte
	Glyphs     map[rune]Glyph
	Ascent     float32
	LineHeight float32
}

// DefaultAtlas bakes the printable ASCII range of Go Mono
func DefaultAtlas() (*Atlas, error) {
	return BuildAtlas(gomono.TTF, DefaultFontSize)
}

// BuildAtlas parses a TrueType/OpenType font and bakes printable ASCII into an atlas.
// The atlas height is the smallest power of two that fits every glyph.
func BuildAtlas(ttf []byte, pixels float64) (*Atlas, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: pixels, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	var runes []rune
	for r := rune(32); r <= 126; r++ {
		runes = append(runes, r)
	}

	// First pass: pack rows to find the required height
	type placed struct {
		r       rune
		x, y    int
		dr      image.Rectangle
		mask    image.Image
		maskp   image.Point
		advance fixed.Int26_6
	}
	var glyphs []placed
	offsetX, offsetY, rowHeight := solidSize+atlasPadding, 0, solidSize
	for _, r := range runes {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
		if !ok {
			continue
		}
		gw, gh := dr.Dx(), dr.Dy()
		if gw > 0 && offsetX+gw > atlasWidth {
			offsetX = 0
			offsetY += rowHeight + atlasPadding
			rowHeight = 0
		}
		glyphs = append(glyphs, placed{r: r, x: offsetX, y: offsetY, dr: dr, mask: mask, maskp: maskp, advance: advance})
		if gw == 0 || gh == 0 {
			continue
		}
		offsetX += gw + atlasPadding
		if gh > rowHeight {
			rowHeight = gh
		}
	}
	atlasHeight := nextPowerOfTwo(offsetY + rowHeight)

	// Second pass: render each glyph into the atlas and record metrics
	img := image.NewAlpha(image.Rect(0, 0, atlasWidth, atlasHeight))
	draw.Draw(img, image.Rect(0, 0, solidSize, solidSize), image.Opaque, image.Point{}, draw.Src)

	atlas := &Atlas{
		Width:      atlasWidth,
		Height:     atlasHeight,
		Glyphs:     make(map[rune]Glyph, len(glyphs)),
		Ascent:     float32(face.Metrics().Ascent.Ceil()),
		LineHeight: float32(face.Metrics().Height.Ceil()),
	}
	for _, g := range glyphs {
		gw, gh := g.dr.Dx(), g.dr.Dy()
		if gw > 0 && gh > 0 {
			draw.Draw(img, image.Rect(g.x, g.y, g.x+gw, g.y+gh), g.mask, g.maskp, draw.Src)
		}
		atlas.Glyphs[g.r] = Glyph{
			AtlasX:   float32(g.x),
			AtlasY:   float32(g.y),
			Width:    float32(gw),
			Height:   float32(gh),
			BearingX: float32(g.dr.Min.X),
			BearingY: float32(-g.dr.Min.Y),
			Advance:  math32.Round(float32(g.advance) / 64),
		}
	}
	atlas.Pix = img.Pix
	return atlas, nil
}

// glyph returns the metrics for r, falling back to '?' for runes outside the atlas
func (a *Atlas) glyph(r rune) (Glyph, bool) {
	if g, ok := a.Glyphs[r]; ok {
		return g, true
	}
	g, ok := a.Glyphs['?']
	return g, ok
}

// Measure returns the advance width of text in pixels
func (a *Atlas) Measure(text string) float32 {
	var width float32
	for _, r := range text {
		if g, ok := a.glyph(r); ok {
			width += g.Advance
		}
	}
	return width
}

// SolidUV returns the texture coordinate of the center of the opaque block
func (a *Atlas) SolidUV() (u, v float32) {
	return float32(solidSize) / 2 / float32(a.Width), float32(solidSize) / 2 / float32(a.Height)
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
