package overlay

import "github.com/go-gl/mathgl/mgl32"

// Rect is a screen-space rectangle in pixels with a top-left origin
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside r, edges included
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Inset shrinks r by d on every side
func (r Rect) Inset(d float32) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Painter draws the primitives the panel is made of. Calls between Begin and
// End form one frame; nothing reaches the screen before End.
type Painter interface {
	Begin(width, height float32)
	FillRect(r Rect, color mgl32.Vec4)
	// Text draws a single line whose top edge is at y
	Text(x, y float32, text string, color mgl32.Vec4)
	TextWidth(text string) float32
	LineHeight() float32
	End()
}
