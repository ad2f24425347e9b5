// Package overlay draws the debug panel on top of the scene and edits the
// render settings through checkboxes and sliders.
package overlay

import (
	"fmt"
	"strings"

	"cubeview/internal/graphics"
	"cubeview/internal/input"
	"cubeview/internal/profiling"
	"cubeview/internal/viewer"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Panel geometry in window pixels
const (
	PanelX      = 10
	PanelY      = 10
	PanelWidth  = 300
	PanelHeight = 300

	titleHeight  = 20
	padding      = 8
	rowHeight    = 18
	separatorGap = 8
	boxSize      = 13
	labelGap     = 6
	trackWidth   = 170
	grabWidth    = 10
)

const (
	Title   = "Information"
	Version = "Cube Viewer ver 1.0"
)

// Slider IDs, one per camera axis
const (
	SliderCameraX = "camera.x"
	SliderCameraY = "camera.y"
	SliderCameraZ = "camera.z"
)

var (
	colorPanel     = mgl32.Vec4{0.06, 0.06, 0.06, 0.94}
	colorTitle     = mgl32.Vec4{0.16, 0.29, 0.48, 1}
	colorText      = mgl32.Vec4{1, 1, 1, 1}
	colorSeparator = mgl32.Vec4{0.43, 0.43, 0.5, 0.5}
	colorFrame     = mgl32.Vec4{0.16, 0.29, 0.48, 0.54}
	colorHovered   = mgl32.Vec4{0.26, 0.59, 0.98, 0.4}
	colorActive    = mgl32.Vec4{0.26, 0.59, 0.98, 0.67}
	colorCheck     = mgl32.Vec4{0.26, 0.59, 0.98, 1}
	colorGrab      = mgl32.Vec4{0.24, 0.52, 0.88, 1}
)

// Overlay is an immediate-mode debug panel. Pointer state is collected from
// events between frames and resolved against the widgets while rendering.
type Overlay struct {
	painter       Painter
	width, height float32
	panel         Rect

	mouseX, mouseY float32
	leftDown       bool

	// clicked is a left press inside the panel not yet consumed by a widget
	clicked        bool
	clickX, clickY float32

	// activeSlider holds the slider that captured the pointer until release
	activeSlider string
}

// New creates an overlay drawing through p on a width x height window
func New(p Painter, width, height float32) *Overlay {
	return &Overlay{
		painter: p,
		width:   width,
		height:  height,
		panel:   Rect{X: PanelX, Y: PanelY, W: PanelWidth, H: PanelHeight},
		mouseX:  -1,
		mouseY:  -1,
	}
}

// Panel returns the panel bounds
func (o *Overlay) Panel() Rect {
	return o.panel
}

// Dragging returns the ID of the slider being dragged, or ""
func (o *Overlay) Dragging() string {
	return o.activeSlider
}

// HandleEvent records pointer state and reports whether the panel consumed e.
// Keyboard events are never consumed.
func (o *Overlay) HandleEvent(e input.Event) bool {
	switch e.Kind {
	case input.EventCursor:
		o.mouseX, o.mouseY = float32(e.X), float32(e.Y)
		return o.activeSlider != "" || o.leftDown || o.hovered()
	case input.EventMouseButton:
		if e.Button != input.MouseLeft {
			return o.hovered()
		}
		if e.Pressed {
			if !o.hovered() {
				return false
			}
			o.leftDown = true
			o.clicked = true
			o.clickX, o.clickY = o.mouseX, o.mouseY
			return true
		}
		wasDown := o.leftDown
		o.leftDown = false
		return wasDown || o.activeSlider != "" || o.hovered()
	case input.EventScroll:
		return o.hovered()
	}
	return false
}

func (o *Overlay) hovered() bool {
	return o.panel.Contains(o.mouseX, o.mouseY)
}

// Render draws the panel and applies widget edits to s
func (o *Overlay) Render(s *viewer.RenderSettings, stats viewer.FrameStats) {
	p := o.painter
	p.Begin(o.width, o.height)
	defer p.End()

	p.FillRect(o.panel, colorPanel)
	title := Rect{X: o.panel.X, Y: o.panel.Y, W: o.panel.W, H: titleHeight}
	p.FillRect(title, colorTitle)
	p.Text(title.X+padding, o.textTop(title), Title, colorText)

	l := &layout{x: o.panel.X + padding, y: o.panel.Y + titleHeight + padding/2, w: o.panel.W - 2*padding}

	o.label(l, Version)
	o.separator(l)
	o.label(l, fmt.Sprintf("FPS: %.1f", stats.FPS))
	o.label(l, fmt.Sprintf("Display Size: (%.1f, %.1f)", float64(stats.DisplayWidth), float64(stats.DisplayHeight)))
	o.label(l, fmt.Sprintf("Mouse Position: (%.1f, %.1f)", stats.MouseX, stats.MouseY))
	o.separator(l)

	o.checkbox(l, "Depth Test", &s.Toggles.DepthTest)
	o.checkbox(l, "Blend", &s.Toggles.Blend)
	o.checkbox(l, "Wireframe", &s.Toggles.Wireframe)
	o.checkbox(l, "Culling", &s.Toggles.Culling)
	o.separator(l)

	o.slider(l, SliderCameraX, "Camera X", &s.Camera.X, -graphics.CameraLimit, graphics.CameraLimit)
	o.slider(l, SliderCameraY, "Camera Y", &s.Camera.Y, -graphics.CameraLimit, graphics.CameraLimit)
	o.slider(l, SliderCameraZ, "Camera Z", &s.Camera.Z, -graphics.CameraLimit, graphics.CameraLimit)
	o.separator(l)

	o.label(l, "Frame: "+profiling.FormatMs(stats.FrameTime))
	if stats.Phases != "" {
		o.label(l, strings.ReplaceAll(stats.Phases, "viewer.", ""))
	}

	// Presses that landed on no widget are dropped
	o.clicked = false
}

// layout stacks rows from the top of the panel
type layout struct {
	x, y, w float32
}

func (l *layout) next(h float32) Rect {
	r := Rect{X: l.x, Y: l.y, W: l.w, H: h}
	l.y += h
	return r
}

func (o *Overlay) textTop(row Rect) float32 {
	return row.Y + (row.H-o.painter.LineHeight())/2
}

func (o *Overlay) label(l *layout, text string) {
	row := l.next(rowHeight)
	o.painter.Text(row.X, o.textTop(row), text, colorText)
}

func (o *Overlay) separator(l *layout) {
	row := l.next(separatorGap)
	o.painter.FillRect(Rect{X: o.panel.X, Y: row.Y + row.H/2, W: o.panel.W, H: 1}, colorSeparator)
}

// takeClick consumes the pending press if it landed in r
func (o *Overlay) takeClick(r Rect) bool {
	if !o.clicked || o.activeSlider != "" || !r.Contains(o.clickX, o.clickY) {
		return false
	}
	o.clicked = false
	return true
}

func (o *Overlay) checkbox(l *layout, text string, value *bool) {
	row := l.next(rowHeight)
	box := Rect{X: row.X, Y: row.Y + (row.H-boxSize)/2, W: boxSize, H: boxSize}
	hit := Rect{X: row.X, Y: row.Y, W: boxSize + labelGap + o.painter.TextWidth(text), H: row.H}

	// Toggle on the press edge
	if o.takeClick(hit) {
		*value = !*value
	}

	frame := colorFrame
	if o.activeSlider == "" && hit.Contains(o.mouseX, o.mouseY) {
		frame = colorHovered
	}
	o.painter.FillRect(box, frame)
	if *value {
		o.painter.FillRect(box.Inset(3), colorCheck)
	}
	o.painter.Text(box.X+boxSize+labelGap, o.textTop(row), text, colorText)
}

func (o *Overlay) slider(l *layout, id, text string, value *float32, lo, hi float32) {
	row := l.next(rowHeight)
	track := Rect{X: row.X, Y: row.Y + 1, W: trackWidth, H: row.H - 2}

	if o.activeSlider == id {
		*value = sliderValue(track, o.mouseX, lo, hi)
		if !o.leftDown {
			o.activeSlider = ""
		}
	} else if o.takeClick(track) {
		// Begin drag
		o.activeSlider = id
		*value = sliderValue(track, o.clickX, lo, hi)
		if !o.leftDown {
			o.activeSlider = ""
		}
	}
	*value = math32.Max(lo, math32.Min(hi, *value))

	frame := colorFrame
	switch {
	case o.activeSlider == id:
		frame = colorActive
	case o.activeSlider == "" && track.Contains(o.mouseX, o.mouseY):
		frame = colorHovered
	}
	o.painter.FillRect(track, frame)

	t := (*value - lo) / (hi - lo)
	grab := Rect{X: track.X + 2 + t*(track.W-grabWidth-4), Y: track.Y + 2, W: grabWidth, H: track.H - 4}
	o.painter.FillRect(grab, colorGrab)

	valueText := fmt.Sprintf("%.3f", *value)
	o.painter.Text(track.X+(track.W-o.painter.TextWidth(valueText))/2, o.textTop(row), valueText, colorText)
	o.painter.Text(track.X+track.W+labelGap, o.textTop(row), text, colorText)
}

// sliderValue maps a pointer x onto [lo, hi] along the grab's travel
func sliderValue(track Rect, x, lo, hi float32) float32 {
	travel := track.W - grabWidth - 4
	t := (x - track.X - 2 - grabWidth/2) / travel
	t = math32.Max(0, math32.Min(1, t))
	return lo + t*(hi-lo)
}
