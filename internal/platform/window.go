// Package platform owns the native window and its graphics context.
package platform

import (
	"fmt"

	"cubeview/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// WindowConfig describes the window and the context requested from the driver
type WindowConfig struct {
	Title    string
	Width    int
	Height   int
	GLMajor  int
	GLMinor  int
	Centered bool
}

// Window wraps a glfw window and turns its callbacks into input events.
// All methods must be called from the thread that called glfw.Init.
type Window struct {
	win   *glfw.Window
	queue *input.Queue
}

// ContextHints returns the glfw hints for an OpenGL context of the given
// version. Profiles only exist from 3.2 on, so older requests must use the
// any-profile hint or window creation fails.
func ContextHints(major, minor int) map[glfw.Hint]int {
	hints := map[glfw.Hint]int{
		glfw.ContextVersionMajor:     major,
		glfw.ContextVersionMinor:     minor,
		glfw.OpenGLForwardCompatible: glfw.True,
		glfw.OpenGLProfile:           glfw.OpenGLAnyProfile,
		glfw.Resizable:               glfw.False,
	}
	if major > 3 || (major == 3 && minor >= 2) {
		hints[glfw.OpenGLProfile] = glfw.OpenGLCoreProfile
	}
	return hints
}

// NewWindow creates the window, makes its context current and installs the
// input callbacks. glfw must already be initialized.
func NewWindow(cfg WindowConfig) (*Window, error) {
	glfw.DefaultWindowHints()
	for hint, value := range ContextHints(cfg.GLMajor, cfg.GLMinor) {
		glfw.WindowHint(hint, value)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window %dx%d (OpenGL %d.%d): %w", cfg.Width, cfg.Height, cfg.GLMajor, cfg.GLMinor, err)
	}
	win.MakeContextCurrent()

	// Disable V-Sync; the frame limiter paces the loop
	glfw.SwapInterval(0)

	if cfg.Centered {
		if monitor := glfw.GetPrimaryMonitor(); monitor != nil {
			if mode := monitor.GetVideoMode(); mode != nil {
				win.SetPos((mode.Width-cfg.Width)/2, (mode.Height-cfg.Height)/2)
			}
		}
	}

	w := &Window{win: win, queue: input.NewQueue()}
	w.installCallbacks()
	return w, nil
}

func (w *Window) installCallbacks() {
	w.win.SetCloseCallback(func(_ *glfw.Window) {
		w.queue.Push(input.Event{Kind: input.EventQuit})
	})

	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		w.queue.Push(KeyEvent(key, action))
	})

	w.win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if e, ok := MouseButtonEvent(button, action); ok {
			w.queue.Push(e)
		}
	})

	w.win.SetCursorPosCallback(func(_ *glfw.Window, xpos, ypos float64) {
		w.queue.Push(input.Event{Kind: input.EventCursor, X: xpos, Y: ypos})
	})

	w.win.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		w.queue.Push(input.Event{Kind: input.EventScroll, X: xoff, Y: yoff})
	})
}

// PollEvents pumps the native event loop and returns what arrived since the last call
func (w *Window) PollEvents() []input.Event {
	glfw.PollEvents()
	return w.queue.Drain()
}

// FramebufferSize returns the drawable size in pixels
func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// SwapBuffers presents the back buffer
func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

// Destroy releases the window and its context
func (w *Window) Destroy() {
	w.win.Destroy()
}

// KeyEvent converts a glfw key callback into an input event
func KeyEvent(key glfw.Key, action glfw.Action) input.Event {
	return input.Event{
		Kind:    input.EventKey,
		Key:     translateKey(key),
		Pressed: action != glfw.Release,
		Repeat:  action == glfw.Repeat,
	}
}

// MouseButtonEvent converts a glfw mouse button callback into an input event.
// Buttons beyond the middle one are dropped.
func MouseButtonEvent(button glfw.MouseButton, action glfw.Action) (input.Event, bool) {
	var b input.MouseButton
	switch button {
	case glfw.MouseButtonLeft:
		b = input.MouseLeft
	case glfw.MouseButtonRight:
		b = input.MouseRight
	case glfw.MouseButtonMiddle:
		b = input.MouseMiddle
	default:
		return input.Event{}, false
	}
	return input.Event{Kind: input.EventMouseButton, Button: b, Pressed: action == glfw.Press}, true
}

func translateKey(key glfw.Key) input.Key {
	switch key {
	case glfw.KeyEscape:
		return input.KeyEscape
	case glfw.KeyB:
		return input.KeyB
	case glfw.KeyC:
		return input.KeyC
	case glfw.KeyD:
		return input.KeyD
	case glfw.KeyF:
		return input.KeyF
	default:
		return input.KeyUnknown
	}
}
