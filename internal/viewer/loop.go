package viewer

import (
	"fmt"
	"log/slog"
	"time"

	"cubeview/internal/config"
	"cubeview/internal/gpu"
	"cubeview/internal/graphics"
	"cubeview/internal/input"
	"cubeview/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
)

// State is the lifecycle state of the frame loop
type State int

const (
	Running State = iota
	ShuttingDown
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case ShuttingDown:
		return "ShuttingDown"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Window is the presentation surface the loop drives
type Window interface {
	PollEvents() []input.Event
	FramebufferSize() (width, height int)
	SwapBuffers()
}

// Overlay draws the debug panel and may capture input
type Overlay interface {
	// HandleEvent reports whether the overlay consumed e
	HandleEvent(e input.Event) bool
	Render(settings *RenderSettings, stats FrameStats)
}

// Program is a linked shader program taking model/view/projection matrices
type Program interface {
	Use()
	SetMatrices(model, view, projection mgl32.Mat4)
}

// Mesh is an uploaded vertex buffer
type Mesh interface {
	Draw()
}

// Pacer blocks until the next frame should start
type Pacer interface {
	Wait()
}

// Components groups everything the loop needs. Overlay, Pacer, Bindings,
// Logger and Clock are optional.
type Components struct {
	Window   Window
	Device   gpu.Device
	Program  Program
	Mesh     Mesh
	Overlay  Overlay
	Pacer    Pacer
	Bindings *input.Bindings
	Logger   *slog.Logger
	Clock    func() time.Time
}

// Loop is the per-frame state machine
type Loop struct {
	window   Window
	dev      gpu.Device
	program  Program
	mesh     Mesh
	overlay  Overlay
	pacer    Pacer
	bindings *input.Bindings
	log      *slog.Logger
	now      func() time.Time
	profile  *profiling.Frame

	settings RenderSettings
	state    State
	camera   graphics.Camera

	// Timing
	frames     uint64
	fps        fpsCounter
	stats      FrameStats
	degenerate bool
}

// NewLoop creates a loop in the Running state with default settings
func NewLoop(c Components) *Loop {
	l := &Loop{
		window:   c.Window,
		dev:      c.Device,
		program:  c.Program,
		mesh:     c.Mesh,
		overlay:  c.Overlay,
		pacer:    c.Pacer,
		bindings: c.Bindings,
		log:      c.Logger,
		now:      c.Clock,
		settings: DefaultRenderSettings(),
		state:    Running,
		camera:   graphics.NewCamera(config.AspectRatio()),
	}
	if l.overlay == nil {
		l.overlay = noOverlay{}
	}
	if l.pacer == nil {
		l.pacer = noPacer{}
	}
	if l.bindings == nil {
		l.bindings = input.DefaultBindings()
	}
	if l.log == nil {
		l.log = slog.Default()
	}
	if l.now == nil {
		l.now = time.Now
	}
	l.profile = profiling.NewFrameWithClock(l.now)
	l.fps.window = time.Second
	return l
}

// State returns the current lifecycle state
func (l *Loop) State() State {
	return l.state
}

// Settings returns the loop-owned render settings
func (l *Loop) Settings() *RenderSettings {
	return &l.settings
}

// Stats returns the statistics gathered over the last completed frame
func (l *Loop) Stats() FrameStats {
	return l.stats
}

// Frames returns the number of frames presented so far
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Run ticks until the loop shuts down or a frame fails
func (l *Loop) Run() error {
	for l.state == Running {
		if err := l.Tick(); err != nil {
			l.state = ShuttingDown
			return err
		}
	}
	return nil
}

// Tick runs one iteration. A quit request moves the loop to ShuttingDown and
// returns before anything is drawn. Ticking a stopped loop does nothing.
func (l *Loop) Tick() error {
	if l.state != Running {
		return nil
	}
	l.profile.Reset()
	start := l.now()

	var quit bool
	func() { defer l.profile.Track("viewer.Events")(); quit = l.handleEvents() }()
	if quit {
		l.state = ShuttingDown
		l.log.Info("shutting down", "frames", l.frames)
		return nil
	}

	func() {
		defer l.profile.Track("viewer.Pipeline")()
		graphics.ApplyPipelineState(l.dev, l.settings.Toggles)
	}()

	width, height := l.window.FramebufferSize()
	func() {
		defer l.profile.Track("viewer.Clear")()
		l.dev.Viewport(0, 0, int32(width), int32(height))
		l.dev.ClearColor(1, 1, 1, 1)
		l.dev.Clear(gpu.ColorBuffer | gpu.DepthBuffer)
	}()

	l.checkCamera()
	model, view, projection := graphics.ComputeMatrices(l.settings.Camera, l.camera.AspectRatio)

	func() {
		defer l.profile.Track("viewer.Draw")()
		l.program.Use()
		l.program.SetMatrices(model, view, projection)
		l.mesh.Draw()
	}()

	l.stats.DisplayWidth = width
	l.stats.DisplayHeight = height
	func() { defer l.profile.Track("viewer.Overlay")(); l.overlay.Render(&l.settings, l.stats) }()

	func() { defer l.profile.Track("viewer.Present")(); l.window.SwapBuffers() }()

	if err := l.dev.Err(); err != nil {
		return fmt.Errorf("frame %d: %w", l.frames, err)
	}
	l.frames++
	l.updateStats(start)

	l.pacer.Wait()
	return nil
}

// handleEvents drains the window queue and reports whether quit was requested
func (l *Loop) handleEvents() bool {
	quit := false
	for _, e := range l.window.PollEvents() {
		if e.Kind == input.EventCursor {
			l.stats.MouseX, l.stats.MouseY = e.X, e.Y
		}
		if l.overlay.HandleEvent(e) {
			continue
		}
		action := l.bindings.ActionFor(e)
		if action == input.ActionQuit {
			quit = true
			continue
		}
		if l.settings.ApplyAction(action) {
			l.log.Debug("render toggle", "action", action, "toggles", l.settings.Toggles)
		}
	}
	return quit
}

// checkCamera warns once each time the eye enters the degenerate region
func (l *Loop) checkCamera() {
	degenerate := l.camera.Degenerate(l.settings.Camera)
	if degenerate && !l.degenerate {
		c := l.settings.Camera
		l.log.Warn("camera is degenerate, view matrix undefined", "x", c.X, "y", c.Y, "z", c.Z)
	}
	l.degenerate = degenerate
}

func (l *Loop) updateStats(start time.Time) {
	end := l.now()
	l.stats.FrameTime = end.Sub(start)
	l.stats.Phases = l.profile.TopN(2)
	if l.fps.tick(end) {
		l.stats.FPS = l.fps.fps
		l.log.Debug("fps", "fps", fmt.Sprintf("%.1f", l.fps.fps), "frame", profiling.FormatMs(l.stats.FrameTime))
	}
}

type noOverlay struct{}

func (noOverlay) HandleEvent(input.Event) bool { return false }
func (noOverlay) Render(*RenderSettings, FrameStats) {}

type noPacer struct{}

func (noPacer) Wait() {}
