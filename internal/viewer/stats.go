package viewer

import "time"

// FrameStats is the read-only information shown by the overlay
type FrameStats struct {
	FPS           float64
	FrameTime     time.Duration
	DisplayWidth  int
	DisplayHeight int
	MouseX        float64
	MouseY        float64

	// Phases lists the slowest loop phases of the previous frame
	Phases string
}

// fpsCounter counts frames and publishes a rate once per window
type fpsCounter struct {
	window time.Duration
	start  time.Time
	frames int
	fps    float64
}

// tick records one frame ending at now and reports whether the rate was updated
func (c *fpsCounter) tick(now time.Time) bool {
	if c.start.IsZero() {
		c.start = now
	}
	c.frames++
	elapsed := now.Sub(c.start)
	if elapsed < c.window {
		return false
	}
	c.fps = float64(c.frames) / elapsed.Seconds()
	c.frames = 0
	c.start = now
	return true
}
