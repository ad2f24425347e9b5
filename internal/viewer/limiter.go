package viewer

import (
	"time"

	"cubeview/internal/config"
)

// spinWindow is the tail of each wait spent polling the clock instead of sleeping
const spinWindow = 200 * time.Microsecond

// FrameLimiter paces the loop to config.FPSLimit
type FrameLimiter struct {
	next  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

// NewFrameLimiter creates a limiter on the wall clock
func NewFrameLimiter() *FrameLimiter {
	return NewFrameLimiterWithClock(time.Now, time.Sleep)
}

// NewFrameLimiterWithClock creates a limiter with injected time functions
func NewFrameLimiterWithClock(now func() time.Time, sleep func(time.Duration)) *FrameLimiter {
	return &FrameLimiter{now: now, sleep: sleep}
}

// Wait blocks for the rest of the frame budget.
// In fixed mode it sleeps the whole budget no matter how long the frame took,
// so the real rate drifts below the target under load. In adaptive mode it
// sleeps until a monotonic deadline, spinning for the last few microseconds.
func (f *FrameLimiter) Wait() {
	limit := config.FPSLimit()
	if limit <= 0 {
		f.next = time.Time{}
		return
	}
	target := time.Second / time.Duration(limit)

	if config.Pacing() == config.PacingFixed {
		f.next = time.Time{}
		f.sleep(target)
		return
	}

	if f.next.IsZero() {
		f.next = f.now().Add(target)
	} else {
		f.next = f.next.Add(target)
	}

	for {
		remaining := f.next.Sub(f.now())
		if remaining <= 0 {
			break
		}
		if remaining > spinWindow {
			f.sleep(remaining - spinWindow)
		}
		if f.next.Sub(f.now()) <= 0 {
			break
		}
	}

	// After a hitch, restart the schedule from now instead of rushing to catch up
	if now := f.now(); now.Sub(f.next) > target {
		f.next = now
	}
}
