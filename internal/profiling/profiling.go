// Package profiling is a lightweight per-frame CPU timer for the render loop.
package profiling

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Frame accumulates named durations for the current frame
type Frame struct {
	totals map[string]time.Duration
	now    func() time.Time
}

// NewFrame creates a frame timer backed by the wall clock
func NewFrame() *Frame {
	return NewFrameWithClock(time.Now)
}

// NewFrameWithClock creates a frame timer reading time from now
func NewFrameWithClock(now func() time.Time) *Frame {
	return &Frame{
		totals: make(map[string]time.Duration),
		now:    now,
	}
}

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer frame.Track("viewer.Draw")()
func (f *Frame) Track(name string) func() {
	start := f.now()
	return func() {
		f.totals[name] += f.now().Sub(start)
	}
}

// Reset clears current per-frame totals. Call at the start of each frame.
func (f *Frame) Reset() {
	clear(f.totals)
}

// Snapshot returns a copy of current per-frame totals
func (f *Frame) Snapshot() map[string]time.Duration {
	out := make(map[string]time.Duration, len(f.totals))
	for k, v := range f.totals {
		out[k] = v
	}
	return out
}

// SumWithPrefix sums every total whose name starts with prefix
func (f *Frame) SumWithPrefix(prefix string) time.Duration {
	var sum time.Duration
	for k, v := range f.totals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN formats the n longest totals, longest first.
// Example: "viewer.Present:4.2ms, viewer.Draw:0.3ms"
func (f *Frame) TopN(n int) string {
	type pair struct {
		name string
		dur  time.Duration
	}
	list := make([]pair, 0, len(f.totals))
	for k, v := range f.totals {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, list[i].name+":"+FormatMs(list[i].dur))
	}
	return strings.Join(parts, ", ")
}

// FormatMs renders d in milliseconds with one decimal, dropping ".0"
func FormatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
