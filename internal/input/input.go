// Package input turns window callbacks into a queue of discrete events and
// maps physical keys to logical actions.
package input

// EventKind classifies an input event
type EventKind int

const (
	EventQuit EventKind = iota
	EventKey
	EventMouseButton
	EventCursor
	EventScroll
)

// Key is a physical key. Only keys with a binding or overlay meaning are named;
// everything else arrives as KeyUnknown.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyB
	KeyC
	KeyD
	KeyF
)

// MouseButton identifies a pointer button
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Event is one discrete input occurrence
type Event struct {
	Kind    EventKind
	Key     Key
	Button  MouseButton
	Pressed bool
	Repeat  bool
	X, Y    float64
}

// KeyDown reports whether e is a key press (including auto-repeat) of key
func (e Event) KeyDown(key Key) bool {
	return e.Kind == EventKey && e.Pressed && e.Key == key
}

// Queue buffers events between two drains. Window callbacks push from inside
// the platform's event poll, on the same thread that drains.
type Queue struct {
	events []Event
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 16)}
}

// Push appends an event
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain returns the pending events in arrival order and empties the queue
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	return len(q.events)
}
