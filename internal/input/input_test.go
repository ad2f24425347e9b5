package input_test

import (
	"testing"

	"cubeview/internal/input"
)

func TestQueueDrainOrder(t *testing.T) {
	q := input.NewQueue()
	q.Push(input.Event{Kind: input.EventCursor, X: 1, Y: 2})
	q.Push(input.Event{Kind: input.EventKey, Key: input.KeyEscape, Pressed: true})

	events := q.Drain()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Kind != input.EventCursor || events[1].Kind != input.EventKey {
		t.Errorf("events out of order: %+v", events)
	}
	if q.Len() != 0 {
		t.Errorf("queue not empty after drain")
	}
	if got := q.Drain(); got != nil {
		t.Errorf("expected nil drain, got %v", got)
	}
}

func TestDrainedSliceIsNotReused(t *testing.T) {
	q := input.NewQueue()
	q.Push(input.Event{Kind: input.EventKey, Key: input.KeyF, Pressed: true})
	first := q.Drain()
	q.Push(input.Event{Kind: input.EventQuit})
	_ = q.Drain()
	if first[0].Kind != input.EventKey {
		t.Errorf("earlier drain was overwritten: %+v", first[0])
	}
}

func TestDefaultBindings(t *testing.T) {
	b := input.DefaultBindings()
	tests := []struct {
		name string
		ev   input.Event
		want input.Action
	}{
		{"quit event", input.Event{Kind: input.EventQuit}, input.ActionQuit},
		{"escape press", input.Event{Kind: input.EventKey, Key: input.KeyEscape, Pressed: true}, input.ActionQuit},
		{"escape repeat", input.Event{Kind: input.EventKey, Key: input.KeyEscape, Pressed: true, Repeat: true}, input.ActionQuit},
		{"escape release", input.Event{Kind: input.EventKey, Key: input.KeyEscape}, input.ActionNone},
		{"wireframe", input.Event{Kind: input.EventKey, Key: input.KeyF, Pressed: true}, input.ActionToggleWireframe},
		{"wireframe repeat", input.Event{Kind: input.EventKey, Key: input.KeyF, Pressed: true, Repeat: true}, input.ActionNone},
		{"depth", input.Event{Kind: input.EventKey, Key: input.KeyD, Pressed: true}, input.ActionToggleDepthTest},
		{"blend", input.Event{Kind: input.EventKey, Key: input.KeyB, Pressed: true}, input.ActionToggleBlend},
		{"culling", input.Event{Kind: input.EventKey, Key: input.KeyC, Pressed: true}, input.ActionToggleCulling},
		{"unknown key", input.Event{Kind: input.EventKey, Key: input.KeyUnknown, Pressed: true}, input.ActionNone},
		{"mouse", input.Event{Kind: input.EventMouseButton, Pressed: true}, input.ActionNone},
	}
	for _, tt := range tests {
		if got := b.ActionFor(tt.ev); got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestBindAndUnbind(t *testing.T) {
	b := input.DefaultBindings()
	b.Unbind(input.KeyEscape)
	esc := input.Event{Kind: input.EventKey, Key: input.KeyEscape, Pressed: true}
	if b.ActionFor(esc) != input.ActionNone {
		t.Errorf("escape still bound after Unbind")
	}

	b.Bind(input.KeyEscape, input.ActionToggleBlend)
	if b.ActionFor(esc) != input.ActionToggleBlend {
		t.Errorf("rebind failed")
	}

	b.Bind(input.KeyEscape, input.ActionCount)
	if b.ActionFor(esc) != input.ActionToggleBlend {
		t.Errorf("invalid action replaced binding")
	}

	// The window close request quits regardless of key bindings
	if b.ActionFor(input.Event{Kind: input.EventQuit}) != input.ActionQuit {
		t.Errorf("quit event must always quit")
	}
}

func TestEventKeyDown(t *testing.T) {
	e := input.Event{Kind: input.EventKey, Key: input.KeyEscape, Pressed: true}
	if !e.KeyDown(input.KeyEscape) {
		t.Error("expected key down")
	}
	if e.KeyDown(input.KeyF) {
		t.Error("wrong key reported down")
	}
}

func TestActionString(t *testing.T) {
	if got := input.ActionToggleWireframe.String(); got != "ToggleWireframe" {
		t.Errorf("expected ToggleWireframe, got %s", got)
	}
	if got := input.ActionCount.String(); got != "Unknown" {
		t.Errorf("expected Unknown for the sentinel, got %s", got)
	}
}
