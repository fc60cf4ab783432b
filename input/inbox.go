package input

import (
	"sync"

	"github.com/lixenwraith/uifocus/core"
)

// RawKind identifies a backend report
type RawKind uint8

const (
	RawCursorMoved RawKind = iota
	RawCursorLeft
	RawMouseButton
	RawTouch
)

// RawEvent is a backend report waiting for the next frame's ingestion
type RawEvent struct {
	Kind     RawKind
	Position core.Vec2
	Button   MouseButton
	Pressed  bool
	Touch    TouchInput
}

// CursorMoved reports the mouse at pos
func CursorMoved(pos core.Vec2) RawEvent {
	return RawEvent{Kind: RawCursorMoved, Position: pos}
}

// CursorLeft reports the mouse left the surface
func CursorLeft() RawEvent {
	return RawEvent{Kind: RawCursorLeft}
}

// MouseButtonEvent reports a press or release of b
func MouseButtonEvent(b MouseButton, pressed bool) RawEvent {
	return RawEvent{Kind: RawMouseButton, Button: b, Pressed: pressed}
}

// TouchEvent wraps a touch report
func TouchEvent(t TouchInput) RawEvent {
	return RawEvent{Kind: RawTouch, Touch: t, Position: t.Position}
}

// Inbox buffers backend reports between frames
// Safe for a producer goroutine; drained only by the input system
type Inbox struct {
	mu      sync.Mutex
	pending []RawEvent
	spare   []RawEvent
}

// NewInbox creates an empty buffer
func NewInbox() *Inbox {
	return &Inbox{
		pending: make([]RawEvent, 0, 64),
		spare:   make([]RawEvent, 0, 64),
	}
}

// Push appends a report
func (in *Inbox) Push(ev RawEvent) {
	in.mu.Lock()
	in.pending = append(in.pending, ev)
	in.mu.Unlock()
}

// Drain returns pending reports in arrival order
// The slice is valid until the next Drain
func (in *Inbox) Drain() []RawEvent {
	in.mu.Lock()
	defer in.mu.Unlock()
	out := in.pending
	in.pending = in.spare[:0]
	in.spare = out
	return out
}

// Apply routes one report into the frame state
func Apply(ev RawEvent, pointer *PointerState, mouse *MouseButtons, touches *Touches) {
	switch ev.Kind {
	case RawCursorMoved:
		pointer.MoveMouse(ev.Position)
	case RawCursorLeft:
		pointer.LeaveMouse()
	case RawMouseButton:
		if ev.Pressed {
			mouse.Press(ev.Button)
		} else {
			mouse.Release(ev.Button)
		}
	case RawTouch:
		touches.Process(ev.Touch)
	}
}
