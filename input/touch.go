package input

import (
	"sort"

	"github.com/lixenwraith/uifocus/core"
)

// PrimaryTouch is the slot whose release counts as a click
const PrimaryTouch uint64 = 0

// TouchPhase is the lifecycle stage reported for a touch
type TouchPhase uint8

const (
	TouchStarted TouchPhase = iota
	TouchMoved
	TouchEnded
	TouchCancelled
)

func (p TouchPhase) String() string {
	switch p {
	case TouchStarted:
		return "Started"
	case TouchMoved:
		return "Moved"
	case TouchEnded:
		return "Ended"
	case TouchCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// TouchInput is one raw touch report for a slot
type TouchInput struct {
	Phase    TouchPhase
	Position core.Vec2
	ID       uint64
}

// Touch is the tracked state of one touch slot
type Touch struct {
	ID               uint64
	StartPosition    core.Vec2
	Position         core.Vec2
	PreviousPosition core.Vec2
}

func newTouch(ev TouchInput) Touch {
	return Touch{
		ID:               ev.ID,
		StartPosition:    ev.Position,
		Position:         ev.Position,
		PreviousPosition: ev.Position,
	}
}

// Touches aggregates touch reports into held slots and per-frame edges
type Touches struct {
	pressed       map[uint64]Touch
	justPressed   map[uint64]Touch
	justReleased  map[uint64]Touch
}

// NewTouches creates an empty tracker
func NewTouches() *Touches {
	return &Touches{
		pressed:       make(map[uint64]Touch),
		justPressed:   make(map[uint64]Touch),
		justReleased:  make(map[uint64]Touch),
	}
}

// Process applies one touch report
// An end report for an unknown slot still records the release edge
func (t *Touches) Process(ev TouchInput) {
	switch ev.Phase {
	case TouchStarted:
		touch := newTouch(ev)
		t.pressed[ev.ID] = touch
		t.justPressed[ev.ID] = touch
	case TouchMoved:
		touch, ok := t.pressed[ev.ID]
		if !ok {
			touch = newTouch(ev)
		}
		touch.PreviousPosition = touch.Position
		touch.Position = ev.Position
		t.pressed[ev.ID] = touch
	case TouchEnded:
		touch := t.released(ev)
		t.justReleased[ev.ID] = touch
	case TouchCancelled:
		t.released(ev)
	}
}

func (t *Touches) released(ev TouchInput) Touch {
	touch, ok := t.pressed[ev.ID]
	if !ok {
		touch = newTouch(ev)
	}
	touch.PreviousPosition = touch.Position
	touch.Position = ev.Position
	delete(t.pressed, ev.ID)
	return touch
}

// Update drops per-frame edges; called once at frame start
func (t *Touches) Update() {
	clear(t.justPressed)
	clear(t.justReleased)
}

func (t *Touches) JustPressed(id uint64) bool {
	_, ok := t.justPressed[id]
	return ok
}

func (t *Touches) JustReleased(id uint64) bool {
	_, ok := t.justReleased[id]
	return ok
}

// Pressed returns held touches ordered by id
func (t *Touches) Pressed() []Touch {
	return sortedTouches(t.pressed)
}

// First returns the held touch with the lowest id
func (t *Touches) First() (Touch, bool) {
	return lowest(t.pressed)
}

// FirstReleased returns the lowest-id touch released this frame
func (t *Touches) FirstReleased() (Touch, bool) {
	return lowest(t.justReleased)
}

func lowest(m map[uint64]Touch) (Touch, bool) {
	var (
		best  Touch
		found bool
	)
	for id, touch := range m {
		if !found || id < best.ID {
			best = touch
			found = true
		}
	}
	return best, found
}

func sortedTouches(m map[uint64]Touch) []Touch {
	out := make([]Touch, 0, len(m))
	for _, touch := range m {
		out = append(out, touch)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
