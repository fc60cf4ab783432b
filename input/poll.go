package input

import (
	"github.com/lixenwraith/uifocus/core"
)

// TouchReading is one polled touch: its backend id, position this tick and position last tick
type TouchReading[K comparable] struct {
	Key   K
	X, Y  int
	PrevX int
	PrevY int
}

// PolledPointer turns per-tick pointer readings from state-polling backends into raw reports
//
// While a touch is down or lifting the mouse is not reported, since touch platforms
// keep a fixed mouse position. The mouse resumes once it moves after the touch ends.
type PolledPointer[K comparable] struct {
	width, height int

	slots *TouchSlots[K]

	cursor    core.Vec2
	seen      bool
	reported  bool
	touchMode bool
}

// NewPolledPointer creates a translator for a surface of the given size
func NewPolledPointer[K comparable](width, height int) *PolledPointer[K] {
	return &PolledPointer[K]{
		width:  width,
		height: height,
		slots:  NewTouchSlots[K](),
	}
}

// Poll translates one tick of readings
// released lists touches that lifted since last tick, with their last known position
// active lists touches currently down
func (p *PolledPointer[K]) Poll(mouseX, mouseY int, focused bool, released, active []TouchReading[K]) []RawEvent {
	var out []RawEvent
	out = p.pollMouse(mouseX, mouseY, focused, len(released)+len(active) > 0, out)
	out = p.pollTouches(released, active, out)
	return out
}

// TouchCount returns the number of touches currently mapped to slots
func (p *PolledPointer[K]) TouchCount() int {
	return p.slots.Len()
}

func (p *PolledPointer[K]) pollMouse(x, y int, focused, touching bool, out []RawEvent) []RawEvent {
	pos := core.V2(float64(x), float64(y))
	moved := !p.seen || pos != p.cursor
	p.cursor = pos
	p.seen = true

	switch {
	case touching:
		p.touchMode = true
	case p.touchMode && moved:
		p.touchMode = false
	}

	inBounds := focused && !p.touchMode &&
		x >= 0 && y >= 0 && x < p.width && y < p.height

	switch {
	case inBounds && (!p.reported || moved):
		out = append(out, CursorMoved(pos))
	case !inBounds && p.reported:
		out = append(out, CursorLeft())
	}
	p.reported = inBounds
	return out
}

// pollTouches reports releases first so a slot freed this tick can be reused by a new touch
func (p *PolledPointer[K]) pollTouches(released, active []TouchReading[K], out []RawEvent) []RawEvent {
	for _, r := range released {
		slot, ok := p.slots.Release(r.Key)
		if !ok {
			continue
		}
		out = append(out, touchReport(TouchEnded, slot, r.X, r.Y))
	}

	for _, r := range active {
		slot, tracked := p.slots.Lookup(r.Key)
		switch {
		case !tracked:
			out = append(out, touchReport(TouchStarted, p.slots.Acquire(r.Key), r.X, r.Y))
		case r.PrevX != r.X || r.PrevY != r.Y:
			out = append(out, touchReport(TouchMoved, slot, r.X, r.Y))
		}
	}
	return out
}

func touchReport(phase TouchPhase, slot uint64, x, y int) RawEvent {
	return TouchEvent(TouchInput{
		Phase:    phase,
		ID:       slot,
		Position: core.V2(float64(x), float64(y)),
	})
}
