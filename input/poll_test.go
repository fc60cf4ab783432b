package input

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/uifocus/core"
)

type reading = TouchReading[int]

func TestPolledPointerMouseBounds(t *testing.T) {
	p := NewPolledPointer[int](100, 50)

	assert.Equal(t, []RawEvent{CursorMoved(core.V2(10, 10))}, p.Poll(10, 10, true, nil, nil))
	assert.Empty(t, p.Poll(10, 10, true, nil, nil), "no motion")
	assert.Equal(t, []RawEvent{CursorMoved(core.V2(99, 49))}, p.Poll(99, 49, true, nil, nil))
	assert.Equal(t, []RawEvent{CursorLeft()}, p.Poll(100, 49, true, nil, nil), "max edge is outside")
	assert.Empty(t, p.Poll(-1, 0, true, nil, nil))
	assert.Equal(t, []RawEvent{CursorMoved(core.V2(5, 5))}, p.Poll(5, 5, true, nil, nil))
	assert.Equal(t, []RawEvent{CursorLeft()}, p.Poll(5, 5, false, nil, nil), "unfocused")
	assert.Equal(t, []RawEvent{CursorMoved(core.V2(5, 5))}, p.Poll(5, 5, true, nil, nil), "refocused")
}

func TestPolledPointerTouchSuppressesFixedMouse(t *testing.T) {
	p := NewPolledPointer[int](100, 50)

	// mobile targets report the mouse at the origin every tick
	assert.Equal(t, []RawEvent{CursorMoved(core.V2(0, 0))}, p.Poll(0, 0, true, nil, nil))

	down := []reading{{Key: 7, X: 10, Y: 10, PrevX: 10, PrevY: 10}}
	assert.Equal(t, []RawEvent{
		CursorLeft(),
		TouchEvent(TouchInput{Phase: TouchStarted, ID: PrimaryTouch, Position: core.V2(10, 10)}),
	}, p.Poll(0, 0, true, nil, down))

	assert.Empty(t, p.Poll(0, 0, true, nil, down), "held still")

	up := []reading{{Key: 7, X: 10, Y: 10}}
	assert.Equal(t, []RawEvent{
		TouchEvent(TouchInput{Phase: TouchEnded, ID: PrimaryTouch, Position: core.V2(10, 10)}),
	}, p.Poll(0, 0, true, up, nil))

	assert.Empty(t, p.Poll(0, 0, true, nil, nil), "stale mouse stays hidden")
	assert.Equal(t, []RawEvent{CursorMoved(core.V2(3, 4))}, p.Poll(3, 4, true, nil, nil), "real mouse motion resumes")
}

func TestPolledPointerTouchSlots(t *testing.T) {
	p := NewPolledPointer[int](100, 50)
	p.Poll(-1, -1, false, nil, nil)

	events := p.Poll(-1, -1, false, nil, []reading{
		{Key: 40, X: 1, Y: 1, PrevX: 1, PrevY: 1},
		{Key: 41, X: 2, Y: 2, PrevX: 2, PrevY: 2},
	})
	assert.Equal(t, []RawEvent{
		TouchEvent(TouchInput{Phase: TouchStarted, ID: 0, Position: core.V2(1, 1)}),
		TouchEvent(TouchInput{Phase: TouchStarted, ID: 1, Position: core.V2(2, 2)}),
	}, events)
	assert.Equal(t, 2, p.TouchCount())

	// slot 0 lifts and a new touch reuses it in the same tick; 41 moves
	events = p.Poll(-1, -1, false,
		[]reading{{Key: 40, X: 1, Y: 1}},
		[]reading{
			{Key: 41, X: 3, Y: 2, PrevX: 2, PrevY: 2},
			{Key: 42, X: 8, Y: 8, PrevX: 8, PrevY: 8},
		})
	assert.Equal(t, []RawEvent{
		TouchEvent(TouchInput{Phase: TouchEnded, ID: 0, Position: core.V2(1, 1)}),
		TouchEvent(TouchInput{Phase: TouchMoved, ID: 1, Position: core.V2(3, 2)}),
		TouchEvent(TouchInput{Phase: TouchStarted, ID: 0, Position: core.V2(8, 8)}),
	}, events)

	assert.Empty(t, p.Poll(-1, -1, false, []reading{{Key: 99}}, nil), "unknown release ignored")
}
