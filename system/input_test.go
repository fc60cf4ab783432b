package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/uifocus/core"
	"github.com/lixenwraith/uifocus/engine"
	"github.com/lixenwraith/uifocus/input"
)

func TestInputSystemClearsEdgesEachFrame(t *testing.T) {
	w := engine.NewWorld()
	res := NewInputResources(w)
	w.AddSystem(NewInputSystem(w))

	res.Inbox.Push(input.MouseButtonEvent(input.MouseLeft, true))
	res.Inbox.Push(input.TouchEvent(input.TouchInput{Phase: input.TouchEnded, ID: 0}))
	w.Update()
	assert.True(t, res.Mouse.JustPressed(input.MouseLeft))
	assert.True(t, res.Touches.JustReleased(0))

	w.Update()
	assert.False(t, res.Mouse.JustPressed(input.MouseLeft))
	assert.True(t, res.Mouse.Pressed(input.MouseLeft))
	assert.False(t, res.Touches.JustReleased(0))

	assert.Equal(t, int64(2), w.Status.Snapshot()["input.events"])
}

func TestInputSystemFeedsPointerState(t *testing.T) {
	w := engine.NewWorld()
	res := NewInputResources(w)
	w.AddSystem(NewInputSystem(w))

	res.Inbox.Push(input.CursorMoved(core.V2(3, 4)))
	w.Update()
	pos, ok := res.Pointer.CursorPosition()
	assert.True(t, ok)
	assert.Equal(t, core.V2(3, 4), pos)

	res.Inbox.Push(input.CursorLeft())
	w.Update()
	_, ok = res.Pointer.CursorPosition()
	assert.False(t, ok)
}

func TestFocusWithPointerStateTouchTap(t *testing.T) {
	w := engine.NewWorld()
	res := NewInputResources(w)
	w.AddSystem(NewInputSystem(w))
	w.AddSystem(NewFocusSystem(w, res.Pointer))

	app := &testApp{world: w, inbox: res.Inbox}
	e := app.spawnNodeAt(10, 10)

	res.Inbox.Push(input.TouchEvent(input.TouchInput{Phase: input.TouchStarted, ID: 0, Position: core.V2(10, 10)}))
	w.Update()
	assert.Equal(t, "hovered", app.interaction(e).String())
	assert.Equal(t, int64(1), w.Status.Snapshot()["input.touches"])

	res.Inbox.Push(input.TouchEvent(input.TouchInput{Phase: input.TouchEnded, ID: 0, Position: core.V2(10, 10)}))
	w.Update()
	assert.Equal(t, "clicked", app.interaction(e).String())
	assert.Zero(t, w.Status.Snapshot()["input.touches"])

	w.Update()
	assert.Equal(t, "none", app.interaction(e).String(), "touch gone, no cursor")
}

func TestFocusPolledTouchWithFixedMouse(t *testing.T) {
	w := engine.NewWorld()
	res := NewInputResources(w)
	w.AddSystem(NewInputSystem(w))
	w.AddSystem(NewFocusSystem(w, res.Pointer))

	app := &testApp{world: w, inbox: res.Inbox}
	e := app.spawnNodeAt(10, 10)

	poller := input.NewPolledPointer[int](100, 100)
	tick := func(released, active []input.TouchReading[int]) {
		// mouse pinned at the origin, as on mobile targets
		for _, ev := range poller.Poll(0, 0, true, released, active) {
			res.Inbox.Push(ev)
		}
		w.Update()
	}

	tick(nil, nil)
	assert.Equal(t, "none", app.interaction(e).String())

	held := []input.TouchReading[int]{{Key: 3, X: 10, Y: 10, PrevX: 10, PrevY: 10}}
	tick(nil, held)
	assert.Equal(t, "hovered", app.interaction(e).String(), "held")
	tick(nil, held)
	assert.Equal(t, "hovered", app.interaction(e).String(), "still held")

	tick([]input.TouchReading[int]{{Key: 3, X: 10, Y: 10}}, nil)
	assert.Equal(t, "clicked", app.interaction(e).String(), "tap")

	tick(nil, nil)
	assert.Equal(t, "none", app.interaction(e).String())
}
