package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/uifocus/core"
)

func TestTouchesLifecycle(t *testing.T) {
	tc := NewTouches()

	tc.Process(TouchInput{Phase: TouchStarted, ID: 3, Position: core.V2(1, 1)})
	assert.True(t, tc.JustPressed(3))

	tc.Update()
	tc.Process(TouchInput{Phase: TouchMoved, ID: 3, Position: core.V2(4, 5)})
	touch, ok := tc.First()
	require.True(t, ok)
	assert.Equal(t, core.V2(1, 1), touch.StartPosition)
	assert.Equal(t, core.V2(1, 1), touch.PreviousPosition)
	assert.Equal(t, core.V2(4, 5), touch.Position)
	assert.False(t, tc.JustPressed(3))

	tc.Process(TouchInput{Phase: TouchEnded, ID: 3, Position: core.V2(6, 6)})
	assert.Empty(t, tc.Pressed())
	assert.True(t, tc.JustReleased(3))
	released, ok := tc.FirstReleased()
	require.True(t, ok)
	assert.Equal(t, core.V2(6, 6), released.Position)

	tc.Update()
	assert.False(t, tc.JustReleased(3))
}

func TestTouchesCancelIsNotRelease(t *testing.T) {
	tc := NewTouches()
	tc.Process(TouchInput{Phase: TouchStarted, ID: 0})
	tc.Process(TouchInput{Phase: TouchCancelled, ID: 0})
	assert.False(t, tc.JustReleased(0))
	_, ok := tc.FirstReleased()
	assert.False(t, ok)
	assert.Empty(t, tc.Pressed())
}

func TestTouchesFirstIsLowestID(t *testing.T) {
	tc := NewTouches()
	tc.Process(TouchInput{Phase: TouchStarted, ID: 7, Position: core.V2(7, 7)})
	tc.Process(TouchInput{Phase: TouchStarted, ID: 2, Position: core.V2(2, 2)})

	first, ok := tc.First()
	require.True(t, ok)
	assert.Equal(t, uint64(2), first.ID)

	pressed := tc.Pressed()
	require.Len(t, pressed, 2)
	assert.Equal(t, uint64(2), pressed[0].ID)
	assert.Equal(t, uint64(7), pressed[1].ID)
}

func TestTouchSlots(t *testing.T) {
	s := NewTouchSlots[int]()
	assert.Equal(t, PrimaryTouch, s.Acquire(40))
	assert.Equal(t, uint64(1), s.Acquire(41))
	assert.Equal(t, PrimaryTouch, s.Acquire(40), "stable for the same key")

	slot, ok := s.Release(40)
	require.True(t, ok)
	assert.Equal(t, PrimaryTouch, slot)

	assert.Equal(t, PrimaryTouch, s.Acquire(42), "lowest free slot reused")
	_, ok = s.Lookup(40)
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
}
