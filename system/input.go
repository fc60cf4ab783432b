package system

import (
	"sync/atomic"

	"github.com/lixenwraith/uifocus/engine"
	"github.com/lixenwraith/uifocus/input"
	"github.com/lixenwraith/uifocus/parameter"
)

// InputResources bundles the input state shared between backends and systems
type InputResources struct {
	Inbox   *input.Inbox
	Mouse   *input.MouseButtons
	Touches *input.Touches
	Pointer *input.PointerState
}

// NewInputResources creates input state and registers it on the world
func NewInputResources(w *engine.World) InputResources {
	touches := input.NewTouches()
	res := InputResources{
		Inbox:   input.NewInbox(),
		Mouse:   input.NewButtonInput[input.MouseButton](),
		Touches: touches,
		Pointer: input.NewPointerState(touches),
	}
	engine.AddResource(w.Resources, res.Inbox)
	engine.AddResource(w.Resources, res.Mouse)
	engine.AddResource(w.Resources, res.Touches)
	engine.AddResource(w.Resources, res.Pointer)
	return res
}

// InputSystem turns buffered backend reports into this frame's input state
// It runs first so readers never observe the previous frame's input
type InputSystem struct {
	engine.SystemBase

	inbox   *input.Inbox
	mouse   *input.MouseButtons
	touches *input.Touches
	pointer *input.PointerState

	statEvents  *atomic.Int64
	statTouches *atomic.Int64
	statCursor  *atomic.Bool
}

// NewInputSystem creates the ingestion system; resources must be registered with NewInputResources
func NewInputSystem(w *engine.World) *InputSystem {
	return &InputSystem{
		SystemBase:  engine.NewSystemBase(w),
		inbox:       engine.MustGetResource[*input.Inbox](w.Resources),
		mouse:       engine.MustGetResource[*input.MouseButtons](w.Resources),
		touches:     engine.MustGetResource[*input.Touches](w.Resources),
		pointer:     engine.MustGetResource[*input.PointerState](w.Resources),
		statEvents:  w.Status.Ints.Get("input.events"),
		statTouches: w.Status.Ints.Get("input.touches"),
		statCursor:  w.Status.Bools.Get("input.cursor"),
	}
}

// Priority returns the system's priority
func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

// Update clears last frame's edges then applies pending reports in arrival order
func (s *InputSystem) Update() {
	s.mouse.Clear()
	s.touches.Update()

	events := s.inbox.Drain()
	for _, ev := range events {
		input.Apply(ev, s.pointer, s.mouse, s.touches)
	}
	s.statEvents.Add(int64(len(events)))
	s.statTouches.Store(int64(len(s.touches.Pressed())))

	_, present := s.pointer.CursorPosition()
	s.statCursor.Store(present)
}
