package input

import (
	"sync"

	"github.com/lixenwraith/uifocus/core"
)

// CursorSource provides the single effective pointer position for a frame
// ok=false means no pointer is active
type CursorSource interface {
	CursorPosition() (pos core.Vec2, ok bool)
}

// PointerState is the production CursorSource fed by ingested backend events
// Mouse position wins; otherwise the lowest-id held touch; otherwise a touch released this frame
type PointerState struct {
	mouse   core.Vec2
	mouseOK bool
	touches *Touches
}

// NewPointerState creates a source that falls back to touches when the mouse is absent
// touches may be nil for mouse-only surfaces
func NewPointerState(touches *Touches) *PointerState {
	return &PointerState{touches: touches}
}

// MoveMouse records the mouse position on the surface
func (p *PointerState) MoveMouse(pos core.Vec2) {
	p.mouse = pos
	p.mouseOK = true
}

// LeaveMouse records that the mouse left the surface
func (p *PointerState) LeaveMouse() {
	p.mouseOK = false
}

// CursorPosition implements CursorSource
func (p *PointerState) CursorPosition() (core.Vec2, bool) {
	if p.mouseOK {
		return p.mouse, true
	}
	if p.touches == nil {
		return core.Vec2{}, false
	}
	if touch, ok := p.touches.First(); ok {
		return touch.Position, true
	}
	if touch, ok := p.touches.FirstReleased(); ok {
		return touch.Position, true
	}
	return core.Vec2{}, false
}

// FixedCursor is a settable CursorSource for tests and headless probes
type FixedCursor struct {
	mu  sync.Mutex
	pos core.Vec2
	ok  bool
}

// NewFixedCursor creates a source with no position
func NewFixedCursor() *FixedCursor {
	return &FixedCursor{}
}

// Set places the cursor
func (f *FixedCursor) Set(pos core.Vec2) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pos = pos
	f.ok = true
}

// SetOptional places the cursor when pos is non-nil, else removes it
func (f *FixedCursor) SetOptional(pos *core.Vec2) {
	if pos == nil {
		f.Unset()
		return
	}
	f.Set(*pos)
}

// Unset removes the cursor
func (f *FixedCursor) Unset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ok = false
}

// CursorPosition implements CursorSource
func (f *FixedCursor) CursorPosition() (core.Vec2, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pos, f.ok
}
