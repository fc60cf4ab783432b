// Package terminal drives the focus pass from a tcell screen
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/uifocus/core"
	"github.com/lixenwraith/uifocus/engine"
	"github.com/lixenwraith/uifocus/input"
	"github.com/lixenwraith/uifocus/parameter"
)

// eventBuffer bounds tcell events queued between frames
const eventBuffer = 100

// buttonMap pairs tcell button masks with engine buttons
var buttonMap = [...]struct {
	mask   tcell.ButtonMask
	button input.MouseButton
}{
	{tcell.Button1, input.MouseLeft},
	{tcell.Button2, input.MouseRight},
	{tcell.Button3, input.MouseMiddle},
}

// Backend owns the screen and translates its events into raw input reports
type Backend struct {
	screen tcell.Screen
	inbox  *input.Inbox
	log    zerolog.Logger

	keys map[rune]func()

	held        tcell.ButtonMask
	cellX       int
	cellY       int
	hasPosition bool
}

// New wraps screen; inbox receives every translated report
func New(screen tcell.Screen, inbox *input.Inbox, logger zerolog.Logger) *Backend {
	return &Backend{
		screen: screen,
		inbox:  inbox,
		log:    logger.With().Str("backend", "terminal").Logger(),
		keys:   make(map[rune]func()),
	}
}

// Init takes over the terminal and enables mouse and focus reporting
func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashReset(b.screen.Fini)
	b.screen.EnableMouse(tcell.MouseMotionEvents)
	b.screen.EnableFocus()
	b.screen.HideCursor()
	b.screen.Clear()
	return nil
}

// Fini restores the terminal
func (b *Backend) Fini() {
	core.SetCrashReset(nil)
	b.screen.Fini()
}

// Bind runs fn when rune r is typed
func (b *Backend) Bind(r rune, fn func()) {
	b.keys[r] = fn
}

// Translate converts one tcell event into raw reports; returns false when the user asked to quit
func (b *Backend) Translate(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		b.translateMouse(ev)
	case *tcell.EventFocus:
		if !ev.Focused {
			b.leave()
		}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
			if fn, ok := b.keys[ev.Rune()]; ok {
				fn()
			}
		}
	case *tcell.EventResize:
		b.screen.Sync()
	}
	return true
}

// translateMouse reports the cell center, then any button edges
func (b *Backend) translateMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if !b.hasPosition || x != b.cellX || y != b.cellY {
		b.cellX, b.cellY, b.hasPosition = x, y, true
		b.inbox.Push(input.CursorMoved(cellCenter(x, y)))
	}

	buttons := ev.Buttons()
	for _, m := range buttonMap {
		down := buttons&m.mask != 0
		wasDown := b.held&m.mask != 0
		if down == wasDown {
			continue
		}
		b.inbox.Push(input.MouseButtonEvent(m.button, down))
		b.log.Debug().Stringer("button", m.button).Bool("pressed", down).Int("x", x).Int("y", y).Msg("mouse button")
	}
	b.held = buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)
}

// leave reports the cursor gone; held buttons are released so no press outlives the surface
func (b *Backend) leave() {
	b.hasPosition = false
	b.inbox.Push(input.CursorLeft())
	for _, m := range buttonMap {
		if b.held&m.mask != 0 {
			b.inbox.Push(input.MouseButtonEvent(m.button, false))
		}
	}
	b.held = 0
	b.log.Debug().Msg("cursor left")
}

// Run polls events and updates then renders the world every frame until ctx ends or the user quits
func (b *Backend) Run(ctx context.Context, w *engine.World, frameRate int) error {
	ticker := time.NewTicker(parameter.FrameInterval(frameRate))
	defer ticker.Stop()

	events := make(chan tcell.Event, eventBuffer)
	done := make(chan struct{})
	defer close(done)
	core.Go(func() {
		defer close(events)
		for {
			ev := b.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	b.log.Info().Int("frame_rate", frameRate).Msg("terminal loop started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !b.Translate(ev) {
				b.log.Info().Int64("frames", w.FrameNumber()).Msg("quit requested")
				return nil
			}
		case <-ticker.C:
			w.Update()
			b.Render(w)
		}
	}
}

// cellCenter maps a character cell to the surface point the focus pass tests
func cellCenter(x, y int) core.Vec2 {
	return core.V2(float64(x)+0.5, float64(y)+0.5)
}
