// Package window drives the focus pass from an ebiten window with mouse and touch input
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/uifocus/component"
	"github.com/lixenwraith/uifocus/core"
	"github.com/lixenwraith/uifocus/engine"
	"github.com/lixenwraith/uifocus/input"
	"github.com/lixenwraith/uifocus/render"
)

var (
	colorBackground = color.RGBA{30, 30, 40, 255}
	colorNone       = color.RGBA{70, 70, 90, 255}
	colorHovered    = color.RGBA{200, 180, 0, 255}
	colorClicked    = color.RGBA{0, 200, 80, 255}
	colorBorder     = color.RGBA{230, 230, 230, 255}
)

var buttons = [...]struct {
	ebiten ebiten.MouseButton
	button input.MouseButton
}{
	{ebiten.MouseButtonLeft, input.MouseLeft},
	{ebiten.MouseButtonRight, input.MouseRight},
	{ebiten.MouseButtonMiddle, input.MouseMiddle},
}

// Options configures the window
type Options struct {
	Width     int
	Height    int
	Title     string
	FrameRate int
}

// Game implements ebiten.Game; each tick reports input then updates the world
type Game struct {
	world *engine.World
	inbox *input.Inbox
	opts  Options
	log   zerolog.Logger

	keys map[ebiten.Key]func()

	pointer  *input.PolledPointer[ebiten.TouchID]
	touchIDs []ebiten.TouchID
	released []input.TouchReading[ebiten.TouchID]
	active   []input.TouchReading[ebiten.TouchID]
}

// New creates the window game; inbox must be the world's input inbox
func New(w *engine.World, inbox *input.Inbox, opts Options, logger zerolog.Logger) *Game {
	return &Game{
		world:   w,
		inbox:   inbox,
		opts:    opts,
		log:     logger.With().Str("backend", "window").Logger(),
		keys:    make(map[ebiten.Key]func()),
		pointer: input.NewPolledPointer[ebiten.TouchID](opts.Width, opts.Height),
	}
}

// Bind runs fn when key is pressed
func (g *Game) Bind(key ebiten.Key, fn func()) {
	g.keys[key] = fn
}

// Run opens the window and blocks until it closes
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowTitle(g.opts.Title)
	if g.opts.FrameRate > 0 {
		ebiten.SetTPS(g.opts.FrameRate)
	}

	g.log.Info().Int("width", g.opts.Width).Int("height", g.opts.Height).Msg("window loop started")
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	for key, fn := range g.keys {
		if inpututil.IsKeyJustPressed(key) {
			fn()
		}
	}

	g.pollPointer()
	g.world.Update()
	return nil
}

// pollPointer reads ebiten's mouse and touch state and reports the translated events
func (g *Game) pollPointer() {
	g.released = g.released[:0]
	g.touchIDs = inpututil.AppendJustReleasedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		g.released = append(g.released, input.TouchReading[ebiten.TouchID]{Key: id, X: x, Y: y})
	}

	g.active = g.active[:0]
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		px, py := inpututil.TouchPositionInPreviousTick(id)
		g.active = append(g.active, input.TouchReading[ebiten.TouchID]{Key: id, X: x, Y: y, PrevX: px, PrevY: py})
	}

	x, y := ebiten.CursorPosition()
	for _, ev := range g.pointer.Poll(x, y, ebiten.IsFocused(), g.released, g.active) {
		if ev.Kind == input.RawCursorLeft {
			g.log.Debug().Int("x", x).Int("y", y).Int("touches", g.pointer.TouchCount()).Msg("cursor left")
		}
		g.inbox.Push(ev)
	}

	for _, b := range buttons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			g.inbox.Push(input.MouseButtonEvent(b.button, true))
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			g.inbox.Push(input.MouseButtonEvent(b.button, false))
		}
	}
}

// Draw fills each visible element back to front, colored by interaction
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	for _, it := range render.Collect(g.world) {
		if !it.Visible() {
			continue
		}
		x, y := float32(it.Rect.Min.X), float32(it.Rect.Min.Y)
		size := it.Rect.Size()
		w, h := float32(size.X), float32(size.Y)

		vector.DrawFilledRect(screen, x, y, w, h, fillColor(it.State), false)
		vector.StrokeRect(screen, x, y, w, h, 1, colorBorder, false)
		ebitenutil.DebugPrintAt(screen, it.Label, int(x)+4, int(y)+2)
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("frame %d  TPS %.1f", g.world.FrameNumber(), ebiten.ActualTPS()))
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.opts.Width, g.opts.Height
}

func fillColor(state component.Interaction) color.Color {
	switch state {
	case component.InteractionHovered:
		return colorHovered
	case component.InteractionClicked:
		return colorClicked
	default:
		return colorNone
	}
}
