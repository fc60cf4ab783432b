package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/uifocus/component"
	"github.com/lixenwraith/uifocus/engine"
	"github.com/lixenwraith/uifocus/render"
)

var (
	styleNone    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHovered = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleClicked = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
)

func stateStyle(state component.Interaction) tcell.Style {
	switch state {
	case component.InteractionHovered:
		return styleHovered
	case component.InteractionClicked:
		return styleClicked
	default:
		return styleNone
	}
}

// cellSpan returns the inclusive cell range whose centers fall in [lo, hi), clamped to [0, limit)
// first > last means no cell qualifies
func cellSpan(lo, hi float64, limit int) (first, last int) {
	lo = math.Max(lo, 0)
	hi = math.Min(hi, float64(limit))
	if !(lo < hi) {
		return 0, -1
	}
	first = int(math.Ceil(lo - 0.5))
	last = int(math.Ceil(hi-0.5)) - 1
	return first, last
}

// Render paints every visible element back to front and a status line on the bottom row
func (b *Backend) Render(w *engine.World) {
	b.screen.Clear()
	width, height := b.screen.Size()

	for _, it := range render.Collect(w) {
		if !it.Visible() {
			continue
		}
		b.drawItem(it, width, height-1)
	}
	b.drawStatus(w, width, height)
	b.screen.Show()
}

// drawItem draws a box over the cells the element covers, label on the top row
func (b *Backend) drawItem(it render.Item, width, height int) {
	x0, x1 := cellSpan(it.Rect.Min.X, it.Rect.Max.X, width)
	y0, y1 := cellSpan(it.Rect.Min.Y, it.Rect.Max.Y, height)
	if x0 > x1 || y0 > y1 {
		return
	}
	style := stateStyle(it.State)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			b.screen.SetContent(x, y, boxRune(x, y, x0, x1, y0, y1), nil, style)
		}
	}

	label := []rune(it.Label)
	for i, r := range label {
		x := x0 + 1 + i
		if x >= x1 {
			break
		}
		b.screen.SetContent(x, y0, r, nil, style)
	}
}

func boxRune(x, y, x0, x1, y0, y1 int) rune {
	top, bottom := y == y0, y == y1
	left, right := x == x0, x == x1
	switch {
	case top && left:
		return '┌'
	case top && right:
		return '┐'
	case bottom && left:
		return '└'
	case bottom && right:
		return '┘'
	case top || bottom:
		return '─'
	case left || right:
		return '│'
	default:
		return ' '
	}
}

func (b *Backend) drawStatus(w *engine.World, width, height int) {
	if height <= 0 {
		return
	}
	cursor := "-"
	if b.hasPosition {
		cursor = cellCenter(b.cellX, b.cellY).String()
	}
	line := fmt.Sprintf(" frame %d  cursor %s  q quit ", w.FrameNumber(), cursor)

	col := 0
	for _, r := range line {
		if col >= width {
			break
		}
		b.screen.SetContent(col, height-1, r, nil, styleStatus)
		col++
	}
}
