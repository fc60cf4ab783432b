// Package render builds backend-neutral draw lists from the world
package render

import (
	"cmp"
	"slices"

	"github.com/lixenwraith/uifocus/component"
	"github.com/lixenwraith/uifocus/core"
	"github.com/lixenwraith/uifocus/engine"
)

// Item is one laid-out element as a backend should paint it
type Item struct {
	Entity core.Entity
	Label  string
	Rect   core.Rect // visible rect after clipping; may be empty
	Depth  float64
	Policy component.FocusPolicy
	State  component.Interaction
}

// Visible reports whether any of the item can be painted or hit
func (it Item) Visible() bool {
	return !it.Rect.Empty()
}

// Collect returns every element with Node, Transform and Interaction, back to front
// The order is the exact reverse of the focus walk, so the top-painted element is the first hit
func Collect(w *engine.World) []Item {
	c := w.Components
	entities := w.Query().With(c.Interaction).With(c.Node).With(c.Transform).Execute()

	items := make([]Item, 0, len(entities))
	for _, e := range entities {
		node := c.Node.MustGetComponent(e)
		transform := c.Transform.MustGetComponent(e)

		var clip *core.Rect
		if clipComp, ok := c.Clip.GetComponent(e); ok {
			clip = &clipComp.Rect
		}
		policyComp, hasPolicy := c.Policy.GetComponent(e)
		label, _ := c.Label.GetComponent(e)

		items = append(items, Item{
			Entity: e,
			Label:  label.Name,
			Rect:   core.VisibleRect(transform.Translation, node.Size, clip),
			Depth:  transform.Translation.Z,
			Policy: component.ResolveFocusPolicy(policyComp, hasPolicy),
			State:  c.Interaction.MustGetComponent(e).State,
		})
	}

	slices.SortStableFunc(items, func(a, b Item) int {
		if byDepth := cmp.Compare(a.Depth, b.Depth); byDepth != 0 {
			return byDepth
		}
		return cmp.Compare(b.Entity, a.Entity)
	})
	return items
}

// FrontToBack reverses a Collect result in place
func FrontToBack(items []Item) []Item {
	slices.Reverse(items)
	return items
}
