package engine

import (
	"github.com/lixenwraith/uifocus/component"
)

// ComponentStore provides cached pointers to typed component stores
// Initialized once per system to eliminate runtime lookup
type ComponentStore struct {
	// Geometry
	Node      *Store[component.NodeComponent]
	Transform *Store[component.TransformComponent]
	Clip      *Store[component.ClipComponent]

	// Focus
	Policy      *Store[component.FocusPolicyComponent]
	Interaction *Store[component.InteractionComponent]

	// Presentation
	Label *Store[component.LabelComponent]
}

// GetComponentStore returns the world's store set
// Pointers remain valid for the world lifetime
func GetComponentStore(w *World) ComponentStore {
	return w.Components
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Node:        NewStore[component.NodeComponent](),
		Transform:   NewStore[component.TransformComponent](),
		Clip:        NewStore[component.ClipComponent](),
		Policy:      NewStore[component.FocusPolicyComponent](),
		Interaction: NewStore[component.InteractionComponent](),
		Label:       NewStore[component.LabelComponent](),
	}
}

// all lists every store for uniform lifecycle operations
func (c *ComponentStore) all() []QueryableStore {
	return []QueryableStore{
		c.Node,
		c.Transform,
		c.Clip,
		c.Policy,
		c.Interaction,
		c.Label,
	}
}
