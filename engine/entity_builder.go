package engine

import "github.com/lixenwraith/uifocus/core"

// EntityBuilder constructs an entity transactionally
// The ID is reserved upfront; components reach their stores only on Build
//
// Example:
//
//	e := engine.With(
//	    engine.With(world.NewEntity(), world.Components.Node, component.NodeComponent{Size: size}),
//	    world.Components.Interaction, component.InteractionComponent{},
//	).Build()
type EntityBuilder struct {
	world   *World
	entity  core.Entity
	pending []func()
	built   bool
}

// NewEntity reserves an entity ID and returns a builder for it
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With stages a component of type T for the entity being built
// Panics if called after Build
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	e := eb.entity
	eb.pending = append(eb.pending, func() {
		store.SetComponent(e, component)
	})
	return eb
}

// Entity returns the reserved ID without committing
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// Build commits all staged components and returns the entity ID
// Calling Build twice returns the same ID without re-applying components
func (eb *EntityBuilder) Build() core.Entity {
	if eb.built {
		return eb.entity
	}
	eb.built = true
	for _, apply := range eb.pending {
		apply()
	}
	eb.pending = nil
	return eb.entity
}
