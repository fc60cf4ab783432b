package engine

import (
	"github.com/lixenwraith/uifocus/core"
)

// AnyStore provides type-erased operations for lifecycle management
// World uses it to destroy entities without knowing concrete component types
type AnyStore interface {
	// RemoveEntity deletes the component of an entity
	RemoveEntity(e core.Entity)

	// HasEntity checks if an entity has this component
	HasEntity(e core.Entity) bool

	// CountEntities returns the number of entities with this component
	CountEntities() int

	// ClearAllComponents removes all components from this store
	ClearAllComponents()
}

// QueryableStore extends AnyStore with the iteration needed by QueryBuilder
type QueryableStore interface {
	AnyStore

	// GetAllEntities returns all entities that have this component type
	GetAllEntities() []core.Entity
}
