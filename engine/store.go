package engine

import (
	"sync"

	"github.com/lixenwraith/uifocus/core"
)

// Store holds every component of type T
// Dense arrays in insertion order with an entity to index map; removal compacts and keeps order
type Store[T any] struct {
	mu       sync.RWMutex
	index    map[core.Entity]int
	entities []core.Entity
	values   []T
}

// NewStore creates an empty store for T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[core.Entity]int),
		entities: make([]core.Entity, 0, 64),
		values:   make([]T, 0, 64),
	}
}

// SetComponent inserts or replaces the component of e; replacing keeps its slot
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[e]; ok {
		s.values[i] = val
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, val)
}

// GetComponent returns the component of e
func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.index[e]; ok {
		return s.values[i], true
	}
	var zero T
	return zero, false
}

// MustGetComponent returns the component of e or the zero value
func (s *Store[T]) MustGetComponent(e core.Entity) T {
	val, _ := s.GetComponent(e)
	return val
}

// RemoveEntity drops the component of e
func (s *Store[T]) RemoveEntity(e core.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[e]
	if !ok {
		return
	}
	delete(s.index, e)
	last := len(s.entities) - 1
	copy(s.entities[i:], s.entities[i+1:])
	copy(s.values[i:], s.values[i+1:])
	clear(s.values[last:])
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	s.reindexFrom(i)
}

// reindexFrom rewrites index entries after a shift starting at i
func (s *Store[T]) reindexFrom(i int) {
	for ; i < len(s.entities); i++ {
		s.index[s.entities[i]] = i
	}
}

// HasEntity reports whether e has a component here
func (s *Store[T]) HasEntity(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[e]
	return ok
}

// GetAllEntities returns a copy of the entity list in insertion order
func (s *Store[T]) GetAllEntities() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Each calls fn for every component in insertion order under the read lock
// fn must not write to this store
func (s *Store[T]) Each(fn func(e core.Entity, val T)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i, e := range s.entities {
		fn(e, s.values[i])
	}
}

func (s *Store[T]) CountEntities() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// ClearAllComponents empties the store
func (s *Store[T]) ClearAllComponents() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.index)
	s.entities = s.entities[:0]
	clear(s.values)
	s.values = s.values[:0]
}
