package engine

import (
	"reflect"
	"sync"

	"github.com/lixenwraith/uifocus/component"
)

// ResourceStore is a thread-safe container for world singletons
// Systems reach shared input and output state through it without coupling to the backend
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces the resource of type T
// Keyed by the static type T, so interface types can be stored and retrieved as themselves
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeFor[T]()] = resource
}

// GetResource retrieves the resource of type T
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	val, ok := rs.resources[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
// For resources that wiring guarantees, such as input state
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		panic("required resource not found: " + reflect.TypeFor[T]().String())
	}
	return res
}

// RemoveResource deletes the resource of type T
func RemoveResource[T any](rs *ResourceStore) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	delete(rs.resources, reflect.TypeFor[T]())
}

// AudioPlayer is the minimal cue interface used by feedback systems
type AudioPlayer interface {
	PlayCue(state component.Interaction) bool
	IsMuted() bool
}

// AudioResource wraps the audio player for systems
type AudioResource struct {
	Player AudioPlayer
}
