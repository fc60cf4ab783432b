package engine

import (
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/uifocus/core"
	"github.com/lixenwraith/uifocus/event"
	"github.com/lixenwraith/uifocus/status"
)

// World contains all entities, their components, world resources and systems
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resources  *ResourceStore
	Components ComponentStore
	Status     *status.Registry

	events *event.Queue
	router *EventRouter
	frame  atomic.Int64

	statDropped *atomic.Int64

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates an empty world with all component stores initialized
func NewWorld() *World {
	queue := event.NewQueue()
	reg := status.NewRegistry()
	return &World{
		nextEntityID: 1,
		Resources:    NewResourceStore(),
		Components:   newComponentStore(),
		Status:       reg,
		events:       queue,
		router:       NewEventRouter(queue),
		statDropped:  reg.Ints.Get("event.dropped"),
		systems:      make([]System, 0),
	}
}

// CreateEntity reserves a new entity ID
// IDs increase monotonically and are never reused until Clear
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
func (w *World) DestroyEntity(e core.Entity) {
	for _, store := range w.Components.all() {
		store.RemoveEntity(e)
	}
}

// LiveEntityCount returns the number of distinct entities holding at least one component
func (w *World) LiveEntityCount() int {
	seen := make(map[core.Entity]struct{})
	for _, store := range w.Components.all() {
		for _, e := range store.GetAllEntities() {
			seen[e] = struct{}{}
		}
	}
	return len(seen)
}

// Clear removes all entities and components from the world
func (w *World) Clear() {
	w.mu.Lock()
	w.nextEntityID = 1
	for _, store := range w.Components.all() {
		store.ClearAllComponents()
	}
	w.mu.Unlock()

	w.PushEvent(event.EventWorldClear, nil)
}

// AddSystem adds a system to the world and sorts by priority
// Equal priorities keep registration order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Stable bubble sort, small N
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RegisterHandler routes events of the handler's declared types to it
func (w *World) RegisterHandler(h EventHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.router.Register(h)
}

// RunSafe executes a function while holding the world's update lock
// Backends use it to read component state between frames
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs one frame: advances the frame counter, runs systems in priority order,
// then dispatches the events they queued
func (w *World) Update() {
	w.RunSafe(w.UpdateLocked)
}

// UpdateLocked runs a frame assuming the caller already holds the update lock
func (w *World) UpdateLocked() {
	w.frame.Add(1)

	for _, system := range w.Systems() {
		system.Update()
	}

	w.mu.RLock()
	router := w.router
	w.mu.RUnlock()
	router.DispatchAll()
	w.statDropped.Store(int64(w.events.Dropped()))
}

// FrameNumber returns the index of the current or last completed frame
func (w *World) FrameNumber() int64 {
	return w.frame.Load()
}

// PushEvent queues an event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.events.Push(event.Event{
		Type:    eventType,
		Payload: payload,
		Frame:   w.frame.Load(),
	})
}
