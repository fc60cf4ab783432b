package engine

// System is a per-frame unit of work run by World.Update
type System interface {
	Update()
	Priority() int // Lower values run first
}

// SystemBase provides common dependencies for all systems
// Embed in a system struct to eliminate boilerplate
type SystemBase struct {
	World     *World
	Component ComponentStore
}

// NewSystemBase initializes base dependencies from world
// Call once in system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{
		World:     w,
		Component: GetComponentStore(w),
	}
}
