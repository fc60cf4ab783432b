package input

// TouchSlots maps backend touch identifiers to small stable slot ids
// The first touch to go down while no other touch is active gets PrimaryTouch
type TouchSlots[K comparable] struct {
	slots map[K]uint64
	used  map[uint64]bool
}

// NewTouchSlots creates an empty mapping
func NewTouchSlots[K comparable]() *TouchSlots[K] {
	return &TouchSlots[K]{
		slots: make(map[K]uint64),
		used:  make(map[uint64]bool),
	}
}

// Acquire returns the slot for key, allocating the lowest free slot if needed
func (s *TouchSlots[K]) Acquire(key K) uint64 {
	if slot, ok := s.slots[key]; ok {
		return slot
	}
	var slot uint64
	for s.used[slot] {
		slot++
	}
	s.slots[key] = slot
	s.used[slot] = true
	return slot
}

// Lookup returns the slot for key without allocating
func (s *TouchSlots[K]) Lookup(key K) (uint64, bool) {
	slot, ok := s.slots[key]
	return slot, ok
}

// Release frees the slot held by key and returns it
func (s *TouchSlots[K]) Release(key K) (uint64, bool) {
	slot, ok := s.slots[key]
	if !ok {
		return 0, false
	}
	delete(s.slots, key)
	delete(s.used, slot)
	return slot, true
}

// Len returns the number of active slots
func (s *TouchSlots[K]) Len() int {
	return len(s.slots)
}
