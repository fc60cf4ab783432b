package core

// Entity is a world-unique element identifier
// IDs are allocated monotonically, so ordering by ID is creation order
type Entity uint64

// NoEntity is the reserved zero identifier
const NoEntity Entity = 0
