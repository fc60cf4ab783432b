package event

import "fmt"

// EventType represents the type of world event
type EventType int

const (
	// EventWorldClear signals all entities were removed
	// Trigger: World.Clear | Payload: nil
	EventWorldClear EventType = iota

	// EventInteractionChanged reports a node whose interaction differs from the previous frame
	// Trigger: FocusSystem | Consumer: FeedbackSystem, dispatchers | Payload: *InteractionChangedPayload
	EventInteractionChanged
)

func (t EventType) String() string {
	switch t {
	case EventWorldClear:
		return "WorldClear"
	case EventInteractionChanged:
		return "InteractionChanged"
	default:
		return fmt.Sprintf("EventType(%d)", int(t))
	}
}

// Event is a queued world notification
type Event struct {
	Type    EventType
	Payload any
	Frame   int64
}
