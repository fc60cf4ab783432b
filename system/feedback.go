package system

import (
	"github.com/lixenwraith/uifocus/component"
	"github.com/lixenwraith/uifocus/engine"
	"github.com/lixenwraith/uifocus/event"
)

// FeedbackSystem plays an audio cue when a node becomes hovered or clicked
// Event-driven only; it has no per-frame work
type FeedbackSystem struct {
	world *engine.World

	hover bool
}

// NewFeedbackSystem creates the cue dispatcher; hover enables the softer hover cue
func NewFeedbackSystem(w *engine.World, hover bool) *FeedbackSystem {
	return &FeedbackSystem{world: w, hover: hover}
}

// EventTypes returns the event types FeedbackSystem handles
func (s *FeedbackSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventInteractionChanged}
}

// HandleEvent plays the cue for entered states
// Leaving a state (to None, or Clicked back to Hovered) is silent
func (s *FeedbackSystem) HandleEvent(ev event.Event) {
	payload, ok := ev.Payload.(*event.InteractionChangedPayload)
	if !ok {
		return
	}

	switch payload.Current {
	case component.InteractionClicked:
	case component.InteractionHovered:
		if !s.hover || payload.Previous == component.InteractionClicked {
			return
		}
	default:
		return
	}

	res, ok := engine.GetResource[*engine.AudioResource](s.world.Resources)
	if !ok || res.Player == nil || res.Player.IsMuted() {
		return
	}
	res.Player.PlayCue(payload.Current)
}
