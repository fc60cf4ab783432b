package event

import (
	"github.com/lixenwraith/uifocus/component"
	"github.com/lixenwraith/uifocus/core"
)

// InteractionChangedPayload carries one node's state transition
type InteractionChangedPayload struct {
	Entity   core.Entity
	Previous component.Interaction
	Current  component.Interaction
}
