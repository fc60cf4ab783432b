package system

import (
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/uifocus/component"
	"github.com/lixenwraith/uifocus/core"
	"github.com/lixenwraith/uifocus/engine"
	"github.com/lixenwraith/uifocus/event"
	"github.com/lixenwraith/uifocus/parameter"
)

// DiagnosticsSampleInterval is the number of frames between samples
const DiagnosticsSampleInterval = 60

// DiagnosticsSystem samples store sizes, interaction tallies and consistency checks
type DiagnosticsSystem struct {
	world *engine.World

	tickCounter int64

	statNodeCount        *atomic.Int64
	statInteractionCount *atomic.Int64
	statClipCount        *atomic.Int64
	statPolicyCount      *atomic.Int64

	statHovered *atomic.Int64
	statClicked *atomic.Int64

	// Interaction without Node or Transform: tracked but never hittable
	statUnplaced *atomic.Int64

	statEntityLive *atomic.Int64

	log zerolog.Logger
}

// NewDiagnosticsSystem creates the sampler
func NewDiagnosticsSystem(w *engine.World) *DiagnosticsSystem {
	reg := w.Status
	return &DiagnosticsSystem{
		world:                w,
		statNodeCount:        reg.Ints.Get("store.node.count"),
		statInteractionCount: reg.Ints.Get("store.interaction.count"),
		statClipCount:        reg.Ints.Get("store.clip.count"),
		statPolicyCount:      reg.Ints.Get("store.policy.count"),
		statHovered:          reg.Ints.Get("interaction.hovered"),
		statClicked:          reg.Ints.Get("interaction.clicked"),
		statUnplaced:         reg.Ints.Get("consistency.interaction_without_node"),
		statEntityLive:       reg.Ints.Get("entity.live"),
		log:                  log.With().Str("system", "diagnostics").Logger(),
	}
}

func (s *DiagnosticsSystem) Priority() int {
	return parameter.PriorityDiagnostics
}

func (s *DiagnosticsSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventWorldClear}
}

// HandleEvent restarts sampling after a world clear
func (s *DiagnosticsSystem) HandleEvent(ev event.Event) {
	if ev.Type == event.EventWorldClear {
		s.tickCounter = 0
	}
}

func (s *DiagnosticsSystem) Update() {
	s.tickCounter++
	if s.tickCounter%DiagnosticsSampleInterval != 1 {
		return
	}
	s.Sample()
}

// Sample collects every metric now
func (s *DiagnosticsSystem) Sample() {
	c := s.world.Components

	s.statNodeCount.Store(int64(c.Node.CountEntities()))
	s.statInteractionCount.Store(int64(c.Interaction.CountEntities()))
	s.statClipCount.Store(int64(c.Clip.CountEntities()))
	s.statPolicyCount.Store(int64(c.Policy.CountEntities()))

	var hovered, clicked, unplaced int64
	c.Interaction.Each(func(e core.Entity, ic component.InteractionComponent) {
		switch ic.State {
		case component.InteractionHovered:
			hovered++
		case component.InteractionClicked:
			clicked++
		}
		if !c.Node.HasEntity(e) || !c.Transform.HasEntity(e) {
			unplaced++
		}
	})
	s.statHovered.Store(hovered)
	s.statClicked.Store(clicked)
	s.statUnplaced.Store(unplaced)

	live := int64(s.world.LiveEntityCount())
	s.statEntityLive.Store(live)

	s.log.Debug().
		Int64("frame", s.world.FrameNumber()).
		Int64("hovered", hovered).
		Int64("clicked", clicked).
		Int64("unplaced", unplaced).
		Int64("live", live).
		Msg("sample")
}
