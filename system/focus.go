package system

import (
	"cmp"
	"slices"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/uifocus/component"
	"github.com/lixenwraith/uifocus/core"
	"github.com/lixenwraith/uifocus/engine"
	"github.com/lixenwraith/uifocus/event"
	"github.com/lixenwraith/uifocus/input"
	"github.com/lixenwraith/uifocus/parameter"
)

// candidate is a node under the cursor awaiting the policy walk
type candidate struct {
	entity core.Entity
	policy component.FocusPolicy
	depth  float64
}

// FocusSystem resolves pointer interaction for every node once per frame
//
// Pipeline: reset all to None, read cursor, clip and hit-test, sort by depth,
// then walk front to back until the first blocking node
type FocusSystem struct {
	engine.SystemBase

	cursor  input.CursorSource
	mouse   *input.MouseButtons
	touches *input.Touches

	// Scratch reused across frames
	previous   map[core.Entity]component.Interaction
	candidates []candidate

	statFrames     *atomic.Int64
	statCandidates *atomic.Int64
	statHits       *atomic.Int64
	statSkipped    *atomic.Int64

	log zerolog.Logger
}

// NewFocusSystem creates the focus pass reading the cursor from source
// Mouse and touch state come from world resources when registered; absent state never clicks
func NewFocusSystem(w *engine.World, source input.CursorSource) *FocusSystem {
	mouse, _ := engine.GetResource[*input.MouseButtons](w.Resources)
	touches, _ := engine.GetResource[*input.Touches](w.Resources)

	return &FocusSystem{
		SystemBase:     engine.NewSystemBase(w),
		cursor:         source,
		mouse:          mouse,
		touches:        touches,
		previous:       make(map[core.Entity]component.Interaction),
		candidates:     make([]candidate, 0, 16),
		statFrames:     w.Status.Ints.Get("focus.frames"),
		statCandidates: w.Status.Ints.Get("focus.candidates"),
		statHits:       w.Status.Ints.Get("focus.hits"),
		statSkipped:    w.Status.Ints.Get("focus.skipped"),
		log:            log.With().Str("system", "focus").Logger(),
	}
}

// Priority returns the system's priority
func (s *FocusSystem) Priority() int {
	return parameter.PriorityFocus
}

// Update runs one focus pass
func (s *FocusSystem) Update() {
	s.statFrames.Add(1)

	tracked := s.reset()
	defer s.emitChanges(tracked)

	cursor, ok := s.cursor.CursorPosition()
	if !ok {
		s.statSkipped.Add(1)
		return
	}

	s.collect(tracked, cursor)
	sortCandidates(s.candidates)
	s.walk(input.ClickEdge(s.mouse, s.touches))
}

// reset forces every tracked node to None and remembers the value it held
func (s *FocusSystem) reset() []core.Entity {
	store := s.Component.Interaction
	tracked := store.GetAllEntities()

	clear(s.previous)
	for _, e := range tracked {
		s.previous[e] = store.MustGetComponent(e).State
		store.SetComponent(e, component.InteractionComponent{State: component.InteractionNone})
	}
	return tracked
}

// collect gathers nodes whose visible rect contains cursor
func (s *FocusSystem) collect(tracked []core.Entity, cursor core.Vec2) {
	c := s.Component
	s.candidates = s.candidates[:0]

	for _, e := range tracked {
		node, ok := c.Node.GetComponent(e)
		if !ok {
			continue
		}
		transform, ok := c.Transform.GetComponent(e)
		if !ok {
			continue
		}

		var clip *core.Rect
		if clipComp, ok := c.Clip.GetComponent(e); ok {
			clip = &clipComp.Rect
		}

		visible := core.VisibleRect(transform.Translation, node.Size, clip)
		if visible.Empty() || !visible.Contains(cursor) {
			continue
		}

		policyComp, ok := c.Policy.GetComponent(e)
		s.candidates = append(s.candidates, candidate{
			entity: e,
			policy: component.ResolveFocusPolicy(policyComp, ok),
			depth:  transform.Translation.Z,
		})
	}
	s.statCandidates.Add(int64(len(s.candidates)))
}

// sortCandidates orders nearest first; equal depth falls back to creation order
func sortCandidates(cands []candidate) {
	slices.SortStableFunc(cands, func(a, b candidate) int {
		if byDepth := cmp.Compare(b.depth, a.depth); byDepth != 0 {
			return byDepth
		}
		return cmp.Compare(a.entity, b.entity)
	})
}

// walk assigns the frame's state front to back, stopping after the first blocking node
func (s *FocusSystem) walk(clicked bool) {
	state := component.InteractionHovered
	if clicked {
		state = component.InteractionClicked
	}

	for _, cand := range s.candidates {
		s.Component.Interaction.SetComponent(cand.entity, component.InteractionComponent{State: state})
		s.statHits.Add(1)

		if cand.policy == component.FocusBlock {
			break
		}
	}
}

// emitChanges queues an event for every node whose state differs from the last frame
func (s *FocusSystem) emitChanges(tracked []core.Entity) {
	store := s.Component.Interaction
	for _, e := range tracked {
		current := store.MustGetComponent(e).State
		previous := s.previous[e]
		if current == previous {
			continue
		}

		s.log.Debug().
			Uint64("entity", uint64(e)).
			Stringer("from", previous).
			Stringer("to", current).
			Int64("frame", s.World.FrameNumber()).
			Msg("interaction changed")

		s.World.PushEvent(event.EventInteractionChanged, &event.InteractionChangedPayload{
			Entity:   e,
			Previous: previous,
			Current:  current,
		})
	}
}
