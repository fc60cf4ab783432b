package component

import (
	"fmt"
	"strings"
)

// FocusPolicy decides whether a node consumes pointer interaction
type FocusPolicy uint8

const (
	// FocusBlock stops interaction from reaching nodes behind this one
	FocusBlock FocusPolicy = iota
	// FocusPass lets interaction continue to the next node behind
	FocusPass
)

// DefaultFocusPolicy applies to nodes without a FocusPolicyComponent
const DefaultFocusPolicy = FocusBlock

// FocusPolicyComponent attaches an explicit policy to a node
type FocusPolicyComponent struct {
	Policy FocusPolicy
}

// ResolveFocusPolicy maps an optional component lookup to an effective policy
func ResolveFocusPolicy(comp FocusPolicyComponent, ok bool) FocusPolicy {
	if !ok {
		return DefaultFocusPolicy
	}
	return comp.Policy
}

func (p FocusPolicy) String() string {
	switch p {
	case FocusBlock:
		return "block"
	case FocusPass:
		return "pass"
	default:
		return fmt.Sprintf("FocusPolicy(%d)", uint8(p))
	}
}

// MarshalText implements encoding.TextMarshaler
func (p FocusPolicy) MarshalText() ([]byte, error) {
	switch p {
	case FocusBlock, FocusPass:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("invalid focus policy %d", uint8(p))
	}
}

// UnmarshalText accepts "block" or "pass", case-insensitive
func (p *FocusPolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "block":
		*p = FocusBlock
	case "pass":
		*p = FocusPass
	default:
		return fmt.Errorf("unknown focus policy %q", text)
	}
	return nil
}

// Interaction is the per-frame pointer state of a node
// Zero value is InteractionNone
type Interaction uint8

const (
	InteractionNone Interaction = iota
	InteractionHovered
	InteractionClicked
)

func (i Interaction) String() string {
	switch i {
	case InteractionNone:
		return "none"
	case InteractionHovered:
		return "hovered"
	case InteractionClicked:
		return "clicked"
	default:
		return fmt.Sprintf("Interaction(%d)", uint8(i))
	}
}

// MarshalText implements encoding.TextMarshaler
func (i Interaction) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// InteractionComponent holds the focus pass output for a node
// Written only by the focus system; read by style and dispatch code after it runs
type InteractionComponent struct {
	State Interaction
}
