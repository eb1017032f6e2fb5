package heuristic

import (
	"fmt"
)

// Perspective decides which entities count as "ours" when partitioning a state.
type Perspective int

const (
	// PerspectiveEvaluated partitions by the playerID passed to Evaluate.
	PerspectiveEvaluated Perspective = iota
	// PerspectiveCurrentTurn partitions by the state's current-turn player,
	// regardless of who is being evaluated.
	PerspectiveCurrentTurn
)

func (p Perspective) String() string {
	switch p {
	case PerspectiveEvaluated:
		return "evaluated"
	case PerspectiveCurrentTurn:
		return "current_turn"
	default:
		return fmt.Sprintf("Perspective(%d)", int(p))
	}
}

// ParsePerspective converts a config value to a Perspective
func ParsePerspective(s string) (Perspective, error) {
	switch s {
	case "evaluated", "":
		return PerspectiveEvaluated, nil
	case "current_turn":
		return PerspectiveCurrentTurn, nil
	default:
		return 0, fmt.Errorf("unknown perspective %q", s)
	}
}

// ThreatReference decides whose king the threat signal measures distance to.
type ThreatReference int

const (
	// ThreatOwnKing measures how close enemies are to our own king.
	ThreatOwnKing ThreatReference = iota
	// ThreatOpponentKing measures enemy distance to the opponent's king.
	ThreatOpponentKing
)

func (t ThreatReference) String() string {
	switch t {
	case ThreatOwnKing:
		return "own_king"
	case ThreatOpponentKing:
		return "opponent_king"
	default:
		return fmt.Sprintf("ThreatReference(%d)", int(t))
	}
}

// ParseThreatReference converts a config value to a ThreatReference
func ParseThreatReference(s string) (ThreatReference, error) {
	switch s {
	case "own_king", "":
		return ThreatOwnKing, nil
	case "opponent_king":
		return ThreatOpponentKing, nil
	default:
		return 0, fmt.Errorf("unknown threat reference %q", s)
	}
}

// Options holds the constants a heuristic is built with. A heuristic copies
// them at construction and never changes them.
type Options struct {
	Perspective       Perspective
	ThreatReference   ThreatReference
	DefaultKingHealth float64 // used when the opponent has no king
	HealthScale       float64 // king damage is 1 - health/HealthScale
	ReachReward       float64 // per entity able to reach the opponent king next turn
	MaterialScale     float64 // entity-count differential divisor
}

// DefaultOptions returns the default heuristic options
func DefaultOptions() Options {
	return Options{
		Perspective:       PerspectiveEvaluated,
		ThreatReference:   ThreatOwnKing,
		DefaultKingHealth: 200.0,
		HealthScale:       400.0,
		ReachReward:       0.5,
		MaterialScale:     5.0 * 4.0, // five baseline units, scaled by four
	}
}

// ReferenceOptions reproduces the legacy AimToKing partitioning: sides are
// split by the current-turn player and threat is measured against the
// opponent king.
func ReferenceOptions() Options {
	o := DefaultOptions()
	o.Perspective = PerspectiveCurrentTurn
	o.ThreatReference = ThreatOpponentKing
	return o
}

func (o Options) validate() error {
	if o.HealthScale <= 0 {
		return fmt.Errorf("health scale must be positive, got %v", o.HealthScale)
	}
	if o.MaterialScale <= 0 {
		return fmt.Errorf("material scale must be positive, got %v", o.MaterialScale)
	}
	if o.DefaultKingHealth < 0 {
		return fmt.Errorf("default king health must be non-negative, got %v", o.DefaultKingHealth)
	}
	if o.ReachReward < 0 {
		return fmt.Errorf("reach reward must be non-negative, got %v", o.ReachReward)
	}
	return nil
}
