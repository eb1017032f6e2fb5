package game

import (
	"context"
	"fmt"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/core"
)

// ActionType represents the type of action
type ActionType int

const (
	ActionMove ActionType = iota
	ActionAttack
)

func (t ActionType) String() string {
	switch t {
	case ActionMove:
		return "move"
	case ActionAttack:
		return "attack"
	default:
		return "unknown"
	}
}

// Action represents a player action
type Action interface {
	GetPlayerID() int
	GetEntityID() int
	GetType() ActionType
	Validate(s GameState) error
}

// ForwardModel advances a state by one simulated step. Implementations
// must leave the input untouched and return an independent state.
type ForwardModel interface {
	Advance(ctx context.Context, state GameState, actions []Action) (GameState, error)
}

// MoveAction moves an entity to any free cell within its MovementPoints
type MoveAction struct {
	PlayerID int
	EntityID int
	To       core.Position
}

func (m *MoveAction) GetPlayerID() int    { return m.PlayerID }
func (m *MoveAction) GetEntityID() int    { return m.EntityID }
func (m *MoveAction) GetType() ActionType { return ActionMove }

func (m *MoveAction) String() string {
	return fmt.Sprintf("move %d to %s", m.EntityID, m.To)
}

func (m *MoveAction) Validate(s GameState) error {
	e, err := validateActor(s, m.PlayerID, m.EntityID)
	if err != nil {
		return err
	}

	if !m.To.IsValid(s.BoardWidth(), s.BoardHeight()) {
		return core.ErrInvalidPosition
	}

	points, err := e.Parameter(core.ParamMovementPoints)
	if err != nil {
		return err
	}
	dist := e.Position.DistanceTo(m.To)
	if dist == 0 || float64(dist) > points {
		return core.ErrOutOfRange
	}

	for _, other := range s.Entities() {
		if other.Position.Equal(m.To) {
			return core.ErrCellOccupied
		}
	}
	return nil
}

// AttackAction deals the attacker's AttackDamage to an adjacent enemy
type AttackAction struct {
	PlayerID int
	EntityID int
	TargetID int
}

func (a *AttackAction) GetPlayerID() int    { return a.PlayerID }
func (a *AttackAction) GetEntityID() int    { return a.EntityID }
func (a *AttackAction) GetType() ActionType { return ActionAttack }

func (a *AttackAction) String() string {
	return fmt.Sprintf("attack %d with %d", a.TargetID, a.EntityID)
}

func (a *AttackAction) Validate(s GameState) error {
	e, err := validateActor(s, a.PlayerID, a.EntityID)
	if err != nil {
		return err
	}

	target, ok := s.Entity(a.TargetID)
	if !ok {
		return core.ErrEntityNotFound
	}
	if target.OwnerID == a.PlayerID {
		return core.ErrFriendlyFire
	}
	if !e.Position.IsAdjacentTo(target.Position) {
		return core.ErrNotAdjacent
	}
	if _, err := e.Parameter(core.ParamAttackDamage); err != nil {
		return err
	}
	if _, err := target.Parameter(core.ParamHealth); err != nil {
		return err
	}
	return nil
}

// validateActor runs the checks shared by every action type
func validateActor(s GameState, playerID, entityID int) (Entity, error) {
	if s.IsGameOver() {
		return Entity{}, core.ErrGameOver
	}
	if playerID != s.CurrentPlayerID() {
		return Entity{}, core.ErrNotPlayersTurn
	}
	e, ok := s.Entity(entityID)
	if !ok {
		return Entity{}, core.ErrEntityNotFound
	}
	if e.OwnerID != playerID {
		return Entity{}, core.ErrNotOwned
	}
	return e, nil
}
