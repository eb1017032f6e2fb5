package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPosition    = errors.New("invalid position")
	ErrNotAdjacent        = errors.New("entities are not adjacent")
	ErrNotOwned           = errors.New("entity not owned by player")
	ErrOutOfRange         = errors.New("target beyond movement range")
	ErrCellOccupied       = errors.New("cell is occupied")
	ErrGameOver           = errors.New("game is over")
	ErrInvalidPlayer      = errors.New("invalid player ID")
	ErrNotPlayersTurn     = errors.New("not the player's turn")
	ErrEntityNotFound     = errors.New("entity not found")
	ErrUnknownEntityType  = errors.New("unknown entity type")
	ErrDuplicateType      = errors.New("entity type already registered")
	ErrDuplicateEntity    = errors.New("entity ID already in use")
	ErrUnknownParameter   = errors.New("unknown parameter")
	ErrFriendlyFire       = errors.New("cannot attack own entity")
	ErrUnsupportedAction  = errors.New("unsupported action")
)

// ParameterError reports a named-parameter lookup that the entity's type does not define.
type ParameterError struct {
	EntityID int
	TypeID   int
	Name     string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("entity %d (type %d): parameter %q: %v", e.EntityID, e.TypeID, e.Name, ErrUnknownParameter)
}

func (e *ParameterError) Unwrap() error { return ErrUnknownParameter }

// ActionError adds player and entity context to an action failure.
type ActionError struct {
	PlayerID int
	EntityID int
	Action   string
	Err      error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("player %d: %s with entity %d: %v", e.PlayerID, e.Action, e.EntityID, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

// WrapActionError returns nil when err is nil.
func WrapActionError(playerID, entityID int, action string, err error) error {
	if err == nil {
		return nil
	}
	return &ActionError{PlayerID: playerID, EntityID: entityID, Action: action, Err: err}
}
