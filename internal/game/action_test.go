package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/core"
)

func TestMoveAction_Validate(t *testing.T) {
	s, king, warrior, enemy := newTestSnapshot(t)

	tests := []struct {
		name   string
		action *MoveAction
		err    error
	}{
		{"valid two step move", &MoveAction{PlayerID: 0, EntityID: warrior.ID, To: core.NewPosition(2, 1)}, nil},
		{"beyond movement points", &MoveAction{PlayerID: 0, EntityID: warrior.ID, To: core.NewPosition(3, 1)}, core.ErrOutOfRange},
		{"stay in place", &MoveAction{PlayerID: 0, EntityID: warrior.ID, To: core.NewPosition(1, 0)}, core.ErrOutOfRange},
		{"onto own king", &MoveAction{PlayerID: 0, EntityID: warrior.ID, To: core.NewPosition(0, 0)}, core.ErrCellOccupied},
		{"off board", &MoveAction{PlayerID: 0, EntityID: king.ID, To: core.NewPosition(-1, 0)}, core.ErrInvalidPosition},
		{"enemy entity", &MoveAction{PlayerID: 0, EntityID: enemy.ID, To: core.NewPosition(6, 5)}, core.ErrNotOwned},
		{"not your turn", &MoveAction{PlayerID: 1, EntityID: enemy.ID, To: core.NewPosition(6, 5)}, core.ErrNotPlayersTurn},
		{"missing entity", &MoveAction{PlayerID: 0, EntityID: 99, To: core.NewPosition(6, 5)}, core.ErrEntityNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.action.Validate(s)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.err), "expected %v, got %v", tt.err, err)
		})
	}

	s.SetGameOver(1)
	err := (&MoveAction{PlayerID: 0, EntityID: warrior.ID, To: core.NewPosition(2, 1)}).Validate(s)
	assert.True(t, errors.Is(err, core.ErrGameOver))
}

func TestAttackAction_Validate(t *testing.T) {
	s, king, warrior, enemy := newTestSnapshot(t)
	require.NoError(t, s.MoveEntity(enemy.ID, core.NewPosition(2, 0)))

	tests := []struct {
		name   string
		action *AttackAction
		err    error
	}{
		{"adjacent enemy", &AttackAction{PlayerID: 0, EntityID: warrior.ID, TargetID: enemy.ID}, nil},
		{"too far", &AttackAction{PlayerID: 0, EntityID: king.ID, TargetID: enemy.ID}, core.ErrNotAdjacent},
		{"friendly fire", &AttackAction{PlayerID: 0, EntityID: warrior.ID, TargetID: king.ID}, core.ErrFriendlyFire},
		{"missing target", &AttackAction{PlayerID: 0, EntityID: warrior.ID, TargetID: 42}, core.ErrEntityNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.action.Validate(s)
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.err), "expected %v, got %v", tt.err, err)
		})
	}
}

func TestActionAccessors(t *testing.T) {
	move := &MoveAction{PlayerID: 1, EntityID: 4, To: core.NewPosition(2, 3)}
	assert.Equal(t, 1, move.GetPlayerID())
	assert.Equal(t, 4, move.GetEntityID())
	assert.Equal(t, ActionMove, move.GetType())
	assert.Equal(t, "move 4 to (2,3)", move.String())

	attack := &AttackAction{PlayerID: 0, EntityID: 2, TargetID: 9}
	assert.Equal(t, ActionAttack, attack.GetType())
	assert.Equal(t, "attack", attack.GetType().String())
	assert.Equal(t, "attack 9 with 2", attack.String())
}
