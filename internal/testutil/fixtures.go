package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/core"
)

// StateBuilder assembles snapshots for tests on top of the standard
// King/Warrior/Archer registry.
type StateBuilder struct {
	t testing.TB
	s *game.Snapshot
}

// NewStateBuilder starts an empty width x height board for the given number of players
func NewStateBuilder(t testing.TB, width, height, players int) *StateBuilder {
	t.Helper()
	return &StateBuilder{
		t: t,
		s: game.NewSnapshot(width, height, players, game.NewStandardRegistry()),
	}
}

// King places a King for owner at (x, y) with the given Health
func (b *StateBuilder) King(owner, x, y int, health float64) *StateBuilder {
	b.t.Helper()
	e := b.add(owner, game.TypeKing, x, y)
	require.NoError(b.t, b.s.SetParameter(e.ID, core.ParamHealth, health))
	return b
}

// Warrior places a Warrior for owner at (x, y)
func (b *StateBuilder) Warrior(owner, x, y int) *StateBuilder {
	b.t.Helper()
	b.add(owner, game.TypeWarrior, x, y)
	return b
}

// Archer places an Archer for owner at (x, y)
func (b *StateBuilder) Archer(owner, x, y int) *StateBuilder {
	b.t.Helper()
	b.add(owner, game.TypeArcher, x, y)
	return b
}

// Unit places an entity of any registered type and overrides its parameters
func (b *StateBuilder) Unit(owner, typeID, x, y int, params map[string]float64) *StateBuilder {
	b.t.Helper()
	e := b.add(owner, typeID, x, y)
	for name, v := range params {
		require.NoError(b.t, b.s.SetParameter(e.ID, name, v))
	}
	return b
}

// Current sets whose turn it is
func (b *StateBuilder) Current(playerID int) *StateBuilder {
	b.t.Helper()
	require.NoError(b.t, b.s.SetCurrentPlayer(playerID))
	return b
}

// GameOver marks the game finished with the given winner
func (b *StateBuilder) GameOver(winner int) *StateBuilder {
	b.s.SetGameOver(winner)
	return b
}

// Build returns the assembled snapshot
func (b *StateBuilder) Build() *game.Snapshot {
	return b.s
}

func (b *StateBuilder) add(owner, typeID, x, y int) game.Entity {
	b.t.Helper()
	e, err := b.s.AddEntity(owner, typeID, core.NewPosition(x, y))
	require.NoError(b.t, err)
	return e
}
