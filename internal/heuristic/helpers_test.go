package heuristic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/scenario"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/testutil"
)

// forEachRandomState generates n synthetic states of varying size, player
// count, unit count and king presence and hands each to fn.
func forEachRandomState(t *testing.T, n int, fn func(state *game.Snapshot)) {
	t.Helper()
	rng := testutil.NewTestRNG(12345)

	for i := 0; i < n; i++ {
		cfg := scenario.DefaultScenarioConfig(6+rng.Intn(11), 6+rng.Intn(11), 2+rng.Intn(3))
		cfg.UnitsPerPlayer = rng.Intn(7)
		cfg.MaxHealth = 1 + rng.Float64()*400
		cfg.KinglessChance = 0.3

		state, err := scenario.NewGenerator(cfg, rng).Generate()
		require.NoError(t, err)
		require.NoError(t, state.SetCurrentPlayer(rng.Intn(cfg.PlayerCount)))
		fn(state)
	}
}
