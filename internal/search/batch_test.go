package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/processor"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/scenario"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/heuristic"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/testutil"
)

func randomStates(t *testing.T, n int) []game.GameState {
	t.Helper()
	rng := testutil.NewTestRNG(99)
	states := make([]game.GameState, 0, n)
	for i := 0; i < n; i++ {
		cfg := scenario.DefaultScenarioConfig(8+rng.Intn(5), 8+rng.Intn(5), 2)
		cfg.KinglessChance = 0.2
		s, err := scenario.NewGenerator(cfg, rng).Generate()
		require.NoError(t, err)
		states = append(states, s)
	}
	return states
}

func TestBatchEvaluator_MatchesSequential(t *testing.T) {
	h := heuristic.NewAimToKing(heuristic.DefaultOptions())
	fm := processor.NewTurnModel(testutil.NopLogger())
	states := randomStates(t, 64)

	for _, workers := range []int{0, 1, 3, 16} {
		be := NewBatchEvaluator(h, fm, workers, testutil.NopLogger())
		scored, err := be.Evaluate(context.Background(), states, 0)
		require.NoError(t, err, "workers=%d", workers)
		require.Len(t, scored, len(states))

		for i, s := range scored {
			assert.Equal(t, i, s.Index)
			assert.Equal(t, h.Evaluate(fm, states[i], 0), s.Score, "workers=%d state=%d", workers, i)
		}
	}
}

func TestBatchEvaluator_Cancelled(t *testing.T) {
	h := heuristic.NewAimToKing(heuristic.DefaultOptions())
	be := NewBatchEvaluator(h, processor.NewTurnModel(testutil.NopLogger()), 2, testutil.NopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scored, err := be.Evaluate(ctx, randomStates(t, 8), 0)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, scored)
}

func TestBatchEvaluator_Empty(t *testing.T) {
	h := heuristic.NewMaterial(heuristic.DefaultOptions())
	be := NewBatchEvaluator(h, nil, 4, testutil.NopLogger())

	scored, err := be.Evaluate(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, scored)
}

func TestRank(t *testing.T) {
	in := []Scored{
		{Index: 0, Score: 0.2},
		{Index: 1, Score: 0.9},
		{Index: 2, Score: 0.5},
		{Index: 3, Score: 0.9},
	}

	ranked := Rank(in)
	assert.Equal(t, []int{1, 3, 2, 0}, []int{ranked[0].Index, ranked[1].Index, ranked[2].Index, ranked[3].Index})
	assert.Equal(t, 0, in[0].Index, "input is left in place")
	assert.Empty(t, Rank(nil))
}
