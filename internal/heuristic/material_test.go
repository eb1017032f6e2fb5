package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/testutil"
)

func TestMaterial_Evaluate(t *testing.T) {
	h := NewMaterial(DefaultOptions())
	assert.Equal(t, "MaterialHeuristic", h.Name())

	t.Run("even sides", func(t *testing.T) {
		state := testutil.NewStateBuilder(t, 8, 8, 2).
			King(0, 0, 0, 150).
			King(1, 7, 7, 150).
			Build()
		assert.InDelta(t, 0.5, h.Evaluate(nil, state, 0), tolerance)
		assert.InDelta(t, 0.5, h.Evaluate(nil, state, 1), tolerance)
	})

	t.Run("health advantage", func(t *testing.T) {
		state := testutil.NewStateBuilder(t, 8, 8, 2).
			King(0, 0, 0, 200).
			Warrior(0, 1, 0). // 100 Health
			King(1, 7, 7, 100).
			Build()
		// (300 - 100) / 400 = 0.5 advantage
		assert.InDelta(t, 0.75, h.Evaluate(nil, state, 0), tolerance)
		assert.InDelta(t, 0.25, h.Evaluate(nil, state, 1), tolerance)
	})

	t.Run("empty board is even", func(t *testing.T) {
		state := testutil.NewStateBuilder(t, 8, 8, 2).Build()
		assert.InDelta(t, 0.5, h.Evaluate(nil, state, 0), tolerance)
	})

	t.Run("terminal", func(t *testing.T) {
		state := testutil.NewStateBuilder(t, 8, 8, 2).King(1, 3, 3, 200).GameOver(0).Build()
		assert.Equal(t, MaxScore, h.Evaluate(nil, state, 0))
		assert.Equal(t, MinScore, h.Evaluate(nil, state, 1))
	})
}
