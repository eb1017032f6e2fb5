package heuristic

import (
	"bytes"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/testutil"
)

// stubHeuristic returns a fixed score, or panics when explode is set
type stubHeuristic struct {
	score   float64
	explode bool
}

func (s stubHeuristic) Name() string { return "stub" }

func (s stubHeuristic) Evaluate(game.ForwardModel, game.GameState, int) float64 {
	if s.explode {
		panic("corrupt snapshot")
	}
	return s.score
}

func TestSafeEvaluate(t *testing.T) {
	state := kingScenario(t, 200)

	tests := []struct {
		name     string
		h        Heuristic
		expected float64
		logged   string
	}{
		{"passes finite scores through", stubHeuristic{score: 0.42}, 0.42, ""},
		{"panic scores as worst", stubHeuristic{explode: true}, MinScore, "Heuristic panicked while evaluating state"},
		{"NaN scores as worst", stubHeuristic{score: math.NaN()}, MinScore, "non-finite"},
		{"Inf scores as worst", stubHeuristic{score: math.Inf(1)}, MinScore, "non-finite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)

			score := SafeEvaluate(logger, tt.h, nil, state, 0)
			assert.Equal(t, tt.expected, score)
			if tt.logged == "" {
				assert.Empty(t, buf.String())
			} else {
				assert.Contains(t, buf.String(), tt.logged)
				assert.Contains(t, buf.String(), `"heuristic":"stub"`)
			}
		})
	}
}

func TestSafeEvaluate_RealHeuristic(t *testing.T) {
	state := kingScenario(t, 200)
	h := NewAimToKing(DefaultOptions())
	assert.Equal(t, h.Evaluate(nil, state, 0), SafeEvaluate(testutil.NopLogger(), h, nil, state, 0))
}
