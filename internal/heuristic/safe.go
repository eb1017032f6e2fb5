package heuristic

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/common"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game"
)

// SafeEvaluate runs h and confines any failure to the candidate being
// scored: a panic or a non-finite result is logged and scored MinScore, so
// one corrupt snapshot never aborts a search.
func SafeEvaluate(logger zerolog.Logger, h Heuristic, fm game.ForwardModel, state game.GameState, playerID int) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Str("heuristic", h.Name()).
				Int("player_id", playerID).
				Interface("panic", r).
				Msg("Heuristic panicked while evaluating state")
			score = MinScore
		}
	}()

	score = h.Evaluate(fm, state, playerID)
	if !common.IsFinite(score) {
		logger.Warn().
			Str("heuristic", h.Name()).
			Int("player_id", playerID).
			Float64("score", score).
			Msg("Heuristic returned a non-finite score")
		return MinScore
	}
	return score
}
