// Package heuristic scores simulated game states for search. Every variant
// implements Heuristic, holds only immutable options, and may be called from
// many goroutines at once, each with its own snapshot.
package heuristic

import (
	"math"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/common"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game"
)

// Output range shared by every variant. A won game maps to MaxScore and a
// lost (or drawn) game to MinScore. Both are reserved for finished games.
const (
	MinScore = 0.0
	MaxScore = 1.0
)

// Width of the band next to each bound where non-terminal scores bend into
// an exponential tail instead of reaching MinScore or MaxScore.
const edgeMargin = 0.05

// Heuristic is the capability every scoring strategy exposes to search.
type Heuristic interface {
	// Evaluate scores state from playerID's point of view. It must not
	// mutate state. fm is available to variants that look ahead.
	Evaluate(fm game.ForwardModel, state game.GameState, playerID int) float64
	// Name is a fixed identifier for logs and configuration.
	Name() string
}

// terminalScore short-circuits finished games
func terminalScore(state game.GameState, playerID int) (float64, bool) {
	if !state.IsGameOver() {
		return 0, false
	}
	if state.WinnerID() == playerID {
		return MaxScore, true
	}
	return MinScore, true
}

// interiorScore maps x, a score on the [MinScore, MaxScore] scale, into the
// open interval between them. It is the identity on
// [MinScore+edgeMargin, MaxScore-edgeMargin] and strictly increasing
// everywhere, with a slope of 1 where the tails join.
func interiorScore(x float64) float64 {
	lo, hi := MinScore+edgeMargin, MaxScore-edgeMargin
	switch {
	case x > hi:
		x = MaxScore - edgeMargin*math.Exp(-(x-hi)/edgeMargin)
	case x < lo:
		x = MinScore + edgeMargin*math.Exp((x-lo)/edgeMargin)
	}
	// extreme inputs round onto the bound in float64
	return common.Clamp(x, math.Nextafter(MinScore, MaxScore), math.Nextafter(MaxScore, MinScore))
}
