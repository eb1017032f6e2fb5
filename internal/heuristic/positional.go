package heuristic

import (
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/common"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game"
)

// PositionalName is the identifier Positional reports and is configured by
const PositionalName = "PositionalHeuristic"

// Positional rewards holding the centre of the board: the side whose
// entities sit closer to the centre on average scores higher.
type Positional struct {
	opts Options
}

var _ Heuristic = (*Positional)(nil)

// NewPositional creates the heuristic with the given options
func NewPositional(opts Options) *Positional {
	return &Positional{opts: opts}
}

func (h *Positional) Name() string { return PositionalName }

func (h *Positional) Evaluate(_ game.ForwardModel, state game.GameState, playerID int) float64 {
	if score, done := terminalScore(state, playerID); done {
		return score
	}

	w, ht := state.BoardWidth(), state.BoardHeight()
	cx, cy := float64(w-1)/2, float64(ht-1)/2
	// farthest any cell can be from the centre
	span := cx + cy

	owner := sideOwner(state, playerID, h.opts.Perspective)
	var mineSum, theirSum float64
	var mineCount, theirCount int
	for _, e := range state.Entities() {
		d := common.Abs(float64(e.Position.X)-cx) + common.Abs(float64(e.Position.Y)-cy)
		if e.OwnerID == owner {
			mineSum += d
			mineCount++
		} else {
			theirSum += d
			theirCount++
		}
	}

	// a side with nothing on the board is as far from the centre as possible
	mine := common.SafeRatio(common.SafeRatio(mineSum, mineCount, span), span, 1)
	theirs := common.SafeRatio(common.SafeRatio(theirSum, theirCount, span), span, 1)

	return interiorScore(0.5 + (theirs-mine)/2)
}
