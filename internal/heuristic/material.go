package heuristic

import (
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/common"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/core"
)

// MaterialName is the identifier Material reports and is configured by
const MaterialName = "MaterialHeuristic"

// Material compares the total remaining Health of both sides. Entities
// without a Health parameter are worth one point.
type Material struct {
	opts Options
}

var _ Heuristic = (*Material)(nil)

// NewMaterial creates the heuristic with the given options
func NewMaterial(opts Options) *Material {
	return &Material{opts: opts}
}

func (h *Material) Name() string { return MaterialName }

func (h *Material) Evaluate(_ game.ForwardModel, state game.GameState, playerID int) float64 {
	if score, done := terminalScore(state, playerID); done {
		return score
	}

	owner := sideOwner(state, playerID, h.opts.Perspective)
	mine, theirs := 0.0, 0.0
	for _, e := range state.Entities() {
		worth := 1.0
		if hp, err := e.Parameter(core.ParamHealth); err == nil {
			worth = max(hp, 0)
		}
		if e.OwnerID == owner {
			mine += worth
		} else {
			theirs += worth
		}
	}

	// advantage is in [-1, 1]; an empty board is even
	advantage := common.SafeRatio(mine-theirs, mine+theirs, 0)
	return interiorScore(0.5 + advantage/2)
}
