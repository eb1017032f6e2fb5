package heuristic

import (
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/common"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/core"
)

// AimToKingName is the identifier AimToKing reports and is configured by
const AimToKingName = "AimToKingHeuristic"

// Values used when a signal's reference set is empty. Each keeps the term
// neutral instead of dividing by zero.
const (
	emptyProximity    = 0.0 // no own entities, or no opponent king to approach
	emptyThreat       = 0.0 // no opponent entities, or no reference king
	emptyReachability = 0.0 // no own entities, or no opponent king
)

// Raw scores are shifted and scaled so the reference range [-2, 2] spans [0,1]
const (
	rawOffset = 2.0
	rawSpan   = 4.0
)

// Breakdown exposes each term AimToKing adds up, for logging and tests.
type Breakdown struct {
	Terminal          bool
	Proximity         float64
	KingDamage        float64
	Threat            float64 // already subtracted from Raw
	Reachability      float64
	Material          float64
	Raw               float64
	Score             float64
	PlayerEntities    int
	OpponentEntities  int
	OpponentKingFound bool
}

// AimToKing rewards closing in on and damaging the opponent king, while
// penalising enemy pressure on the reference king and rewarding material.
type AimToKing struct {
	opts Options
}

var _ Heuristic = (*AimToKing)(nil)

// NewAimToKing creates the heuristic with the given options
func NewAimToKing(opts Options) *AimToKing {
	return &AimToKing{opts: opts}
}

func (h *AimToKing) Name() string { return AimToKingName }

// Options returns the options the heuristic was built with
func (h *AimToKing) Options() Options { return h.opts }

// Evaluate scores state for playerID in [MinScore, MaxScore], reaching the
// bounds only for finished games. A snapshot
// that cannot be read (a King without Health) scores MinScore; use Explain
// to see the error.
func (h *AimToKing) Evaluate(_ game.ForwardModel, state game.GameState, playerID int) float64 {
	b, err := h.Explain(state, playerID)
	if err != nil {
		return MinScore
	}
	return b.Score
}

// Explain computes the score along with every contributing term
func (h *AimToKing) Explain(state game.GameState, playerID int) (Breakdown, error) {
	if score, done := terminalScore(state, playerID); done {
		return Breakdown{Terminal: true, Score: score}, nil
	}

	s, err := extractSignals(state, playerID, h.opts)
	if err != nil {
		return Breakdown{}, err
	}
	return h.combine(s), nil
}

func (h *AimToKing) combine(s signals) Breakdown {
	b := Breakdown{
		PlayerEntities:    len(s.player),
		OpponentEntities:  len(s.opponent),
		OpponentKingFound: s.opponentKing.found,
	}

	b.Proximity = h.proximity(s)
	b.KingDamage = 1.0 - s.opponentKing.health/h.opts.HealthScale
	b.Threat = h.threat(s)
	b.Reachability = h.reachability(s)
	b.Material = float64(len(s.player))/h.opts.MaterialScale - float64(len(s.opponent))/h.opts.MaterialScale

	b.Raw = b.Proximity + b.KingDamage - b.Threat + b.Reachability + b.Material
	b.Score = interiorScore((b.Raw + rawOffset) / rawSpan)
	return b
}

// proximity is 1 - mean distance to the opponent king over the board's max distance
func (h *AimToKing) proximity(s signals) float64 {
	if !s.opponentKing.found || len(s.player) == 0 {
		return emptyProximity
	}

	total := 0
	for _, e := range s.player {
		total += e.Position.DistanceTo(s.opponentKing.pos)
	}
	mean := common.SafeRatio(total, len(s.player), 0)
	return 1.0 - common.SafeRatio(mean, core.MaxDistance(s.boardWidth, s.boardHeight), 0)
}

// threat is the mean of 1/(d+1) over opponent entities, d being the
// distance to the configured reference king
func (h *AimToKing) threat(s signals) float64 {
	ref := s.ownKing
	if h.opts.ThreatReference == ThreatOpponentKing {
		ref = s.opponentKing
	}
	if !ref.found {
		return emptyThreat
	}

	sum := 0.0
	for _, e := range s.opponent {
		sum += 1.0 / (float64(e.Position.DistanceTo(ref.pos)) + 1.0)
	}
	return common.SafeRatio(sum, len(s.opponent), emptyThreat)
}

// reachability averages ReachReward over own entities whose MovementPoints
// cover the distance to the opponent king. Entities without MovementPoints
// (buildings) cannot reach.
func (h *AimToKing) reachability(s signals) float64 {
	if !s.opponentKing.found {
		return emptyReachability
	}

	gain := 0.0
	for _, e := range s.player {
		if canReach(e, s.opponentKing.pos) {
			gain += h.opts.ReachReward
		}
	}
	return common.SafeRatio(gain, len(s.player), emptyReachability)
}

func canReach(e game.Entity, target core.Position) bool {
	points, err := e.Parameter(core.ParamMovementPoints)
	if err != nil {
		return false
	}
	return points >= float64(e.Position.DistanceTo(target))
}
