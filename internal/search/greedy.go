package search

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/rules"
)

// ErrNoLegalActions is returned when the player has nothing to do
var ErrNoLegalActions = errors.New("no legal actions")

// Decision is the outcome of one greedy search step
type Decision struct {
	Action     game.Action
	State      game.GameState
	Score      float64
	Candidates int
}

// GreedyAgent is a one-ply search: it tries every legal action through the
// forward model and keeps the one whose resulting state scores best.
type GreedyAgent struct {
	fm            game.ForwardModel
	evaluator     *BatchEvaluator
	maxCandidates int
	logger        zerolog.Logger
}

// NewGreedyAgent creates a greedy agent. maxCandidates caps how many legal
// actions are expanded per decision; zero or less means no cap.
func NewGreedyAgent(fm game.ForwardModel, evaluator *BatchEvaluator, maxCandidates int, logger zerolog.Logger) *GreedyAgent {
	return &GreedyAgent{
		fm:            fm,
		evaluator:     evaluator,
		maxCandidates: maxCandidates,
		logger:        logger.With().Str("component", "GreedyAgent").Logger(),
	}
}

// Decide picks the best single action for playerID in state
func (a *GreedyAgent) Decide(ctx context.Context, state game.GameState, playerID int) (Decision, error) {
	actions := rules.LegalActions(state, playerID)
	if len(actions) == 0 {
		return Decision{}, ErrNoLegalActions
	}
	if a.maxCandidates > 0 && len(actions) > a.maxCandidates {
		actions = attacksFirst(actions)[:a.maxCandidates]
	}

	candidates := make([]game.GameState, 0, len(actions))
	expanded := make([]game.Action, 0, len(actions))
	for _, action := range actions {
		next, err := a.fm.Advance(ctx, state, []game.Action{action})
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return Decision{}, ctxErr
			}
			a.logger.Debug().Err(err).Int("player_id", playerID).Msg("Dropping candidate the forward model rejected")
			continue
		}
		candidates = append(candidates, next)
		expanded = append(expanded, action)
	}
	if len(candidates) == 0 {
		return Decision{}, ErrNoLegalActions
	}

	scored, err := a.evaluator.Evaluate(ctx, candidates, playerID)
	if err != nil {
		return Decision{}, err
	}
	best := Rank(scored)[0]

	a.logger.Debug().
		Int("player_id", playerID).
		Int("candidates", len(candidates)).
		Float64("best_score", best.Score).
		Msg("Greedy decision made")

	return Decision{
		Action:     expanded[best.Index],
		State:      candidates[best.Index],
		Score:      best.Score,
		Candidates: len(candidates),
	}, nil
}

// attacksFirst reorders actions so attacks come before moves, keeping the
// enumeration order within each group. A capped search then never drops an
// attack in favour of a move.
func attacksFirst(actions []game.Action) []game.Action {
	ordered := make([]game.Action, 0, len(actions))
	for _, action := range actions {
		if _, ok := action.(*game.AttackAction); ok {
			ordered = append(ordered, action)
		}
	}
	for _, action := range actions {
		if _, ok := action.(*game.AttackAction); !ok {
			ordered = append(ordered, action)
		}
	}
	return ordered
}
