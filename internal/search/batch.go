package search

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/heuristic"
)

// Scored pairs a candidate's position in the input with its score
type Scored struct {
	Index int
	Score float64
}

// BatchEvaluator scores candidate states on a bounded pool of goroutines.
// Each candidate is its own snapshot, so workers share nothing mutable;
// the heuristic is shared and must be safe for concurrent use.
type BatchEvaluator struct {
	heuristic heuristic.Heuristic
	fm        game.ForwardModel
	workers   int
	logger    zerolog.Logger
}

// NewBatchEvaluator creates a batch evaluator. workers below one means one.
func NewBatchEvaluator(h heuristic.Heuristic, fm game.ForwardModel, workers int, logger zerolog.Logger) *BatchEvaluator {
	if workers < 1 {
		workers = 1
	}
	return &BatchEvaluator{
		heuristic: h,
		fm:        fm,
		workers:   workers,
		logger:    logger.With().Str("component", "BatchEvaluator").Str("heuristic", h.Name()).Logger(),
	}
}

// Evaluate returns one score per state, in input order. Cancellation stops
// dispatching new candidates and returns the context error.
func (be *BatchEvaluator) Evaluate(ctx context.Context, states []game.GameState, playerID int) ([]Scored, error) {
	results := make([]Scored, len(states))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(be.workers)

	for i, state := range states {
		if ctx.Err() != nil {
			break
		}
		i, state := i, state
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Scored{
				Index: i,
				Score: heuristic.SafeEvaluate(be.logger, be.heuristic, be.fm, state, playerID),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		be.logger.Debug().Err(err).Int("candidates", len(states)).Msg("Batch evaluation cancelled")
		return nil, err
	}
	return results, nil
}

// Rank orders scores best first. Ties keep input order.
func Rank(scored []Scored) []Scored {
	ranked := make([]Scored, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
