package processor

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/core"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/events"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/rules"
)

// ErrUnsupportedState is returned when Advance is given a GameState it cannot clone
var ErrUnsupportedState = errors.New("turn model: state is not a *game.Snapshot")

// TurnModel is the forward model used by search: it applies one player's
// actions to a copy of the state, hands the turn on, and settles the game
// if a king has fallen.
type TurnModel struct {
	logger    zerolog.Logger
	publisher events.Publisher
}

var _ game.ForwardModel = (*TurnModel)(nil)

// Option configures a TurnModel
type Option func(*TurnModel)

// WithPublisher makes the model publish an event for every applied or
// rejected action. Search should use a model without one, since it
// advances many throwaway candidates.
func WithPublisher(p events.Publisher) Option {
	return func(tm *TurnModel) { tm.publisher = p }
}

// NewTurnModel creates a new turn-based forward model
func NewTurnModel(logger zerolog.Logger, opts ...Option) *TurnModel {
	tm := &TurnModel{
		logger: logger.With().Str("component", "TurnModel").Logger(),
	}
	for _, opt := range opts {
		opt(tm)
	}
	return tm
}

// Advance applies actions in order to a clone of state. Invalid actions are
// logged and skipped; the first such failure is returned alongside the new
// state so callers can decide whether to keep it.
func (tm *TurnModel) Advance(ctx context.Context, state game.GameState, actions []game.Action) (game.GameState, error) {
	src, ok := state.(*game.Snapshot)
	if !ok {
		return nil, ErrUnsupportedState
	}
	if src.IsGameOver() {
		return nil, core.ErrGameOver
	}

	next := src.Clone()
	gameID := src.ID.String()
	player := next.CurrentPlayerID()
	turn := next.Turn()
	applied := 0
	var encounteredError error

	for _, action := range actions {
		select {
		case <-ctx.Done():
			tm.logger.Warn().Err(ctx.Err()).Msg("Action processing interrupted by context cancellation")
			return nil, ctx.Err()
		default:
		}

		if err := tm.apply(next, gameID, action); err != nil {
			wrappedErr := core.WrapActionError(action.GetPlayerID(), action.GetEntityID(), action.GetType().String(), err)
			tm.logger.Debug().Err(wrappedErr).
				Int("player_id", action.GetPlayerID()).
				Msg("Skipping invalid action")
			tm.publish(events.NewActionRejectedEvent(gameID, action.GetPlayerID(), action.GetEntityID(), action.GetType().String(), err))
			if encounteredError == nil {
				encounteredError = wrappedErr
			}
			continue
		}
		applied++
		if next.IsGameOver() {
			break
		}
	}

	tm.publish(events.NewTurnEndedEvent(gameID, turn, player, len(actions), applied))
	if next.IsGameOver() {
		tm.publish(events.NewGameEndedEvent(gameID, next.WinnerID(), turn))
	} else {
		next.AdvanceTurn()
	}
	return next, encounteredError
}

func (tm *TurnModel) publish(e events.Event) {
	if tm.publisher != nil {
		tm.publisher.Publish(e)
	}
}

func (tm *TurnModel) apply(s *game.Snapshot, gameID string, action game.Action) error {
	if err := action.Validate(s); err != nil {
		return err
	}

	switch act := action.(type) {
	case *game.MoveAction:
		from, _ := s.Entity(act.EntityID)
		if err := s.MoveEntity(act.EntityID, act.To); err != nil {
			return err
		}
		tm.publish(events.NewEntityMovedEvent(gameID, act.PlayerID, act.EntityID, from.Position, act.To))
		return nil
	case *game.AttackAction:
		return tm.applyAttack(s, gameID, act)
	default:
		return core.ErrUnsupportedAction
	}
}

func (tm *TurnModel) applyAttack(s *game.Snapshot, gameID string, act *game.AttackAction) error {
	attacker, _ := s.Entity(act.EntityID)
	target, _ := s.Entity(act.TargetID)

	damage := attacker.MustParameter(core.ParamAttackDamage)
	health := target.MustParameter(core.ParamHealth) - damage

	if health > 0 {
		if err := s.SetParameter(target.ID, core.ParamHealth, health); err != nil {
			return err
		}
		tm.publish(events.NewEntityDamagedEvent(gameID, attacker.ID, target.ID, target.OwnerID, damage, health))
		return nil
	}

	if err := s.RemoveEntity(target.ID); err != nil {
		return err
	}
	tm.logger.Debug().
		Int("attacker_id", attacker.ID).
		Int("target_id", target.ID).
		Int("target_owner", target.OwnerID).
		Msg("Entity destroyed")

	role := s.GameInfo().Role(target.TypeID)
	tm.publish(events.NewEntityDestroyedEvent(gameID, attacker.ID, target.ID, target.OwnerID, role, target.Position))

	if role == core.RoleKing {
		checker := rules.NewWinConditionChecker(tm.logger, s.NumPlayers())
		if over, winner := checker.Check(s); over {
			s.SetGameOver(winner)
			tm.logger.Debug().Int("winner_player_id", winner).Msg("Game over after king destroyed")
		}
	}
	return nil
}
