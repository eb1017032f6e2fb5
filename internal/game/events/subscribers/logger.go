package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool, len(eventTypes))
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables logging of the full event as JSON
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent writes one log line per event with its type-specific fields
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	logEvent := ls.logger.WithLevel(ls.level()).
		Str("event_type", event.Type()).
		Str("game_id", event.GameID())

	switch e := event.(type) {
	case *events.EntityMovedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("entity_id", e.EntityID).
			Stringer("from", e.From).
			Stringer("to", e.To)

	case *events.EntityDamagedEvent:
		logEvent.
			Int("attacker_id", e.AttackerID).
			Int("target_id", e.TargetID).
			Int("target_owner", e.TargetOwner).
			Float64("damage", e.Damage).
			Float64("remaining_health", e.RemainingHealth)

	case *events.EntityDestroyedEvent:
		logEvent.
			Int("attacker_id", e.AttackerID).
			Int("target_id", e.TargetID).
			Int("target_owner", e.TargetOwner).
			Stringer("target_role", e.TargetRole).
			Stringer("location", e.Location)

	case *events.ActionRejectedEvent:
		logEvent.
			Int("player_id", e.PlayerID).
			Int("entity_id", e.EntityID).
			Str("action", e.Action).
			Str("reason", e.Reason)

	case *events.TurnEndedEvent:
		logEvent.
			Int("turn", e.TurnNumber).
			Int("player_id", e.PlayerID).
			Int("actions_count", e.ActionsCount).
			Int("applied", e.Applied)

	case *events.GameEndedEvent:
		logEvent.
			Int("winner", e.Winner).
			Int("final_turn", e.FinalTurn)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}

func (ls *LoggerSubscriber) level() zerolog.Level {
	switch ls.logLevel {
	case zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel, zerolog.ErrorLevel:
		return ls.logLevel
	default:
		return zerolog.InfoLevel
	}
}
