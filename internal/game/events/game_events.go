package events

import (
	"time"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/core"
)

// Event type constants
const (
	TypeEntityMoved     = "entity.moved"
	TypeEntityDamaged   = "entity.damaged"
	TypeEntityDestroyed = "entity.destroyed"
	TypeActionRejected  = "action.rejected"
	TypeTurnEnded       = "turn.ended"
	TypeGameEnded       = "game.ended"
)

func base(eventType, gameID string) BaseEvent {
	return BaseEvent{EventType: eventType, Time: time.Now(), Game: gameID}
}

// EntityMovedEvent is published when a move action is applied
type EntityMovedEvent struct {
	BaseEvent
	PlayerID int           `json:"player_id"`
	EntityID int           `json:"entity_id"`
	From     core.Position `json:"from"`
	To       core.Position `json:"to"`
}

// NewEntityMovedEvent creates a new EntityMovedEvent
func NewEntityMovedEvent(gameID string, playerID, entityID int, from, to core.Position) *EntityMovedEvent {
	return &EntityMovedEvent{
		BaseEvent: base(TypeEntityMoved, gameID),
		PlayerID:  playerID,
		EntityID:  entityID,
		From:      from,
		To:        to,
	}
}

// EntityDamagedEvent is published when an attack leaves its target standing
type EntityDamagedEvent struct {
	BaseEvent
	AttackerID      int     `json:"attacker_id"`
	TargetID        int     `json:"target_id"`
	TargetOwner     int     `json:"target_owner"`
	Damage          float64 `json:"damage"`
	RemainingHealth float64 `json:"remaining_health"`
}

// NewEntityDamagedEvent creates a new EntityDamagedEvent
func NewEntityDamagedEvent(gameID string, attackerID, targetID, targetOwner int, damage, remaining float64) *EntityDamagedEvent {
	return &EntityDamagedEvent{
		BaseEvent:       base(TypeEntityDamaged, gameID),
		AttackerID:      attackerID,
		TargetID:        targetID,
		TargetOwner:     targetOwner,
		Damage:          damage,
		RemainingHealth: remaining,
	}
}

// EntityDestroyedEvent is published when an attack removes its target
type EntityDestroyedEvent struct {
	BaseEvent
	AttackerID  int             `json:"attacker_id"`
	TargetID    int             `json:"target_id"`
	TargetOwner int             `json:"target_owner"`
	TargetRole  core.EntityRole `json:"target_role"`
	Location    core.Position   `json:"location"`
}

// NewEntityDestroyedEvent creates a new EntityDestroyedEvent
func NewEntityDestroyedEvent(gameID string, attackerID, targetID, targetOwner int, role core.EntityRole, at core.Position) *EntityDestroyedEvent {
	return &EntityDestroyedEvent{
		BaseEvent:   base(TypeEntityDestroyed, gameID),
		AttackerID:  attackerID,
		TargetID:    targetID,
		TargetOwner: targetOwner,
		TargetRole:  role,
		Location:    at,
	}
}

// ActionRejectedEvent is published when an action fails validation
type ActionRejectedEvent struct {
	BaseEvent
	PlayerID int    `json:"player_id"`
	EntityID int    `json:"entity_id"`
	Action   string `json:"action"`
	Reason   string `json:"reason"`
}

// NewActionRejectedEvent creates a new ActionRejectedEvent
func NewActionRejectedEvent(gameID string, playerID, entityID int, action string, reason error) *ActionRejectedEvent {
	return &ActionRejectedEvent{
		BaseEvent: base(TypeActionRejected, gameID),
		PlayerID:  playerID,
		EntityID:  entityID,
		Action:    action,
		Reason:    reason.Error(),
	}
}

// TurnEndedEvent is published once a player's actions have been applied
type TurnEndedEvent struct {
	BaseEvent
	TurnNumber   int `json:"turn"`
	PlayerID     int `json:"player_id"`
	ActionsCount int `json:"actions_count"`
	Applied      int `json:"applied"`
}

// NewTurnEndedEvent creates a new TurnEndedEvent
func NewTurnEndedEvent(gameID string, turn, playerID, actions, applied int) *TurnEndedEvent {
	return &TurnEndedEvent{
		BaseEvent:    base(TypeTurnEnded, gameID),
		TurnNumber:   turn,
		PlayerID:     playerID,
		ActionsCount: actions,
		Applied:      applied,
	}
}

// GameEndedEvent is published when the last opposing king falls
type GameEndedEvent struct {
	BaseEvent
	Winner    int `json:"winner"`
	FinalTurn int `json:"final_turn"`
}

// NewGameEndedEvent creates a new GameEndedEvent
func NewGameEndedEvent(gameID string, winner, finalTurn int) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: base(TypeGameEnded, gameID),
		Winner:    winner,
		FinalTurn: finalTurn,
	}
}
