package rules

import (
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/core"
)

// LegalActions enumerates every valid action for playerID: moves to each
// free cell within an entity's MovementPoints, and attacks on adjacent
// enemies. The order is deterministic (entity order, then row-major cells).
func LegalActions(state game.GameState, playerID int) []game.Action {
	if state.IsGameOver() || state.CurrentPlayerID() != playerID {
		return nil
	}

	entities := state.Entities()
	occupied := make(map[core.Position]game.Entity, len(entities))
	for _, e := range entities {
		occupied[e.Position] = e
	}

	var actions []game.Action
	for _, e := range entities {
		if e.OwnerID != playerID {
			continue
		}

		if points, err := e.Parameter(core.ParamMovementPoints); err == nil {
			reach := int(points)
			for dy := -reach; dy <= reach; dy++ {
				for dx := -reach; dx <= reach; dx++ {
					to := e.Position.Add(core.Position{X: dx, Y: dy})
					if _, taken := occupied[to]; taken {
						continue
					}
					move := &game.MoveAction{PlayerID: playerID, EntityID: e.ID, To: to}
					if move.Validate(state) == nil {
						actions = append(actions, move)
					}
				}
			}
		}

		for _, n := range e.Position.Neighbors() {
			target, ok := occupied[n]
			if !ok || target.OwnerID == playerID {
				continue
			}
			attack := &game.AttackAction{PlayerID: playerID, EntityID: e.ID, TargetID: target.ID}
			if attack.Validate(state) == nil {
				actions = append(actions, attack)
			}
		}
	}
	return actions
}
