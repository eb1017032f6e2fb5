package heuristic

import (
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/core"
)

// kingInfo records a located king. found is false when the side has none.
type kingInfo struct {
	found  bool
	id     int
	pos    core.Position
	health float64
}

// signals is everything the combination step needs, gathered in one pass.
type signals struct {
	player       []game.Entity
	opponent     []game.Entity
	ownKing      kingInfo
	opponentKing kingInfo
	boardWidth   int
	boardHeight  int
}

// sideOwner returns the player whose entities count as "ours"
func sideOwner(state game.GameState, playerID int, p Perspective) int {
	if p == PerspectiveCurrentTurn {
		return state.CurrentPlayerID()
	}
	return playerID
}

// extractSignals partitions the entities and locates both kings. The
// opponent king keeps defaultKingHealth until one is found. A King-role
// entity without Health is a malformed snapshot and is reported as a
// parameter error.
func extractSignals(state game.GameState, playerID int, opts Options) (signals, error) {
	owner := sideOwner(state, playerID, opts.Perspective)
	info := state.GameInfo()
	entities := state.Entities()

	s := signals{
		player:       make([]game.Entity, 0, len(entities)),
		opponent:     make([]game.Entity, 0, len(entities)),
		opponentKing: kingInfo{health: opts.DefaultKingHealth},
		boardWidth:   state.BoardWidth(),
		boardHeight:  state.BoardHeight(),
	}

	for _, e := range entities {
		isKing := info != nil && info.Role(e.TypeID) == core.RoleKing

		if e.OwnerID == owner {
			s.player = append(s.player, e)
			if isKing && !s.ownKing.found {
				s.ownKing = kingInfo{found: true, id: e.ID, pos: e.Position}
			}
			continue
		}

		s.opponent = append(s.opponent, e)
		if isKing && !s.opponentKing.found {
			health, err := e.Parameter(core.ParamHealth)
			if err != nil {
				return signals{}, err
			}
			s.opponentKing = kingInfo{found: true, id: e.ID, pos: e.Position, health: health}
		}
	}

	return s, nil
}
