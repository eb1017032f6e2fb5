package rules

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/core"
)

// WinConditionChecker handles game over detection and winner determination.
// A player stays alive for as long as it owns a King-role entity.
type WinConditionChecker struct {
	logger          zerolog.Logger
	originalPlayers int
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger, originalPlayers int) *WinConditionChecker {
	return &WinConditionChecker{
		logger:          logger.With().Str("component", "WinConditionChecker").Logger(),
		originalPlayers: originalPlayers,
	}
}

// AlivePlayers returns, per player id, whether that player still owns a King
func (wc *WinConditionChecker) AlivePlayers(state game.GameState) []bool {
	alive := make([]bool, wc.originalPlayers)
	info := state.GameInfo()
	for _, e := range state.Entities() {
		if e.OwnerID < 0 || e.OwnerID >= len(alive) {
			continue
		}
		if info.Role(e.TypeID) == core.RoleKing {
			alive[e.OwnerID] = true
		}
	}
	return alive
}

// Check determines if the game is over based on the number of alive players.
// Returns (isGameOver, winnerID)
func (wc *WinConditionChecker) Check(state game.GameState) (bool, int) {
	alive := wc.AlivePlayers(state)
	aliveCount := 0
	lastAliveID := game.NoWinner
	for id, ok := range alive {
		if ok {
			aliveCount++
			lastAliveID = id
		}
	}

	// A single-player sandbox only ends once that player is gone
	var gameOver bool
	if wc.originalPlayers > 1 {
		gameOver = aliveCount <= 1
	} else {
		gameOver = aliveCount == 0
	}

	winnerID := game.NoWinner
	if gameOver && aliveCount == 1 {
		winnerID = lastAliveID
		wc.logger.Debug().Int("winner_player_id", winnerID).Msg("Winner determined")
	} else if gameOver {
		wc.logger.Debug().Msg("No winner found (draw, or all kings lost simultaneously)")
	}

	return gameOver, winnerID
}
