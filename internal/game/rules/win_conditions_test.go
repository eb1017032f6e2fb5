package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/testutil"
)

func TestWinConditionChecker_Check(t *testing.T) {
	tests := []struct {
		name       string
		players    int
		build      func(b *testutil.StateBuilder)
		wantOver   bool
		wantWinner int
		wantAlive  []bool
	}{
		{
			name:    "both kings standing",
			players: 2,
			build: func(b *testutil.StateBuilder) {
				b.King(0, 0, 0, 200).King(1, 5, 5, 200)
			},
			wantOver:   false,
			wantWinner: game.NoWinner,
			wantAlive:  []bool{true, true},
		},
		{
			name:    "one king left",
			players: 2,
			build: func(b *testutil.StateBuilder) {
				b.King(0, 0, 0, 200).Warrior(1, 5, 5)
			},
			wantOver:   true,
			wantWinner: 0,
			wantAlive:  []bool{true, false},
		},
		{
			name:    "no kings is a draw",
			players: 2,
			build: func(b *testutil.StateBuilder) {
				b.Warrior(0, 0, 0).Warrior(1, 5, 5)
			},
			wantOver:   true,
			wantWinner: game.NoWinner,
			wantAlive:  []bool{false, false},
		},
		{
			name:    "two of three alive",
			players: 3,
			build: func(b *testutil.StateBuilder) {
				b.King(0, 0, 0, 200).King(2, 5, 5, 200)
			},
			wantOver:   false,
			wantWinner: game.NoWinner,
			wantAlive:  []bool{true, false, true},
		},
		{
			name:    "single player keeps playing",
			players: 1,
			build: func(b *testutil.StateBuilder) {
				b.King(0, 0, 0, 200)
			},
			wantOver:   false,
			wantWinner: game.NoWinner,
			wantAlive:  []bool{true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.NewStateBuilder(t, 6, 6, tt.players)
			tt.build(b)
			state := b.Build()

			wc := NewWinConditionChecker(testutil.NopLogger(), tt.players)
			assert.Equal(t, tt.wantAlive, wc.AlivePlayers(state))

			over, winner := wc.Check(state)
			assert.Equal(t, tt.wantOver, over)
			assert.Equal(t, tt.wantWinner, winner)
		})
	}
}
