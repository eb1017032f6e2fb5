package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPosition(t *testing.T) {
	p := NewPosition(3, 5)
	assert.Equal(t, 3, p.X)
	assert.Equal(t, 5, p.Y)
}

func TestPosition_IsValid(t *testing.T) {
	tests := []struct {
		name   string
		pos    Position
		width  int
		height int
		valid  bool
	}{
		{"Valid_Origin", Position{0, 0}, 10, 10, true},
		{"Valid_Corner", Position{9, 9}, 10, 10, true},
		{"Invalid_NegativeX", Position{-1, 0}, 10, 10, false},
		{"Invalid_NegativeY", Position{0, -1}, 10, 10, false},
		{"Invalid_XTooLarge", Position{10, 0}, 10, 10, false},
		{"Invalid_YTooLarge", Position{0, 10}, 10, 10, false},
		{"NonSquare", Position{7, 2}, 8, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.pos.IsValid(tt.width, tt.height))
		})
	}
}

func TestPosition_DistanceTo(t *testing.T) {
	tests := []struct {
		name     string
		from     Position
		to       Position
		expected int
	}{
		{"Same", Position{5, 5}, Position{5, 5}, 0},
		{"Horizontal", Position{0, 0}, Position{3, 0}, 3},
		{"Vertical", Position{0, 0}, Position{0, 4}, 4},
		{"Diagonal", Position{1, 1}, Position{4, 5}, 7},
		{"Reverse", Position{4, 5}, Position{1, 1}, 7},
		{"Negative", Position{-2, -2}, Position{2, 2}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.DistanceTo(tt.to))
			assert.Equal(t, tt.expected, tt.to.DistanceTo(tt.from), "distance should be symmetric")
		})
	}
}

func TestPosition_IsAdjacentTo(t *testing.T) {
	p := Position{5, 5}
	for _, n := range p.Neighbors() {
		assert.True(t, p.IsAdjacentTo(n), "neighbor %s should be adjacent", n)
	}
	assert.False(t, p.IsAdjacentTo(Position{6, 6}), "diagonal is not adjacent")
	assert.False(t, p.IsAdjacentTo(p), "a position is not adjacent to itself")
}

func TestPosition_AddEqualString(t *testing.T) {
	p := Position{2, 3}.Add(Position{1, -1})
	assert.True(t, p.Equal(Position{3, 2}))
	assert.Equal(t, "(3,2)", p.String())
}

func TestMaxDistance(t *testing.T) {
	assert.Equal(t, 20.0, MaxDistance(10, 10))
	assert.Equal(t, 30.0, MaxDistance(8, 15))
	assert.Equal(t, 0.0, MaxDistance(0, 0))
}
