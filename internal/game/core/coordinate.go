package core

import (
	"fmt"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/common"
)

// Position represents an entity's location on the game board
type Position struct {
	X, Y int
}

// NewPosition creates a new position with the given x and y values
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// IsValid checks if the position is within the given bounds
func (p Position) IsValid(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// DistanceTo calculates the Manhattan distance to another position
func (p Position) DistanceTo(other Position) int {
	return common.Abs(p.X-other.X) + common.Abs(p.Y-other.Y)
}

// IsAdjacentTo checks if this position is orthogonally adjacent to another
func (p Position) IsAdjacentTo(other Position) bool {
	return p.DistanceTo(other) == 1
}

// Neighbors returns the four orthogonal neighbors of this position
func (p Position) Neighbors() []Position {
	return []Position{
		{X: p.X, Y: p.Y - 1}, // North
		{X: p.X + 1, Y: p.Y}, // East
		{X: p.X, Y: p.Y + 1}, // South
		{X: p.X - 1, Y: p.Y}, // West
	}
}

// Add returns a new position that is the sum of this position and another
func (p Position) Add(other Position) Position {
	return Position{
		X: p.X + other.X,
		Y: p.Y + other.Y,
	}
}

// Equal checks if two positions are equal
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// String returns a string representation of the position
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// MaxDistance is the largest Manhattan distance considered on a board of the
// given size: twice the longer side.
func MaxDistance(width, height int) float64 {
	return 2.0 * float64(max(width, height))
}
