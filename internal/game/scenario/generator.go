package scenario

import (
	"fmt"
	"math/rand"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/config"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game"
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/core"
)

// ScenarioConfig holds configuration for scenario generation
type ScenarioConfig struct {
	Width          int
	Height         int
	PlayerCount    int
	UnitsPerPlayer int
	MaxHealth      float64 // upper bound for randomised Health
	MinKingSpacing int
	// KinglessChance is the probability that a player's king is left out,
	// which exercises the no-king paths of the heuristics.
	KinglessChance float64
}

// DefaultScenarioConfig returns a sensible default configuration
func DefaultScenarioConfig(w, h, players int) ScenarioConfig {
	return ScenarioConfig{
		Width:          w,
		Height:         h,
		PlayerCount:    players,
		UnitsPerPlayer: 4,
		MaxHealth:      200,
		MinKingSpacing: 5,
	}
}

// ConfigFromSettings converts the scenario config section
func ConfigFromSettings(c config.ScenarioConfig) ScenarioConfig {
	sc := DefaultScenarioConfig(c.BoardWidth, c.BoardHeight, c.Players)
	sc.UnitsPerPlayer = c.UnitsPerPlayer
	sc.MaxHealth = c.MaxHealth
	sc.MinKingSpacing = c.MinKingSpacing
	return sc
}

// Generator builds random snapshots with a deterministic RNG
type Generator struct {
	config   ScenarioConfig
	rng      *rand.Rand
	registry *game.Registry
}

// NewGenerator creates a new scenario generator over the standard registry
func NewGenerator(config ScenarioConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config:   config,
		rng:      rng,
		registry: game.NewStandardRegistry(),
	}
}

// Registry returns the type registry every generated snapshot shares
func (g *Generator) Registry() *game.Registry {
	return g.registry
}

// Generate creates a snapshot with kings and units placed for every player
func (g *Generator) Generate() (*game.Snapshot, error) {
	cells := g.config.Width * g.config.Height
	needed := g.config.PlayerCount * (g.config.UnitsPerPlayer + 1)
	if cells < needed {
		return nil, fmt.Errorf("board %dx%d too small for %d entities: %w", g.config.Width, g.config.Height, needed, core.ErrInvalidPosition)
	}

	s := game.NewSnapshot(g.config.Width, g.config.Height, g.config.PlayerCount, g.registry)

	if err := g.placeKings(s); err != nil {
		return nil, err
	}
	if err := g.placeUnits(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (g *Generator) placeKings(s *game.Snapshot) error {
	var placed []core.Position
	for pid := 0; pid < g.config.PlayerCount; pid++ {
		if g.config.KinglessChance > 0 && g.rng.Float64() < g.config.KinglessChance {
			continue
		}

		pos := g.findKingLocation(s, placed)
		e, err := s.AddEntity(pid, game.TypeKing, pos)
		if err != nil {
			return fmt.Errorf("place king for player %d: %w", pid, err)
		}
		if err := s.SetParameter(e.ID, core.ParamHealth, g.randomHealth()); err != nil {
			return err
		}
		placed = append(placed, pos)
	}
	return nil
}

func (g *Generator) findKingLocation(s *game.Snapshot, existing []core.Position) core.Position {
	maxAttempts := g.config.Width * g.config.Height

	for attempts := 0; attempts < maxAttempts; attempts++ {
		pos := g.randomPosition()
		if _, taken := s.OccupantAt(pos); taken {
			continue
		}

		validLocation := true
		for _, other := range existing {
			if pos.DistanceTo(other) < g.config.MinKingSpacing {
				validLocation = false
				break
			}
		}
		if validLocation {
			return pos
		}
	}

	// Spacing could not be honoured; settle for any free cell
	return g.freeCell(s)
}

func (g *Generator) placeUnits(s *game.Snapshot) error {
	unitTypes := []int{game.TypeWarrior, game.TypeArcher}
	for pid := 0; pid < g.config.PlayerCount; pid++ {
		for i := 0; i < g.config.UnitsPerPlayer; i++ {
			pos := g.randomFreeCell(s)
			typeID := unitTypes[g.rng.Intn(len(unitTypes))]
			e, err := s.AddEntity(pid, typeID, pos)
			if err != nil {
				return fmt.Errorf("place unit for player %d: %w", pid, err)
			}
			if err := s.SetParameter(e.ID, core.ParamHealth, g.randomHealth()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Generator) randomPosition() core.Position {
	return core.NewPosition(g.rng.Intn(g.config.Width), g.rng.Intn(g.config.Height))
}

func (g *Generator) randomFreeCell(s *game.Snapshot) core.Position {
	for attempts := 0; attempts < g.config.Width*g.config.Height; attempts++ {
		pos := g.randomPosition()
		if _, taken := s.OccupantAt(pos); !taken {
			return pos
		}
	}
	return g.freeCell(s)
}

// freeCell scans row-major for the first unoccupied cell. Generate checks
// capacity up front, so one always exists.
func (g *Generator) freeCell(s *game.Snapshot) core.Position {
	for y := 0; y < g.config.Height; y++ {
		for x := 0; x < g.config.Width; x++ {
			pos := core.NewPosition(x, y)
			if _, taken := s.OccupantAt(pos); !taken {
				return pos
			}
		}
	}
	panic("scenario: no free cell left on the board")
}

// randomHealth returns a value in [1, MaxHealth]
func (g *Generator) randomHealth() float64 {
	return 1 + g.rng.Float64()*(g.config.MaxHealth-1)
}
