package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/core"
)

// NoWinner is reported by WinnerID while the game runs or after a draw
const NoWinner = -1

// GameState is the read-only view of a simulated snapshot that heuristics
// and search code consume. Implementations must not change underneath a
// caller for the duration of a call.
type GameState interface {
	Entities() []Entity
	Entity(id int) (Entity, bool)
	BoardWidth() int
	BoardHeight() int
	IsGameOver() bool
	WinnerID() int
	CurrentPlayerID() int
	Turn() int
	GameInfo() *Registry
}

// Snapshot is the concrete game-state container owned by the simulation
// layer. It is mutated only by its owner (the forward model or a scenario
// builder); everything else sees it through GameState.
type Snapshot struct {
	ID            uuid.UUID
	width, height int
	numPlayers    int
	turn          int
	currentPlayer int
	gameOver      bool
	winner        int
	entities      []Entity
	index         map[int]int // entity id -> slot in entities
	nextID        int
	info          *Registry
}

var _ GameState = (*Snapshot)(nil)

// NewSnapshot creates an empty board of the given size
func NewSnapshot(width, height, players int, info *Registry) *Snapshot {
	return &Snapshot{
		ID:         uuid.New(),
		width:      width,
		height:     height,
		numPlayers: players,
		winner:     NoWinner,
		index:      make(map[int]int),
		info:       info,
	}
}

// Entities returns a copy of the entity list
func (s *Snapshot) Entities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Entity looks up an entity by id
func (s *Snapshot) Entity(id int) (Entity, bool) {
	i, ok := s.index[id]
	if !ok {
		return Entity{}, false
	}
	return s.entities[i], true
}

func (s *Snapshot) BoardWidth() int      { return s.width }
func (s *Snapshot) BoardHeight() int     { return s.height }
func (s *Snapshot) IsGameOver() bool     { return s.gameOver }
func (s *Snapshot) WinnerID() int        { return s.winner }
func (s *Snapshot) CurrentPlayerID() int { return s.currentPlayer }
func (s *Snapshot) Turn() int            { return s.turn }
func (s *Snapshot) GameInfo() *Registry  { return s.info }
func (s *Snapshot) NumPlayers() int      { return s.numPlayers }

// OccupantAt returns the entity standing on pos, if any
func (s *Snapshot) OccupantAt(pos core.Position) (Entity, bool) {
	for _, e := range s.entities {
		if e.Position.Equal(pos) {
			return e, true
		}
	}
	return Entity{}, false
}

// AddEntity places a new entity of the given type, initialised from the
// type's parameter schema, and returns it.
func (s *Snapshot) AddEntity(owner, typeID int, pos core.Position) (Entity, error) {
	t, err := s.info.EntityType(typeID)
	if err != nil {
		return Entity{}, err
	}
	if !pos.IsValid(s.width, s.height) {
		return Entity{}, fmt.Errorf("add entity at %s: %w", pos, core.ErrInvalidPosition)
	}
	if owner < 0 || owner >= s.numPlayers {
		return Entity{}, fmt.Errorf("add entity for player %d: %w", owner, core.ErrInvalidPlayer)
	}

	e := NewEntity(s.nextID, owner, typeID, pos, t.Parameters)
	s.nextID++
	s.index[e.ID] = len(s.entities)
	s.entities = append(s.entities, e)
	return e, nil
}

// SetParameter overwrites a parameter the entity already carries
func (s *Snapshot) SetParameter(id int, name string, value float64) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("set %s on entity %d: %w", name, id, core.ErrEntityNotFound)
	}
	e := &s.entities[i]
	if !e.HasParameter(name) {
		return &core.ParameterError{EntityID: id, TypeID: e.TypeID, Name: name}
	}
	e.params[name] = value
	return nil
}

// MoveEntity relocates an entity without any rules checks
func (s *Snapshot) MoveEntity(id int, to core.Position) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("move entity %d: %w", id, core.ErrEntityNotFound)
	}
	if !to.IsValid(s.width, s.height) {
		return fmt.Errorf("move entity %d to %s: %w", id, to, core.ErrInvalidPosition)
	}
	s.entities[i].Position = to
	return nil
}

// RemoveEntity deletes an entity from the board
func (s *Snapshot) RemoveEntity(id int) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("remove entity %d: %w", id, core.ErrEntityNotFound)
	}
	s.entities = append(s.entities[:i], s.entities[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.entities); j++ {
		s.index[s.entities[j].ID] = j
	}
	return nil
}

// SetCurrentPlayer sets whose turn it is
func (s *Snapshot) SetCurrentPlayer(playerID int) error {
	if playerID < 0 || playerID >= s.numPlayers {
		return fmt.Errorf("set current player %d: %w", playerID, core.ErrInvalidPlayer)
	}
	s.currentPlayer = playerID
	return nil
}

// AdvanceTurn hands the turn to the next player
func (s *Snapshot) AdvanceTurn() {
	s.turn++
	if s.numPlayers > 0 {
		s.currentPlayer = (s.currentPlayer + 1) % s.numPlayers
	}
}

// SetGameOver ends the game. Pass NoWinner for a draw.
func (s *Snapshot) SetGameOver(winner int) {
	s.gameOver = true
	s.winner = winner
}

// Clone returns an independent deep copy with a fresh ID. The registry is
// shared since it is read-only.
func (s *Snapshot) Clone() *Snapshot {
	c := *s
	c.ID = uuid.New()
	c.entities = make([]Entity, len(s.entities))
	for i, e := range s.entities {
		c.entities[i] = e.clone()
	}
	c.index = make(map[int]int, len(s.index))
	for id, i := range s.index {
		c.index[id] = i
	}
	return &c
}
