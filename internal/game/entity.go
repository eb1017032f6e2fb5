package game

import (
	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/core"
)

// Entity is a unit or building on the board. Values handed out by a
// GameState are read-only views; only the owning Snapshot mutates them.
type Entity struct {
	ID       int
	OwnerID  int
	Position core.Position
	TypeID   int
	params   map[string]float64
}

// NewEntity creates an entity with a copy of the given parameter values
func NewEntity(id, owner, typeID int, pos core.Position, params map[string]float64) Entity {
	p := make(map[string]float64, len(params))
	for k, v := range params {
		p[k] = v
	}
	return Entity{ID: id, OwnerID: owner, Position: pos, TypeID: typeID, params: p}
}

// Parameter looks up a named numeric parameter.
// Names the entity's type does not define yield a *core.ParameterError.
func (e Entity) Parameter(name string) (float64, error) {
	v, ok := e.params[name]
	if !ok {
		return 0, &core.ParameterError{EntityID: e.ID, TypeID: e.TypeID, Name: name}
	}
	return v, nil
}

// MustParameter is Parameter for names the schema guarantees. It panics otherwise.
func (e Entity) MustParameter(name string) float64 {
	v, err := e.Parameter(name)
	if err != nil {
		panic(err)
	}
	return v
}

// HasParameter reports whether the entity carries the named parameter
func (e Entity) HasParameter(name string) bool {
	_, ok := e.params[name]
	return ok
}

func (e Entity) clone() Entity {
	return NewEntity(e.ID, e.OwnerID, e.TypeID, e.Position, e.params)
}
