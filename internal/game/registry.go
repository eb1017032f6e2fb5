package game

import (
	"fmt"
	"sort"

	"github.com/mitchelldurbincs/StrategyHeuristics/internal/game/core"
)

// EntityType is the shared metadata for a class of entities.
// Parameters holds the schema: every parameter an entity of this type carries,
// with its starting value.
type EntityType struct {
	ID         int
	Name       string
	Role       core.EntityRole
	Parameters map[string]float64
}

// HasParameter reports whether the type defines the named parameter
func (t EntityType) HasParameter(name string) bool {
	_, ok := t.Parameters[name]
	return ok
}

// Registry is the game-info lookup from type id to EntityType.
// It is populated during setup and only read afterwards, so a single
// instance can back every snapshot evaluated concurrently.
type Registry struct {
	types  map[int]EntityType
	byName map[string]int
}

// NewRegistry creates an empty type registry
func NewRegistry() *Registry {
	return &Registry{
		types:  make(map[int]EntityType),
		byName: make(map[string]int),
	}
}

// Register adds a type. A type registered without a role gets one derived
// from its name here, once, so nothing downstream compares names.
func (r *Registry) Register(t EntityType) error {
	if _, exists := r.types[t.ID]; exists {
		return fmt.Errorf("register %q (id %d): %w", t.Name, t.ID, core.ErrDuplicateType)
	}
	if t.Role == core.RoleUnspecified {
		t.Role = core.RoleForName(t.Name)
	}
	params := make(map[string]float64, len(t.Parameters))
	for k, v := range t.Parameters {
		params[k] = v
	}
	t.Parameters = params

	r.types[t.ID] = t
	r.byName[t.Name] = t.ID
	return nil
}

// EntityType returns the type registered under id
func (r *Registry) EntityType(id int) (EntityType, error) {
	t, ok := r.types[id]
	if !ok {
		return EntityType{}, fmt.Errorf("type id %d: %w", id, core.ErrUnknownEntityType)
	}
	return t, nil
}

// TypeIDByName returns the id of the type registered under name
func (r *Registry) TypeIDByName(name string) (int, bool) {
	id, ok := r.byName[name]
	return id, ok
}

// Role returns the role of the type, or RoleUnspecified when the id is unknown
func (r *Registry) Role(id int) core.EntityRole {
	return r.types[id].Role
}

// Types returns all registered types ordered by id
func (r *Registry) Types() []EntityType {
	out := make([]EntityType, 0, len(r.types))
	for _, t := range r.types {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Standard type ids used by NewStandardRegistry
const (
	TypeKing = iota
	TypeWarrior
	TypeArcher
)

// NewStandardRegistry returns the King/Warrior/Archer set used by the
// scenario generator and the demo.
func NewStandardRegistry() *Registry {
	r := NewRegistry()
	for _, t := range []EntityType{
		{
			ID:   TypeKing,
			Name: "King",
			Role: core.RoleKing,
			Parameters: map[string]float64{
				core.ParamHealth:         200,
				core.ParamMovementPoints: 1,
				core.ParamAttackDamage:   20,
			},
		},
		{
			ID:   TypeWarrior,
			Name: "Warrior",
			Role: core.RoleUnit,
			Parameters: map[string]float64{
				core.ParamHealth:         100,
				core.ParamMovementPoints: 2,
				core.ParamAttackDamage:   40,
			},
		},
		{
			ID:   TypeArcher,
			Name: "Archer",
			Role: core.RoleUnit,
			Parameters: map[string]float64{
				core.ParamHealth:         60,
				core.ParamMovementPoints: 3,
				core.ParamAttackDamage:   25,
			},
		},
	} {
		if err := r.Register(t); err != nil {
			panic("standard registry: " + err.Error())
		}
	}
	return r
}
