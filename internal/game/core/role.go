package core

// EntityRole tags an entity type with the part it plays in the rules.
// Heuristics look roles up instead of comparing type names.
type EntityRole int

const (
	// RoleUnspecified is resolved from the type name at registration.
	RoleUnspecified EntityRole = iota
	RoleUnit
	RoleKing
	RoleBuilding
)

// Well known parameter names
const (
	ParamHealth         = "Health"
	ParamMovementPoints = "MovementPoints"
	ParamAttackDamage   = "AttackDamage"
)

// RoleForName maps a legacy type name to a role. Anything not recognised is a unit.
func RoleForName(name string) EntityRole {
	switch name {
	case "King":
		return RoleKing
	case "Building", "City":
		return RoleBuilding
	default:
		return RoleUnit
	}
}

func (r EntityRole) String() string {
	switch r {
	case RoleUnspecified:
		return "unspecified"
	case RoleUnit:
		return "unit"
	case RoleKing:
		return "king"
	case RoleBuilding:
		return "building"
	default:
		return "unknown"
	}
}
