package component

import "fmt"

// AttackType tags how a weapon delivers damage.
type AttackType uint8

const (
	AttackMelee AttackType = iota
	AttackProjectile
	AttackHoming
	AttackAOE
)

func (t AttackType) String() string {
	switch t {
	case AttackMelee:
		return "melee"
	case AttackProjectile:
		return "projectile"
	case AttackHoming:
		return "homing"
	case AttackAOE:
		return "aoe"
	default:
		return "unknown"
	}
}

// ParseAttackType maps an archetype yaml tag to an AttackType.
func ParseAttackType(s string) (AttackType, error) {
	switch s {
	case "melee":
		return AttackMelee, nil
	case "projectile":
		return AttackProjectile, nil
	case "homing":
		return AttackHoming, nil
	case "aoe":
		return AttackAOE, nil
	default:
		return AttackMelee, fmt.Errorf("component: unknown attack type %q", s)
	}
}
