package component

import "github.com/milk9111/skirmish/ecs"

// CombatState is the controller's coarse state.
type CombatState uint8

const (
	// CombatSeeking means no valid target is held.
	CombatSeeking CombatState = iota
	// CombatEngaging means a live target is acquired; the controller is
	// either closing distance or attacking in range.
	CombatEngaging
)

func (s CombatState) String() string {
	if s == CombatEngaging {
		return "engaging"
	}
	return "seeking"
}

// Combat is the per-entity combat controller state plus the weapon stats
// baked from the loadout at spawn.
type Combat struct {
	State  CombatState
	Target ecs.Entity

	// Timers count down each tick.
	AttackCooldown   float64
	RetargetCooldown float64

	// Baked weapon/loadout stats.
	AttackType      AttackType
	BaseDamage      float64
	CooldownTime    float64
	Range           float64
	AOERadius       float64
	ProjectileSpeed float64
	ProjectileLife  float64
	TurnRate        float64
	Count           int
}

var CombatComponent = ecs.NewComponent[Combat]()
