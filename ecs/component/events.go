package component

import "github.com/milk9111/skirmish/ecs"

// Event kinds pushed to the world queue by the combat systems. The
// orchestrator drains these once per tick; the engine itself never blocks
// on them.
const (
	EventHealthChanged = "health_changed"
	EventEntityDied    = "entity_died"
	EventEffectApplied = "effect_applied"
	EventEffectExpired = "effect_expired"
	EventAttackLanded  = "attack_landed"
)

// HealthChangedEvent reports any hit point mutation. Delta is negative for
// damage and positive for healing.
type HealthChangedEvent struct {
	Entity  ecs.Entity
	Current float64
	Max     float64
	Delta   float64
}

// EntityDiedEvent fires exactly once per entity, on the damage that crossed
// zero. Killer may be a stale handle if the attacker died the same tick.
type EntityDiedEvent struct {
	Entity  ecs.Entity
	Faction Faction
	Killer  ecs.Entity
}

// EffectAppliedEvent fires when a new status effect lands (not on refresh).
type EffectAppliedEvent struct {
	Entity ecs.Entity
	Type   StatusType
	Source ecs.Entity
}

// EffectExpiredEvent fires when a status effect's duration runs out.
type EffectExpiredEvent struct {
	Entity ecs.Entity
	Type   StatusType
	Source ecs.Entity
}

// AttackLandedEvent reports delivered damage, after all multipliers and
// hooks, for any attack type.
type AttackLandedEvent struct {
	Attacker ecs.Entity
	Target   ecs.Entity
	Damage   float64
}
