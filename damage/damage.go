// Package damage is the pure damage model: no state, no world access. The
// combat and projectile systems feed its output through the ability and
// status multipliers they own.
package damage

import "github.com/milk9111/skirmish/ecs/component"

// unitCountMultipliers scales per-unit weapon damage by loadout size: more
// bodies bought as one loadout, weaker individuals.
var unitCountMultipliers = map[int]float64{
	1: 1.0,
	2: 0.85,
	3: 0.75,
	5: 0.6,
}

// abilityEffectiveness scales ability parameters by loadout size. It is
// deliberately more punishing than the stat table: a five-unit loadout
// keeps no ability at all.
var abilityEffectiveness = map[int]float64{
	1: 1.0,
	2: 0.7,
	3: 0.5,
	5: 0.0,
}

// ValidCount reports whether count is a purchasable loadout size.
func ValidCount(count int) bool {
	_, ok := unitCountMultipliers[count]
	return ok
}

// UnitCountMultiplier returns the per-unit stat multiplier for a loadout
// size. Unknown counts fall back to 1; validation rejects them before spawn.
func UnitCountMultiplier(count int) float64 {
	m, ok := unitCountMultipliers[count]
	if !ok {
		return 1.0
	}
	return m
}

// AbilityEffectiveness returns the ability parameter multiplier for a
// loadout size.
func AbilityEffectiveness(count int) float64 {
	m, ok := abilityEffectiveness[count]
	if !ok {
		return 1.0
	}
	return m
}

// Elemental returns the attacker-side elemental multiplier against the
// defender's element id. Advantage and disadvantage are asymmetric: they are
// configured per element and are not inverses of each other.
func Elemental(attacker component.Element, defenderID string) float64 {
	if defenderID == "" {
		return 1.0
	}
	switch defenderID {
	case attacker.StrongVs:
		return attacker.Advantage
	case attacker.WeakVs:
		return attacker.Disadvantage
	default:
		return 1.0
	}
}

// Compute combines base weapon damage with the unit-count and elemental
// multipliers. Ability and status multipliers are applied by the attacker
// (outgoing) and by the damage path (incoming), not here.
func Compute(base float64, count int, attacker component.Element, defenderID string) float64 {
	return base * UnitCountMultiplier(count) * Elemental(attacker, defenderID)
}
