package system

import (
	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

// deathGraceSeconds keeps a corpse's handle resolvable briefly after death
// so same-tick attackers and observers see a dead entity, not a dangling id.
const deathGraceSeconds = 1.0

// ApplyDamage runs the full defender-side damage path: shield factor,
// incoming ability hook, clamped health transition, notifications, and
// death processing. Returns the damage actually applied. Dead targets and
// non-positive amounts are silent no-ops.
func ApplyDamage(w *ecs.World, target, attacker ecs.Entity, amount float64) float64 {
	h, ok := ecs.Get(w, target, component.HealthComponent.Kind())
	if !ok || !h.Alive || amount <= 0 {
		return 0
	}
	if set, ok := ecs.Get(w, target, component.StatusSetComponent.Kind()); ok {
		amount *= set.ShieldFactor()
	}
	amount = ModifyIncomingDamage(w, target, amount, attacker)
	if amount <= 0 {
		return 0
	}

	applied, died := h.Damage(amount)
	if applied <= 0 {
		return 0
	}
	w.Events().Push(ecs.Event{Kind: component.EventHealthChanged, Data: &component.HealthChangedEvent{
		Entity:  target,
		Current: h.Current,
		Max:     h.Max,
		Delta:   -applied,
	}})
	w.Events().Push(ecs.Event{Kind: component.EventAttackLanded, Data: &component.AttackLandedEvent{
		Attacker: attacker,
		Target:   target,
		Damage:   applied,
	}})
	OnDamageTaken(w, target, applied, attacker)
	if died {
		killEntity(w, target, attacker)
	}
	return applied
}

// ApplyHeal restores hit points and pushes a health-changed notification.
func ApplyHeal(w *ecs.World, target ecs.Entity, amount float64) float64 {
	h, ok := ecs.Get(w, target, component.HealthComponent.Kind())
	if !ok {
		return 0
	}
	healed := h.Heal(amount)
	if healed <= 0 {
		return 0
	}
	w.Events().Push(ecs.Event{Kind: component.EventHealthChanged, Data: &component.HealthChangedEvent{
		Entity:  target,
		Current: h.Current,
		Max:     h.Max,
		Delta:   healed,
	}})
	return healed
}

// GrantMaxHP raises max hit points by bonus and heals the same amount, so
// the buff is felt immediately. Emits a health-changed notification.
// Returns false when the target has no health state.
func GrantMaxHP(w *ecs.World, target ecs.Entity, bonus float64) bool {
	if bonus <= 0 {
		return false
	}
	h, ok := ecs.Get(w, target, component.HealthComponent.Kind())
	if !ok {
		return false
	}
	before := h.Current
	h.SetMax(h.Max + bonus)
	h.Heal(bonus)
	w.Events().Push(ecs.Event{Kind: component.EventHealthChanged, Data: &component.HealthChangedEvent{
		Entity:  target,
		Current: h.Current,
		Max:     h.Max,
		Delta:   h.Current - before,
	}})
	return true
}

// RevokeMaxHP removes a previously granted max hit point bonus, clamping
// current hit points down if they now exceed the new max. Emits a
// health-changed notification.
func RevokeMaxHP(w *ecs.World, target ecs.Entity, bonus float64) bool {
	if bonus <= 0 {
		return false
	}
	h, ok := ecs.Get(w, target, component.HealthComponent.Kind())
	if !ok {
		return false
	}
	before := h.Current
	h.SetMax(h.Max - bonus)
	w.Events().Push(ecs.Event{Kind: component.EventHealthChanged, Data: &component.HealthChangedEvent{
		Entity:  target,
		Current: h.Current,
		Max:     h.Max,
		Delta:   h.Current - before,
	}})
	return true
}

// killEntity runs the one-shot death sequence. Health.Damage already
// guarantees this is reached at most once per entity.
func killEntity(w *ecs.World, target, attacker ecs.Entity) {
	// Owner-death hooks run before the status set is torn down so an aura
	// can still see and strip its granted buffs.
	OnOwnerDeath(w, target)
	if set, ok := ecs.Get(w, target, component.StatusSetComponent.Kind()); ok {
		set.Clear()
	}

	var faction component.Faction
	if f, ok := ecs.Get(w, target, component.FactionComponent.Kind()); ok {
		faction = *f
	}
	w.Events().Push(ecs.Event{Kind: component.EventEntityDied, Data: &component.EntityDiedEvent{
		Entity:  target,
		Faction: faction,
		Killer:  attacker,
	}})

	_ = ecs.Add(w, target, component.DespawnComponent.Kind(), &component.Despawn{Remaining: deathGraceSeconds})
	OnKill(w, attacker, target)
}
