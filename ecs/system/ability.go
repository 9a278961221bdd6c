package system

import (
	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

// abilityDefaults are the hard-coded fallbacks for named parameters an
// archetype omits.
var abilityDefaults = map[component.AbilityKind]map[string]float64{
	component.AbilityHPAura: {
		"hp_bonus":         2.0,
		"radius":           3.0,
		"pulse_interval":   0.5,
		"refresh_interval": 2.0,
	},
	component.AbilitySlowOnHit: {
		"slow_value":    0.3,
		"slow_duration": 2.0,
	},
	component.AbilityRage: {
		"per_stack":  0.05,
		"max_stacks": 10,
	},
	component.AbilityHarden: {
		"reduction": 0.25,
	},
	component.AbilityVampiric: {
		"heal_fraction": 0.2,
	},
}

// potencyKeys are the parameters scaled by the unit-count ability
// effectiveness multiplier. Timers, radii and durations keep their shape; a
// zero multiplier nullifies the ability by zeroing its potency.
var potencyKeys = map[component.AbilityKind][]string{
	component.AbilityHPAura:    {"hp_bonus"},
	component.AbilitySlowOnHit: {"slow_value"},
	component.AbilityRage:      {"per_stack"},
	component.AbilityHarden:    {"reduction"},
	component.AbilityVampiric:  {"heal_fraction"},
}

// ResolveAbilityParams merges archetype parameters over the defaults and
// applies the effectiveness multiplier to the kind's potency parameters.
func ResolveAbilityParams(kind component.AbilityKind, raw map[string]float64, effectiveness float64) map[string]float64 {
	out := make(map[string]float64, len(abilityDefaults[kind])+len(raw))
	for k, v := range abilityDefaults[kind] {
		out[k] = v
	}
	for k, v := range raw {
		out[k] = v
	}
	for _, k := range potencyKeys[kind] {
		out[k] *= effectiveness
	}
	return out
}

// InitializeAbility runs a freshly spawned entity's ability setup.
func InitializeAbility(w *ecs.World, owner ecs.Entity) {
	a, ok := ecs.Get(w, owner, component.AbilityComponent.Kind())
	if !ok {
		return
	}
	switch a.Kind {
	case component.AbilityHPAura:
		// The owner's own buff is applied immediately and permanently; only
		// ally grants are tracked for later revocation.
		GrantMaxHP(w, owner, a.Param("hp_bonus", 0))
		a.Buffed = make(map[ecs.Entity]float64)
	}
}

// AbilitySystem ticks the periodic ability variants. Only auras do per-tick
// work today; the other kinds are purely hook-driven.
type AbilitySystem struct {
	roster Roster
}

func NewAbilitySystem(roster Roster) *AbilitySystem {
	return &AbilitySystem{roster: roster}
}

func (s *AbilitySystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.AbilityComponent.Kind(), func(e ecs.Entity, a *component.Ability) {
		if !entityAlive(w, e) {
			return
		}
		switch a.Kind {
		case component.AbilityHPAura:
			s.updateAura(w, e, a, dt)
		}
	})
}

// updateAura is throttled to a pulse interval, with ally-roster refresh on
// a slower interval still; radius checks between refreshes use the cached
// ally list.
func (s *AbilitySystem) updateAura(w *ecs.World, owner ecs.Entity, a *component.Ability, dt float64) {
	bonus := a.Param("hp_bonus", 0)
	if bonus <= 0 {
		return
	}
	radius := a.Param("radius", 3)
	pulse := a.Param("pulse_interval", 0.5)

	a.PulseTimer -= dt
	if a.PulseTimer > 0 {
		return
	}
	a.PulseTimer = pulse

	a.RefreshTimer -= pulse
	if a.RefreshTimer <= 0 {
		a.RefreshTimer = a.Param("refresh_interval", 2)
		var faction component.Faction
		if f, ok := ecs.Get(w, owner, component.FactionComponent.Kind()); ok {
			faction = *f
		}
		a.Allies = s.roster.Allies(faction)
	}

	tr, ok := ecs.Get(w, owner, component.TransformComponent.Kind())
	if !ok {
		return
	}
	if a.Buffed == nil {
		a.Buffed = make(map[ecs.Entity]float64)
	}

	// Revoke from allies that died or left the radius, exactly what was
	// granted.
	for ally, granted := range a.Buffed {
		if entityAlive(w, ally) {
			atr, ok := ecs.Get(w, ally, component.TransformComponent.Kind())
			if ok && atr.Pos.Sub(tr.Pos).Length() <= radius {
				continue
			}
			RevokeMaxHP(w, ally, granted)
		}
		delete(a.Buffed, ally)
	}

	// Grant to living cached allies newly inside the radius.
	for _, ally := range a.Allies {
		if ally == owner {
			continue
		}
		if _, ok := a.Buffed[ally]; ok {
			continue
		}
		if !entityAlive(w, ally) {
			continue
		}
		atr, ok := ecs.Get(w, ally, component.TransformComponent.Kind())
		if !ok || atr.Pos.Sub(tr.Pos).Length() > radius {
			continue
		}
		if GrantMaxHP(w, ally, bonus) {
			a.Buffed[ally] = bonus
		}
	}
}

// ModifyOutgoingDamage applies the attacker's ability to a computed damage
// amount before delivery.
func ModifyOutgoingDamage(w *ecs.World, attacker ecs.Entity, base float64, target ecs.Entity) float64 {
	a, ok := ecs.Get(w, attacker, component.AbilityComponent.Kind())
	if !ok {
		return base
	}
	switch a.Kind {
	case component.AbilityRage:
		return base * (1 + a.Param("per_stack", 0)*a.RageStacks)
	default:
		return base
	}
}

// ModifyIncomingDamage applies the defender's ability to damage about to
// land. Invoked from the damage path, not by attackers.
func ModifyIncomingDamage(w *ecs.World, target ecs.Entity, amount float64, attacker ecs.Entity) float64 {
	a, ok := ecs.Get(w, target, component.AbilityComponent.Kind())
	if !ok {
		return amount
	}
	switch a.Kind {
	case component.AbilityHarden:
		reduction := a.Param("reduction", 0)
		if reduction > 0.9 {
			reduction = 0.9
		}
		if reduction > 0 {
			amount *= 1 - reduction
		}
		return amount
	default:
		return amount
	}
}

// OnAttackPerformed fires after damage delivery for every attack type:
// immediately for melee, on impact for projectiles, per target for aoe.
func OnAttackPerformed(w *ecs.World, owner, target ecs.Entity, dealt float64) {
	if !entityAlive(w, owner) {
		return
	}
	a, ok := ecs.Get(w, owner, component.AbilityComponent.Kind())
	if !ok {
		return
	}
	switch a.Kind {
	case component.AbilitySlowOnHit:
		value := a.Param("slow_value", 0)
		duration := a.Param("slow_duration", 0)
		if value <= 0 || duration <= 0 || !entityAlive(w, target) {
			return
		}
		set, ok := ecs.Get(w, target, component.StatusSetComponent.Kind())
		if !ok {
			return
		}
		if set.Apply(component.StatusEffect{
			Type:      component.StatusSlow,
			Duration:  duration,
			Magnitude: value,
			Source:    owner,
		}) {
			w.Events().Push(ecs.Event{Kind: component.EventEffectApplied, Data: &component.EffectAppliedEvent{
				Entity: target,
				Type:   component.StatusSlow,
				Source: owner,
			}})
		}
	}
}

// OnDamageTaken fires on the defender after damage lands.
func OnDamageTaken(w *ecs.World, target ecs.Entity, dmg float64, attacker ecs.Entity) {
	a, ok := ecs.Get(w, target, component.AbilityComponent.Kind())
	if !ok {
		return
	}
	switch a.Kind {
	case component.AbilityRage:
		if a.RageStacks < a.Param("max_stacks", 0) {
			a.RageStacks++
		}
	}
}

// OnKill fires on the attacker when its damage crossed a victim to zero.
// A dead or stale killer is a silent no-op.
func OnKill(w *ecs.World, killer, victim ecs.Entity) {
	if !entityAlive(w, killer) {
		return
	}
	a, ok := ecs.Get(w, killer, component.AbilityComponent.Kind())
	if !ok {
		return
	}
	switch a.Kind {
	case component.AbilityVampiric:
		fraction := a.Param("heal_fraction", 0)
		if fraction <= 0 {
			return
		}
		vh, ok := ecs.Get(w, victim, component.HealthComponent.Kind())
		if !ok {
			return
		}
		ApplyHeal(w, killer, fraction*vh.Max)
	}
}

// OnOwnerDeath tears an ability down before the owner's status set is
// cleared. An aura must never leave dangling buffs on survivors.
func OnOwnerDeath(w *ecs.World, owner ecs.Entity) {
	a, ok := ecs.Get(w, owner, component.AbilityComponent.Kind())
	if !ok {
		return
	}
	switch a.Kind {
	case component.AbilityHPAura:
		for ally, granted := range a.Buffed {
			if !entityAlive(w, ally) {
				continue
			}
			RevokeMaxHP(w, ally, granted)
		}
		a.Buffed = nil
	}
}

func entityAlive(w *ecs.World, e ecs.Entity) bool {
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	return ok && h.Alive
}
