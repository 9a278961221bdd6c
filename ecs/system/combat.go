package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/skirmish/damage"
	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

// CombatSystem drives every combatant's seek/engage loop: acquire the
// nearest living opponent, close to weapon range, attack on cooldown.
// Targets are sticky; a combatant only re-seeks once its target dies.
type CombatSystem struct {
	roster           Roster
	pool             *ProjectilePool
	retargetInterval float64
}

func NewCombatSystem(roster Roster, pool *ProjectilePool, retargetInterval float64) *CombatSystem {
	return &CombatSystem{roster: roster, pool: pool, retargetInterval: retargetInterval}
}

func (s *CombatSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.CombatComponent.Kind(), func(e ecs.Entity, c *component.Combat) {
		if !entityAlive(w, e) {
			return
		}

		// Timers run down even while stunned; a stun pauses action, not
		// cooldown recovery.
		if c.AttackCooldown > 0 {
			c.AttackCooldown -= dt
		}
		if c.RetargetCooldown > 0 {
			c.RetargetCooldown -= dt
		}

		set, hasSet := ecs.Get(w, e, component.StatusSetComponent.Kind())
		if hasSet && set.IsStunned() {
			return
		}

		tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}

		if c.State == component.CombatEngaging && !entityAlive(w, c.Target) {
			c.State = component.CombatSeeking
			c.Target = ecs.Entity{}
		}
		if c.State == component.CombatSeeking {
			if c.RetargetCooldown > 0 {
				return
			}
			c.RetargetCooldown = s.retargetInterval
			var faction component.Faction
			if f, ok := ecs.Get(w, e, component.FactionComponent.Kind()); ok {
				faction = *f
			}
			target, found := s.roster.NearestEnemy(tr.Pos, faction)
			if !found {
				return
			}
			c.Target = target
			c.State = component.CombatEngaging
		}

		ttr, ok := ecs.Get(w, c.Target, component.TransformComponent.Kind())
		if !ok {
			return
		}
		offset := ttr.Pos.Sub(tr.Pos)

		if offset.Length() <= c.Range {
			if c.AttackCooldown <= 0 {
				s.attack(w, e, c, tr.Pos)
				c.AttackCooldown = c.CooldownTime
			}
			return
		}

		if hasSet && set.IsRooted() {
			return
		}
		speed := 0.0
		if body, ok := ecs.Get(w, e, component.BodyComponent.Kind()); ok {
			speed = body.MoveSpeed
		}
		if hasSet {
			speed *= set.SpeedMultiplier()
		}
		if speed <= 0 || offset.LengthSq() == 0 {
			return
		}
		step := speed * dt
		if dist := offset.Length(); step > dist {
			step = dist
		}
		tr.Pos = tr.Pos.Add(offset.Normalize().Mult(step))
	})
}

// attack dispatches one attack at the current target. Melee and aoe
// resolve immediately; projectile and homing weapons hand a precomputed
// damage amount to the pool and resolve on impact.
func (s *CombatSystem) attack(w *ecs.World, e ecs.Entity, c *component.Combat, origin cp.Vector) {
	ttr, ok := ecs.Get(w, c.Target, component.TransformComponent.Kind())
	if !ok {
		return
	}

	switch c.AttackType {
	case component.AttackMelee:
		dmg := s.outgoingDamage(w, e, c, c.Target)
		applied := ApplyDamage(w, c.Target, e, dmg)
		if applied > 0 {
			OnAttackPerformed(w, e, c.Target, applied)
		}

	case component.AttackProjectile, component.AttackHoming:
		kind := component.ProjectileLinear
		if c.AttackType == component.AttackHoming {
			kind = component.ProjectileHoming
		}
		var faction component.Faction
		if f, ok := ecs.Get(w, e, component.FactionComponent.Kind()); ok {
			faction = *f
		}
		s.pool.Spawn(ShotSpec{
			Kind:     kind,
			Owner:    e,
			Team:     faction,
			Origin:   origin,
			Target:   c.Target,
			AimPos:   ttr.Pos,
			Damage:   s.outgoingDamage(w, e, c, c.Target),
			Speed:    c.ProjectileSpeed,
			Lifetime: c.ProjectileLife,
			TurnRate: c.TurnRate,
		})

	case component.AttackAOE:
		// Centered on the attacker, radius inclusive. Elemental multipliers
		// are per victim, not per blast.
		var faction component.Faction
		if f, ok := ecs.Get(w, e, component.FactionComponent.Kind()); ok {
			faction = *f
		}
		center := origin
		for _, enemy := range s.roster.Enemies(faction) {
			if !entityAlive(w, enemy) {
				continue
			}
			etr, ok := ecs.Get(w, enemy, component.TransformComponent.Kind())
			if !ok || etr.Pos.Sub(center).Length() > c.AOERadius {
				continue
			}
			applied := ApplyDamage(w, enemy, e, s.outgoingDamage(w, e, c, enemy))
			if applied > 0 {
				OnAttackPerformed(w, e, enemy, applied)
			}
		}
	}
}

// outgoingDamage folds the attacker-side multipliers over base weapon
// damage: unit count, elemental matchup, status buffs, then the ability
// hook.
func (s *CombatSystem) outgoingDamage(w *ecs.World, attacker ecs.Entity, c *component.Combat, target ecs.Entity) float64 {
	var elem component.Element
	if el, ok := ecs.Get(w, attacker, component.ElementComponent.Kind()); ok {
		elem = *el
	}
	defenderID := ""
	if el, ok := ecs.Get(w, target, component.ElementComponent.Kind()); ok {
		defenderID = el.ID
	}
	dmg := damage.Compute(c.BaseDamage, c.Count, elem, defenderID)
	if set, ok := ecs.Get(w, attacker, component.StatusSetComponent.Kind()); ok {
		dmg *= set.DamageMultiplier()
	}
	return ModifyOutgoingDamage(w, attacker, dmg, target)
}
