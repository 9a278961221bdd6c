package battle

import (
	"context"
	"math"
	"time"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/milk9111/skirmish/archetypes"
	"github.com/milk9111/skirmish/damage"
	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
	"github.com/milk9111/skirmish/ecs/system"
)

// Outcome explains how a battle ended.
type Outcome uint8

const (
	// OutcomeElimination means one roster was wiped out.
	OutcomeElimination Outcome = iota
	// OutcomeTimeout means the duration cap hit; the winner is the side
	// with more total hit points.
	OutcomeTimeout
)

func (o Outcome) String() string {
	if o == OutcomeTimeout {
		return "timeout"
	}
	return "elimination"
}

// Result is the verdict of a finished battle.
type Result struct {
	Winner  component.Faction
	Outcome Outcome
	Elapsed time.Duration
	Ticks   int
}

// Session owns one battle: the world, the rosters, the projectile pool, and
// the fixed system tick order.
type Session struct {
	cfg      Config
	log      *zap.Logger
	world    *ecs.World
	registry *Registry
	pool     *system.ProjectilePool
	systems  []ecs.System

	elapsed float64
	ticks   int
}

func NewSession(cfg Config) *Session {
	s := &Session{cfg: cfg.withDefaults()}
	s.log = s.cfg.Logger
	s.reset()
	return s
}

func (s *Session) reset() {
	s.world = ecs.NewWorld()
	s.registry = NewRegistry(s.world)
	s.pool = system.NewProjectilePool(s.world, s.cfg.PoolPrewarm, s.log)
	// Tick order is fixed: effects decay first so this tick's attacks see
	// fresh multipliers, despawn runs last so everything else observed the
	// corpse.
	s.systems = []ecs.System{
		system.NewStatusSystem(),
		system.NewAbilitySystem(s.registry),
		system.NewCombatSystem(s.registry, s.pool, s.cfg.RetargetInterval),
		system.NewProjectileSystem(s.registry, s.pool),
		system.NewDespawnSystem(s.registry),
	}
	s.elapsed = 0
	s.ticks = 0
}

// World exposes the underlying world, mainly for inspection.
func (s *Session) World() *ecs.World { return s.world }

// Clear tears the battle down for a fresh round with the same config.
func (s *Session) Clear() {
	s.reset()
}

// Spawn builds one combatant from a loadout. Per-unit hit points shrink
// with loadout size; ability parameters are resolved with defaults and the
// effectiveness multiplier once, here, so the hooks never rescale.
func (s *Session) Spawn(l archetypes.Loadout, faction component.Faction, pos cp.Vector) (ecs.Entity, error) {
	if err := l.Validate(); err != nil {
		return ecs.Entity{}, err
	}
	attackType, err := component.ParseAttackType(l.Weapon.AttackType)
	if err != nil {
		return ecs.Entity{}, err
	}
	abilityKind, err := component.ParseAbilityKind(l.Ability.Kind)
	if err != nil {
		return ecs.Entity{}, err
	}

	e := ecs.CreateEntity(s.world)
	_ = ecs.Add(s.world, e, component.TransformComponent.Kind(), &component.Transform{Pos: pos})
	_ = ecs.Add(s.world, e, component.FactionComponent.Kind(), &faction)
	_ = ecs.Add(s.world, e, component.BodyComponent.Kind(), &component.Body{
		MoveSpeed: l.Body.MoveSpeed,
		Radius:    l.Body.Size,
	})
	hp := component.NewHealth(l.Body.MaxHP * damage.UnitCountMultiplier(l.Count))
	_ = ecs.Add(s.world, e, component.HealthComponent.Kind(), &hp)
	_ = ecs.Add(s.world, e, component.StatusSetComponent.Kind(), &component.StatusSet{})
	_ = ecs.Add(s.world, e, component.ElementComponent.Kind(), &component.Element{
		ID:           l.Element.ID,
		StrongVs:     l.Element.StrongVs,
		WeakVs:       l.Element.WeakVs,
		Advantage:    l.Element.Advantage,
		Disadvantage: l.Element.Disadvantage,
	})
	_ = ecs.Add(s.world, e, component.AbilityComponent.Kind(), &component.Ability{
		Kind:   abilityKind,
		Params: system.ResolveAbilityParams(abilityKind, l.Ability.Params, damage.AbilityEffectiveness(l.Count)),
	})
	_ = ecs.Add(s.world, e, component.CombatComponent.Kind(), &component.Combat{
		AttackType:      attackType,
		BaseDamage:      l.Weapon.Damage,
		CooldownTime:    l.Weapon.Cooldown,
		Range:           l.Body.AttackRange,
		AOERadius:       l.Weapon.AOERadius,
		ProjectileSpeed: l.Weapon.ProjectileSpeed,
		ProjectileLife:  l.Weapon.ProjectileLifetime,
		TurnRate:        l.Weapon.TurnRate,
		Count:           l.Count,
	})

	system.InitializeAbility(s.world, e)
	s.registry.Register(e, faction)
	return e, nil
}

// SpawnSquad spawns a loadout's full unit count in a loose ring around
// center. Invalid loadouts are skipped with a diagnostic.
func (s *Session) SpawnSquad(l archetypes.Loadout, faction component.Faction, center cp.Vector) []ecs.Entity {
	if err := l.Validate(); err != nil {
		s.log.Warn("skipping invalid loadout",
			zap.String("faction", faction.String()),
			zap.Error(err))
		return nil
	}
	spacing := l.Body.Size*2 + 0.5
	out := make([]ecs.Entity, 0, l.Count)
	for i := 0; i < l.Count; i++ {
		offset := cp.ForAngle(float64(i) / float64(l.Count) * 2 * math.Pi).Mult(spacing)
		if l.Count == 1 {
			offset = cp.Vector{}
		}
		e, err := s.Spawn(l, faction, center.Add(offset))
		if err != nil {
			s.log.Warn("skipping unit spawn",
				zap.String("faction", faction.String()),
				zap.Error(err))
			continue
		}
		out = append(out, e)
	}
	return out
}

// Tick advances the battle by dt seconds and returns the events produced.
func (s *Session) Tick(dt float64) []ecs.Event {
	for _, sys := range s.systems {
		sys.Update(s.world, dt)
	}
	s.elapsed += dt
	s.ticks++
	return s.world.Events().Drain()
}

// AliveCount returns a faction's living head count.
func (s *Session) AliveCount(faction component.Faction) int {
	return s.registry.AliveCount(faction)
}

// TotalHP returns a faction's summed current hit points.
func (s *Session) TotalHP(faction component.Faction) float64 {
	return s.registry.TotalHP(faction)
}

// Run ticks the battle at the configured rate until elimination, timeout,
// or context cancellation. It simulates as fast as it can; the tick rate
// fixes dt, not wall-clock pacing.
func (s *Session) Run(ctx context.Context) (Result, error) {
	dt := 1.0 / float64(s.cfg.TickRate)
	maxTicks := int(s.cfg.Duration.Seconds() * float64(s.cfg.TickRate))

	for tick := 0; tick < maxTicks; tick++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		events := s.Tick(dt)
		for _, ev := range events {
			if ev.Kind != component.EventEntityDied {
				continue
			}
			if died, ok := ev.Data.(*component.EntityDiedEvent); ok {
				s.log.Debug("combatant died",
					zap.String("entity", died.Entity.String()),
					zap.String("faction", died.Faction.String()),
					zap.String("killer", died.Killer.String()))
			}
		}

		playerAlive := s.registry.AliveCount(component.FactionPlayer)
		enemyAlive := s.registry.AliveCount(component.FactionEnemy)
		if playerAlive > 0 && enemyAlive > 0 {
			continue
		}

		res := Result{Outcome: OutcomeElimination, Elapsed: s.elapsedDuration(), Ticks: s.ticks}
		switch {
		case playerAlive > 0:
			res.Winner = component.FactionPlayer
		case enemyAlive > 0:
			res.Winner = component.FactionEnemy
		default:
			// Mutual elimination on the same tick.
			res.Winner = s.cfg.TieBreak
		}
		return res, nil
	}

	res := Result{Outcome: OutcomeTimeout, Elapsed: s.elapsedDuration(), Ticks: s.ticks}
	playerHP := s.registry.TotalHP(component.FactionPlayer)
	enemyHP := s.registry.TotalHP(component.FactionEnemy)
	switch {
	case playerHP > enemyHP:
		res.Winner = component.FactionPlayer
	case enemyHP > playerHP:
		res.Winner = component.FactionEnemy
	default:
		res.Winner = s.cfg.TieBreak
	}
	return res, nil
}

func (s *Session) elapsedDuration() time.Duration {
	return time.Duration(s.elapsed * float64(time.Second))
}
