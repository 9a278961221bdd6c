package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

// projectileRadius is the collision radius of every shot.
const projectileRadius = 0.25

// ProjectilePool recycles projectile entities. Instances are created once
// and toggled with the Active flag; nothing ever destroys them, so handles
// held by the pool stay valid for the whole battle.
type ProjectilePool struct {
	world *ecs.World
	log   *zap.Logger
	free  []ecs.Entity
}

func NewProjectilePool(w *ecs.World, prewarm int, log *zap.Logger) *ProjectilePool {
	if log == nil {
		log = zap.NewNop()
	}
	p := &ProjectilePool{world: w, log: log}
	for i := 0; i < prewarm; i++ {
		p.free = append(p.free, p.create())
	}
	return p
}

func (p *ProjectilePool) create() ecs.Entity {
	e := ecs.CreateEntity(p.world)
	_ = ecs.Add(p.world, e, component.TransformComponent.Kind(), &component.Transform{})
	_ = ecs.Add(p.world, e, component.ProjectileComponent.Kind(), &component.Projectile{Radius: projectileRadius})
	return e
}

// ShotSpec is everything a projectile needs for its whole flight, captured
// at fire time. Damage is final: elemental and outgoing multipliers are
// already folded in.
type ShotSpec struct {
	Kind     component.ProjectileKind
	Owner    ecs.Entity
	Team     component.Faction
	Origin   cp.Vector
	Target   ecs.Entity
	AimPos   cp.Vector
	Damage   float64
	Speed    float64
	Lifetime float64
	TurnRate float64
}

// Spawn activates a pooled projectile, growing the pool when empty.
func (p *ProjectilePool) Spawn(spec ShotSpec) ecs.Entity {
	var e ecs.Entity
	if n := len(p.free); n > 0 {
		e = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		e = p.create()
		p.log.Debug("projectile pool exhausted, growing", zap.String("projectile", e.String()))
	}

	tr, _ := ecs.Get(p.world, e, component.TransformComponent.Kind())
	tr.Pos = spec.Origin

	dir := spec.AimPos.Sub(spec.Origin)
	if dir.LengthSq() > 0 {
		dir = dir.Normalize()
	} else {
		dir = cp.Vector{X: 1}
	}

	pr, _ := ecs.Get(p.world, e, component.ProjectileComponent.Kind())
	*pr = component.Projectile{
		Kind:     spec.Kind,
		Owner:    spec.Owner,
		Team:     spec.Team,
		Dir:      dir,
		AimPos:   spec.AimPos,
		Target:   spec.Target,
		Damage:   spec.Damage,
		Speed:    spec.Speed,
		Lifetime: spec.Lifetime,
		TurnRate: spec.TurnRate,
		Radius:   projectileRadius,
		Active:   true,
	}
	return e
}

// Release deactivates a projectile and returns it to the free list.
func (p *ProjectilePool) Release(e ecs.Entity) {
	pr, ok := ecs.Get(p.world, e, component.ProjectileComponent.Kind())
	if !ok || !pr.Active {
		return
	}
	pr.Active = false
	pr.HitGuard = false
	p.free = append(p.free, e)
}

// ProjectileSystem advances active projectiles: lifetime, steering,
// movement, then collision against the opposing roster.
type ProjectileSystem struct {
	roster Roster
	pool   *ProjectilePool
}

func NewProjectileSystem(roster Roster, pool *ProjectilePool) *ProjectileSystem {
	return &ProjectileSystem{roster: roster, pool: pool}
}

func (s *ProjectileSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.ProjectileComponent.Kind(), func(e ecs.Entity, pr *component.Projectile) {
		if !pr.Active {
			return
		}
		pr.Lifetime -= dt
		if pr.Lifetime <= 0 {
			s.pool.Release(e)
			return
		}

		tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			s.pool.Release(e)
			return
		}

		if pr.Kind == component.ProjectileHoming {
			// A live target updates the aim point; a dead one leaves the
			// projectile flying at the last position it was seen at.
			if entityAlive(w, pr.Target) {
				if ttr, ok := ecs.Get(w, pr.Target, component.TransformComponent.Kind()); ok {
					pr.AimPos = ttr.Pos
				}
			}
			pr.Dir = steer(pr.Dir, pr.AimPos.Sub(tr.Pos), pr.TurnRate*dt)
		}

		tr.Pos = tr.Pos.Add(pr.Dir.Mult(pr.Speed * dt))

		s.collide(w, e, pr, tr.Pos)
	})
}

// collide delivers damage to the first living opponent overlapping the
// projectile. HitGuard makes delivery at most once even if Release is
// delayed.
func (s *ProjectileSystem) collide(w *ecs.World, e ecs.Entity, pr *component.Projectile, pos cp.Vector) {
	if pr.HitGuard {
		return
	}
	for _, enemy := range s.roster.Enemies(pr.Team) {
		if !entityAlive(w, enemy) {
			continue
		}
		etr, ok := ecs.Get(w, enemy, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		hitRadius := pr.Radius
		if body, ok := ecs.Get(w, enemy, component.BodyComponent.Kind()); ok {
			hitRadius += body.Radius
		}
		if etr.Pos.Sub(pos).Length() > hitRadius {
			continue
		}
		pr.HitGuard = true
		applied := ApplyDamage(w, enemy, pr.Owner, pr.Damage)
		if applied > 0 {
			OnAttackPerformed(w, pr.Owner, enemy, applied)
		}
		s.pool.Release(e)
		return
	}
}

// steer rotates a unit heading toward the desired direction by at most
// maxTurn radians.
func steer(dir, want cp.Vector, maxTurn float64) cp.Vector {
	if want.LengthSq() == 0 {
		return dir
	}
	cur := dir.ToAngle()
	diff := want.ToAngle() - cur
	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	for diff < -math.Pi {
		diff += 2 * math.Pi
	}
	if diff > maxTurn {
		diff = maxTurn
	} else if diff < -maxTurn {
		diff = -maxTurn
	}
	return cp.ForAngle(cur + diff)
}
