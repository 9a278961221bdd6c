package system

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

func TestProjectilePoolReuse(t *testing.T) {
	w := ecs.NewWorld()
	pool := NewProjectilePool(w, 2, nil)

	spec := ShotSpec{
		Kind:     component.ProjectileLinear,
		Origin:   cp.Vector{},
		AimPos:   cp.Vector{X: 5},
		Speed:    1,
		Lifetime: 1,
	}

	first := pool.Spawn(spec)
	second := pool.Spawn(spec)
	third := pool.Spawn(spec) // pool grows past prewarm

	if first == second || second == third || first == third {
		t.Fatal("spawns should hand out distinct entities")
	}

	pool.Release(first)
	reused := pool.Spawn(spec)
	if reused != first {
		t.Fatalf("expected released projectile to be reused, got %v want %v", reused, first)
	}
	pr, _ := ecs.Get(w, reused, component.ProjectileComponent.Kind())
	if pr.HitGuard || !pr.Active {
		t.Fatalf("respawn should reset flags: %+v", pr)
	}

	// Double release must not put the entity in the free list twice.
	pool.Release(second)
	pool.Release(second)
	a := pool.Spawn(spec)
	b := pool.Spawn(spec)
	if a == b {
		t.Fatal("double release leaked a duplicate free entry")
	}
}

func TestProjectileFlightAndHit(t *testing.T) {
	w := ecs.NewWorld()
	r := newTestRoster(w)
	pool := NewProjectilePool(w, 1, nil)
	sys := NewProjectileSystem(r, pool)

	shooter := spawnUnit(w, r, unitSpec{faction: component.FactionPlayer, hp: 10})
	target := spawnUnit(w, r, unitSpec{faction: component.FactionEnemy, pos: cp.Vector{X: 5}, hp: 10})

	pool.Spawn(ShotSpec{
		Kind:     component.ProjectileLinear,
		Owner:    shooter,
		Team:     component.FactionPlayer,
		Origin:   cp.Vector{},
		Target:   target,
		AimPos:   cp.Vector{X: 5},
		Damage:   4,
		Speed:    10,
		Lifetime: 2,
	})

	for i := 0; i < 10; i++ {
		sys.Update(w, 0.1)
	}

	h, _ := ecs.Get(w, target, component.HealthComponent.Kind())
	if h.Current != 6 {
		t.Fatalf("target should take one hit of 4, current = %v", h.Current)
	}
}

func TestProjectileHitGuard(t *testing.T) {
	w := ecs.NewWorld()
	r := newTestRoster(w)
	pool := NewProjectilePool(w, 1, nil)
	sys := NewProjectileSystem(r, pool)

	shooter := spawnUnit(w, r, unitSpec{faction: component.FactionPlayer, hp: 10})
	target := spawnUnit(w, r, unitSpec{faction: component.FactionEnemy, pos: cp.Vector{X: 0.1}, hp: 100})

	e := pool.Spawn(ShotSpec{
		Kind:     component.ProjectileLinear,
		Owner:    shooter,
		Team:     component.FactionPlayer,
		Origin:   cp.Vector{},
		Target:   target,
		AimPos:   cp.Vector{X: 0.1},
		Damage:   5,
		Speed:    0.01,
		Lifetime: 10,
	})

	// Deliberately overlapping for several ticks; damage must land once.
	sys.Update(w, 0.1)
	pr, _ := ecs.Get(w, e, component.ProjectileComponent.Kind())
	if pr.Active {
		t.Fatal("projectile should release on hit")
	}
	sys.Update(w, 0.1)
	sys.Update(w, 0.1)

	h, _ := ecs.Get(w, target, component.HealthComponent.Kind())
	if h.Current != 95 {
		t.Fatalf("expected exactly one delivery, current = %v", h.Current)
	}
}

func TestProjectileLifetimeExpiry(t *testing.T) {
	w := ecs.NewWorld()
	r := newTestRoster(w)
	pool := NewProjectilePool(w, 1, nil)
	sys := NewProjectileSystem(r, pool)

	e := pool.Spawn(ShotSpec{
		Kind:     component.ProjectileLinear,
		Team:     component.FactionPlayer,
		Origin:   cp.Vector{},
		AimPos:   cp.Vector{X: 100},
		Speed:    1,
		Lifetime: 0.5,
	})

	sys.Update(w, 0.3)
	pr, _ := ecs.Get(w, e, component.ProjectileComponent.Kind())
	if !pr.Active {
		t.Fatal("projectile should still be in flight")
	}
	sys.Update(w, 0.3)
	if pr.Active {
		t.Fatal("projectile should expire and release")
	}
}

func TestHomingFreezesOnTargetDeath(t *testing.T) {
	w := ecs.NewWorld()
	r := newTestRoster(w)
	pool := NewProjectilePool(w, 1, nil)
	sys := NewProjectileSystem(r, pool)

	shooter := spawnUnit(w, r, unitSpec{faction: component.FactionPlayer, hp: 10})
	target := spawnUnit(w, r, unitSpec{faction: component.FactionEnemy, pos: cp.Vector{X: 10}, hp: 10})

	e := pool.Spawn(ShotSpec{
		Kind:     component.ProjectileHoming,
		Owner:    shooter,
		Team:     component.FactionPlayer,
		Origin:   cp.Vector{},
		Target:   target,
		AimPos:   cp.Vector{X: 10},
		Damage:   1,
		Speed:    1,
		Lifetime: 60,
		TurnRate: 10,
	})

	// Target strafes; the projectile tracks it.
	ttr, _ := ecs.Get(w, target, component.TransformComponent.Kind())
	ttr.Pos = cp.Vector{X: 10, Y: 4}
	sys.Update(w, 0.1)

	pr, _ := ecs.Get(w, e, component.ProjectileComponent.Kind())
	if pr.AimPos != (cp.Vector{X: 10, Y: 4}) {
		t.Fatalf("homing should re-sample a live target, aim = %v", pr.AimPos)
	}

	// Target dies; the aim point must freeze where it was last seen.
	th, _ := ecs.Get(w, target, component.HealthComponent.Kind())
	th.Damage(100)
	ttr.Pos = cp.Vector{X: -50, Y: -50}
	sys.Update(w, 0.1)

	if pr.AimPos != (cp.Vector{X: 10, Y: 4}) {
		t.Fatalf("aim should freeze on death, aim = %v", pr.AimPos)
	}
}

func TestHomingTurnRateBounds(t *testing.T) {
	dir := cp.Vector{X: 1}
	// Want a full reversal but only 0.1 radians allowed.
	turned := steer(dir, cp.Vector{X: -1}, 0.1)
	angle := turned.ToAngle()
	if angle > 0.1+1e-9 || angle < 0.1-1e-9 {
		t.Fatalf("turn should clamp to 0.1 rad, got %v", angle)
	}

	// Within bounds the heading snaps to the desired direction.
	turned = steer(dir, cp.Vector{Y: 1}, 3.0)
	if turned.Sub(cp.Vector{Y: 1}).Length() > 1e-9 {
		t.Fatalf("unbounded turn should reach target heading, got %v", turned)
	}
}
