package battle

import (
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

func addUnit(w *ecs.World, r *Registry, faction component.Faction, pos cp.Vector, hp float64) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: pos})
	f := faction
	_ = ecs.Add(w, e, component.FactionComponent.Kind(), &f)
	h := component.NewHealth(hp)
	_ = ecs.Add(w, e, component.HealthComponent.Kind(), &h)
	r.Register(e, faction)
	return e
}

func TestRegistryNearestEnemy(t *testing.T) {
	w := ecs.NewWorld()
	r := NewRegistry(w)

	near := addUnit(w, r, component.FactionEnemy, cp.Vector{X: 2}, 10)
	addUnit(w, r, component.FactionEnemy, cp.Vector{X: 5}, 10)

	got, ok := r.NearestEnemy(cp.Vector{}, component.FactionPlayer)
	if !ok || got != near {
		t.Fatalf("expected nearest enemy %v, got %v ok=%v", near, got, ok)
	}

	if _, ok := r.NearestEnemy(cp.Vector{}, component.FactionEnemy); ok {
		t.Fatal("empty opposing roster should report no enemy")
	}
}

func TestRegistryNearestEnemyTies(t *testing.T) {
	w := ecs.NewWorld()
	r := NewRegistry(w)

	first := addUnit(w, r, component.FactionEnemy, cp.Vector{X: 3}, 10)
	addUnit(w, r, component.FactionEnemy, cp.Vector{X: -3}, 10)

	got, ok := r.NearestEnemy(cp.Vector{}, component.FactionPlayer)
	if !ok || got != first {
		t.Fatalf("distance ties should go to the earlier registration, got %v", got)
	}
}

func TestRegistrySkipsDead(t *testing.T) {
	w := ecs.NewWorld()
	r := NewRegistry(w)

	corpse := addUnit(w, r, component.FactionEnemy, cp.Vector{X: 1}, 10)
	alive := addUnit(w, r, component.FactionEnemy, cp.Vector{X: 9}, 10)

	h, _ := ecs.Get(w, corpse, component.HealthComponent.Kind())
	h.Damage(100)

	got, ok := r.NearestEnemy(cp.Vector{}, component.FactionPlayer)
	if !ok || got != alive {
		t.Fatalf("dead entities should be skipped, got %v", got)
	}
	if r.AliveCount(component.FactionEnemy) != 1 {
		t.Fatalf("alive count = %d, want 1", r.AliveCount(component.FactionEnemy))
	}
}

func TestRegistryPrunesDestroyed(t *testing.T) {
	w := ecs.NewWorld()
	r := NewRegistry(w)

	gone := addUnit(w, r, component.FactionPlayer, cp.Vector{}, 10)
	addUnit(w, r, component.FactionPlayer, cp.Vector{X: 1}, 10)

	ecs.DestroyEntity(w, gone)
	if n := r.AliveCount(component.FactionPlayer); n != 1 {
		t.Fatalf("alive count = %d, want 1 after destroy", n)
	}
	if n := len(r.members[component.FactionPlayer]); n != 1 {
		t.Fatalf("destroyed handle should be pruned from the roster, have %d", n)
	}
}

func TestRegistryRegisterDedupe(t *testing.T) {
	w := ecs.NewWorld()
	r := NewRegistry(w)

	e := addUnit(w, r, component.FactionPlayer, cp.Vector{}, 10)
	r.Register(e, component.FactionPlayer)
	if n := len(r.members[component.FactionPlayer]); n != 1 {
		t.Fatalf("duplicate registration should be ignored, have %d", n)
	}

	r.Unregister(e)
	if r.AliveCount(component.FactionPlayer) != 0 {
		t.Fatal("unregister should remove the entity")
	}
}

func TestRegistryTotalHP(t *testing.T) {
	w := ecs.NewWorld()
	r := NewRegistry(w)

	a := addUnit(w, r, component.FactionPlayer, cp.Vector{}, 10)
	addUnit(w, r, component.FactionPlayer, cp.Vector{X: 1}, 20)

	h, _ := ecs.Get(w, a, component.HealthComponent.Kind())
	h.Damage(4)

	if total := r.TotalHP(component.FactionPlayer); total != 26 {
		t.Fatalf("total hp = %v, want 26", total)
	}
}
