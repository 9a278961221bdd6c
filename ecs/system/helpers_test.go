package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

// testRoster is a minimal in-test Roster backed by explicit membership
// lists.
type testRoster struct {
	w       *ecs.World
	members map[component.Faction][]ecs.Entity
}

func newTestRoster(w *ecs.World) *testRoster {
	return &testRoster{w: w, members: make(map[component.Faction][]ecs.Entity)}
}

func (r *testRoster) add(e ecs.Entity, f component.Faction) {
	r.members[f] = append(r.members[f], e)
}

func (r *testRoster) living(f component.Faction) []ecs.Entity {
	var out []ecs.Entity
	for _, e := range r.members[f] {
		if h, ok := ecs.Get(r.w, e, component.HealthComponent.Kind()); ok && h.Alive {
			out = append(out, e)
		}
	}
	return out
}

func (r *testRoster) NearestEnemy(from cp.Vector, self component.Faction) (ecs.Entity, bool) {
	var best ecs.Entity
	bestDist := 0.0
	found := false
	for _, e := range r.living(self.Opponent()) {
		tr, ok := ecs.Get(r.w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		d := tr.Pos.Sub(from).LengthSq()
		if !found || d < bestDist {
			best, bestDist, found = e, d, true
		}
	}
	return best, found
}

func (r *testRoster) Enemies(of component.Faction) []ecs.Entity {
	return r.living(of.Opponent())
}

func (r *testRoster) Allies(of component.Faction) []ecs.Entity {
	return r.living(of)
}

func (r *testRoster) Unregister(e ecs.Entity) {
	for f, list := range r.members {
		kept := list[:0]
		for _, m := range list {
			if m != e {
				kept = append(kept, m)
			}
		}
		r.members[f] = kept
	}
}

// unitSpec describes a test combatant.
type unitSpec struct {
	faction component.Faction
	pos     cp.Vector
	hp      float64
	ability component.Ability
	combat  component.Combat
}

func spawnUnit(w *ecs.World, r *testRoster, spec unitSpec) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: spec.pos})
	faction := spec.faction
	_ = ecs.Add(w, e, component.FactionComponent.Kind(), &faction)
	_ = ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{MoveSpeed: 2, Radius: 0.5})
	hp := component.NewHealth(spec.hp)
	_ = ecs.Add(w, e, component.HealthComponent.Kind(), &hp)
	_ = ecs.Add(w, e, component.StatusSetComponent.Kind(), &component.StatusSet{})
	ability := spec.ability
	_ = ecs.Add(w, e, component.AbilityComponent.Kind(), &ability)
	combat := spec.combat
	if combat.Count == 0 {
		combat.Count = 1
	}
	_ = ecs.Add(w, e, component.CombatComponent.Kind(), &combat)
	InitializeAbility(w, e)
	r.add(e, spec.faction)
	return e
}

func countEvents(events []ecs.Event, kind string) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}
