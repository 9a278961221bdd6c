// Package battle assembles the combat systems into a deterministic
// fixed-tick session: spawn loadouts, tick until one side is eliminated or
// time runs out, report the result.
package battle

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

// Registry tracks which entities belong to which faction. It holds
// non-owning handles; destroyed entities are pruned opportunistically on
// read, and despawn removes them eagerly.
type Registry struct {
	world   *ecs.World
	members map[component.Faction][]ecs.Entity
}

func NewRegistry(w *ecs.World) *Registry {
	return &Registry{
		world:   w,
		members: make(map[component.Faction][]ecs.Entity),
	}
}

// Register adds an entity to a faction roster. Duplicate registrations are
// ignored.
func (r *Registry) Register(e ecs.Entity, faction component.Faction) {
	for _, m := range r.members[faction] {
		if m == e {
			return
		}
	}
	r.members[faction] = append(r.members[faction], e)
}

// Unregister removes an entity from every roster.
func (r *Registry) Unregister(e ecs.Entity) {
	for faction, list := range r.members {
		kept := list[:0]
		for _, m := range list {
			if m != e {
				kept = append(kept, m)
			}
		}
		r.members[faction] = kept
	}
}

// Clear drops every roster entry.
func (r *Registry) Clear() {
	r.members = make(map[component.Faction][]ecs.Entity)
}

// living returns the roster members that are still alive, pruning handles
// whose entities were destroyed outright.
func (r *Registry) living(faction component.Faction) []ecs.Entity {
	list := r.members[faction]
	kept := list[:0]
	var out []ecs.Entity
	for _, m := range list {
		if !ecs.IsAlive(r.world, m) {
			continue
		}
		kept = append(kept, m)
		if h, ok := ecs.Get(r.world, m, component.HealthComponent.Kind()); ok && h.Alive {
			out = append(out, m)
		}
	}
	r.members[faction] = kept
	return out
}

// Allies returns the living members of a faction in registration order.
func (r *Registry) Allies(of component.Faction) []ecs.Entity {
	return r.living(of)
}

// Enemies returns the living opponents of a faction in registration order.
func (r *Registry) Enemies(of component.Faction) []ecs.Entity {
	return r.living(of.Opponent())
}

// NearestEnemy returns the closest living opponent. Distance ties go to the
// earlier-registered entity.
func (r *Registry) NearestEnemy(from cp.Vector, self component.Faction) (ecs.Entity, bool) {
	var best ecs.Entity
	bestDist := 0.0
	found := false
	for _, e := range r.living(self.Opponent()) {
		tr, ok := ecs.Get(r.world, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		d := tr.Pos.Sub(from).LengthSq()
		if !found || d < bestDist {
			best = e
			bestDist = d
			found = true
		}
	}
	return best, found
}

// AliveCount returns the living head count of a faction.
func (r *Registry) AliveCount(faction component.Faction) int {
	return len(r.living(faction))
}

// TotalHP sums the current hit points of a faction's living members.
func (r *Registry) TotalHP(faction component.Faction) float64 {
	total := 0.0
	for _, e := range r.living(faction) {
		if h, ok := ecs.Get(r.world, e, component.HealthComponent.Kind()); ok {
			total += h.Current
		}
	}
	return total
}
