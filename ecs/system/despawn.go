package system

import (
	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

// DespawnSystem counts down corpse grace timers and removes the entity
// from both its roster and the world once the timer runs out.
type DespawnSystem struct {
	roster Roster
}

func NewDespawnSystem(roster Roster) *DespawnSystem {
	return &DespawnSystem{roster: roster}
}

func (s *DespawnSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.DespawnComponent.Kind(), func(e ecs.Entity, d *component.Despawn) {
		d.Remaining -= dt
		if d.Remaining > 0 {
			return
		}
		s.roster.Unregister(e)
		ecs.DestroyEntity(w, e)
	})
}
