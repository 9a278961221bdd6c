package system

import (
	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

// StatusSystem ticks every entity's status set: poison damage first, using
// the set as it stood at the start of the update, then duration decay.
type StatusSystem struct{}

func NewStatusSystem() *StatusSystem {
	return &StatusSystem{}
}

func (s *StatusSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.StatusSetComponent.Kind(), func(e ecs.Entity, set *component.StatusSet) {
		if !entityAlive(w, e) {
			return
		}
		for _, effect := range set.Effects() {
			if effect.Type != component.StatusPoison {
				continue
			}
			ApplyDamage(w, e, effect.Source, effect.Magnitude*dt)
			if !entityAlive(w, e) {
				return
			}
		}
		for _, expired := range set.Tick(dt) {
			w.Events().Push(ecs.Event{Kind: component.EventEffectExpired, Data: &component.EffectExpiredEvent{
				Entity: e,
				Type:   expired.Type,
				Source: expired.Source,
			}})
		}
	})
}
