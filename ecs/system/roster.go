package system

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/skirmish/ecs"
	"github.com/milk9111/skirmish/ecs/component"
)

// Roster is the team-registry surface the combat systems query. The battle
// session's Registry implements it; nothing at this layer owns entities.
type Roster interface {
	// NearestEnemy returns the closest living opponent of self, or false if
	// the opposing roster is empty or fully dead.
	NearestEnemy(from cp.Vector, self component.Faction) (ecs.Entity, bool)
	// Enemies returns the living opponents of a faction in roster order.
	Enemies(of component.Faction) []ecs.Entity
	// Allies returns the living members of a faction in roster order.
	Allies(of component.Faction) []ecs.Entity
	// Unregister removes an entity from its roster at despawn.
	Unregister(e ecs.Entity)
}
