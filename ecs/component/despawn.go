package component

import "github.com/milk9111/skirmish/ecs"

// Despawn is a countdown added to a corpse at death. When it reaches zero
// the despawn system unregisters and destroys the entity; the grace period
// keeps the handle resolvable for same-tick attackers and observers.
type Despawn struct {
	Remaining float64
}

var DespawnComponent = ecs.NewComponent[Despawn]()
