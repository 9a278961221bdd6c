package component

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/skirmish/ecs"
)

// ProjectileKind selects the flight model.
type ProjectileKind uint8

const (
	// ProjectileLinear flies at constant velocity along the direction
	// captured at spawn, ignoring later target movement.
	ProjectileLinear ProjectileKind = iota
	// ProjectileHoming re-samples a live target every tick and freezes to
	// the last known position once the target dies.
	ProjectileHoming
)

func (k ProjectileKind) String() string {
	if k == ProjectileHoming {
		return "homing"
	}
	return "linear"
}

// Projectile is a pooled transient attack carrier. Instances are never
// destroyed: Active gates simulation, and Release returns them to the pool.
type Projectile struct {
	Kind  ProjectileKind
	Owner ecs.Entity
	Team  Faction

	// Dir is the current unit heading. AimPos is the fixed target position
	// for linear shots and the last known target position for homing ones.
	Dir    cp.Vector
	AimPos cp.Vector
	Target ecs.Entity

	Damage   float64
	Speed    float64
	Lifetime float64
	TurnRate float64
	Radius   float64

	// HitGuard ensures damage is delivered at most once per flight.
	HitGuard bool
	Active   bool
}

var ProjectileComponent = ecs.NewComponent[Projectile]()
