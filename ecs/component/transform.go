package component

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/skirmish/ecs"
)

// Transform is an entity's world position.
type Transform struct {
	Pos cp.Vector
}

var TransformComponent = ecs.NewComponent[Transform]()
