package component

import "github.com/milk9111/skirmish/ecs"

// Body holds the physical stats baked from a body archetype at spawn.
type Body struct {
	MoveSpeed float64
	Radius    float64
}

var BodyComponent = ecs.NewComponent[Body]()
