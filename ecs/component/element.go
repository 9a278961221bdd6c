package component

import "github.com/milk9111/skirmish/ecs"

// Element holds an entity's elemental affinity baked from its element
// archetype: which element id it beats, which beats it, and the asymmetric
// multipliers for each direction.
type Element struct {
	ID           string
	StrongVs     string
	WeakVs       string
	Advantage    float64
	Disadvantage float64
}

var ElementComponent = ecs.NewComponent[Element]()
