package ecs

import "fmt"

// Entity is a generation-checked handle into a world. Handles are stable:
// a destroyed entity's ID may be reused, but the generation is bumped so
// stale handles never resolve to the new occupant.
type Entity struct {
	ID  int
	Gen int
}

// Valid reports whether the handle refers to any entity slot at all.
// It does not imply the entity is still alive; use IsAlive for that.
func (e Entity) Valid() bool {
	return e.ID > 0
}

func (e Entity) String() string {
	return fmt.Sprintf("%d.%d", e.ID, e.Gen)
}
