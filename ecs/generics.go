package ecs

// Add attaches a component to a live entity, replacing any existing value of
// the same kind.
func Add[T any](w *World, e Entity, kind ComponentKind[T], v *T) error {
	if !kind.Valid() {
		return ErrInvalidComponentKind
	}
	if v == nil {
		return ErrNilComponent
	}
	if !IsAlive(w, e) {
		return ErrEntityNotAlive
	}
	w.store(kind.ID()).Set(e.ID, v)
	return nil
}

// Get returns the component of the given kind for a live entity.
func Get[T any](w *World, e Entity, kind ComponentKind[T]) (*T, bool) {
	if !kind.Valid() || !IsAlive(w, e) {
		return nil, false
	}
	v := w.store(kind.ID()).Get(e.ID)
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// Has reports whether a live entity carries the given component kind.
func Has[T any](w *World, e Entity, kind ComponentKind[T]) bool {
	if !kind.Valid() || !IsAlive(w, e) {
		return false
	}
	return w.store(kind.ID()).Has(e.ID)
}

// Remove detaches a component from an entity if present.
func Remove[T any](w *World, e Entity, kind ComponentKind[T]) bool {
	if !kind.Valid() {
		return false
	}
	return w.store(kind.ID()).Remove(e.ID)
}

// ForEach visits every live entity carrying the given component kind. The
// entity list is snapshotted up front, so callbacks may add or remove
// components and destroy entities mid-iteration.
func ForEach[T any](w *World, kind ComponentKind[T], fn func(e Entity, c *T)) {
	if !kind.Valid() {
		return
	}
	s := w.store(kind.ID())
	ids := append([]int(nil), s.Entities()...)
	for _, id := range ids {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		v := s.Get(id)
		if v == nil {
			continue
		}
		if cast, ok := v.(*T); ok {
			fn(e, cast)
		}
	}
}
