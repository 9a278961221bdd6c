package ecs

// entityStore tracks entity generations, free ids, and creation order.
type entityStore struct {
	nextID int
	gen    []int
	live   []bool
	free   []int
	order  []int // live ids in creation order
}

func (s *entityStore) create() Entity {
	var id int
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		s.nextID++
		id = s.nextID
		s.gen = append(s.gen, 0)
		s.live = append(s.live, false)
	}
	s.live[id-1] = true
	s.order = append(s.order, id)
	return Entity{ID: id, Gen: s.gen[id-1]}
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.ID - 1
	s.gen[idx]++
	s.live[idx] = false
	s.free = append(s.free, e.ID)
	for i, id := range s.order {
		if id == e.ID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	if e.ID <= 0 || e.ID > len(s.gen) {
		return false
	}
	return s.live[e.ID-1] && s.gen[e.ID-1] == e.Gen
}

// handle returns the current handle for a live id.
func (s *entityStore) handle(id int) (Entity, bool) {
	if id <= 0 || id > len(s.gen) || !s.live[id-1] {
		return Entity{}, false
	}
	return Entity{ID: id, Gen: s.gen[id-1]}, true
}

func (s *entityStore) entities() []Entity {
	out := make([]Entity, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, Entity{ID: id, Gen: s.gen[id-1]})
	}
	return out
}
