package engine

import (
	"github.com/lixenwraith/rockstorm/core"
)

// Store owns every live entity keyed by id
// Iteration follows insertion order; removal keeps the remaining order intact
type Store struct {
	nextID   core.EntityID
	entities map[core.EntityID]*core.Entity
	order    []core.EntityID
}

// NewStore creates an empty store, the first assigned id is 1
func NewStore() *Store {
	return &Store{
		nextID:   1,
		entities: make(map[core.EntityID]*core.Entity),
		order:    make([]core.EntityID, 0, 64),
	}
}

// Insert assigns the next id to e and stores it, returning the stored entity
func (s *Store) Insert(e core.Entity) *core.Entity {
	e.ID = s.nextID
	s.nextID++

	stored := &e
	s.entities[e.ID] = stored
	s.order = append(s.order, e.ID)
	return stored
}

// Get returns the stored entity for id
func (s *Store) Get(id core.EntityID) (*core.Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// Remove deletes id, absent ids are a no-op
func (s *Store) Remove(id core.EntityID) bool {
	if _, ok := s.entities[id]; !ok {
		return false
	}
	delete(s.entities, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// RemoveBatch deletes multiple entities in a single pass - O(n+m) vs O(n*m) for individual removes
func (s *Store) RemoveBatch(ids []core.EntityID) int {
	if len(ids) == 0 || len(s.entities) == 0 {
		return 0
	}

	removed := 0
	for _, id := range ids {
		if _, ok := s.entities[id]; ok {
			delete(s.entities, id)
			removed++
		}
	}
	if removed == 0 {
		return 0
	}

	// Compact order in place, skipping ids no longer in the map
	kept := s.order[:0]
	for _, id := range s.order {
		if _, ok := s.entities[id]; ok {
			kept = append(kept, id)
		}
	}
	s.order = kept
	return removed
}

// Snapshot returns the live entities in insertion order
// The slice is fresh, so callers may insert or remove while walking it
func (s *Store) Snapshot() []*core.Entity {
	out := make([]*core.Entity, len(s.order))
	for i, id := range s.order {
		out[i] = s.entities[id]
	}
	return out
}

// Each visits entities in insertion order until fn returns false
// fn must not insert or remove
func (s *Store) Each(fn func(e *core.Entity) bool) {
	for _, id := range s.order {
		if !fn(s.entities[id]) {
			return
		}
	}
}

// Count returns the number of live entities
func (s *Store) Count() int {
	return len(s.order)
}

// CountKind returns the number of live entities of kind k
func (s *Store) CountKind(k core.Kind) int {
	n := 0
	for _, id := range s.order {
		if s.entities[id].Kind == k {
			n++
		}
	}
	return n
}

// CountByKind fills one counter per kind
func (s *Store) CountByKind() [core.KindCount]int {
	var counts [core.KindCount]int
	for _, id := range s.order {
		if k := int(s.entities[id].Kind); k < core.KindCount {
			counts[k]++
		}
	}
	return counts
}

// NextID returns the id the next Insert will assign
func (s *Store) NextID() core.EntityID {
	return s.nextID
}
