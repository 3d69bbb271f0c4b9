package ecs

import "slices"

// Removable is implemented by all component stores so the Registry can
// bulk-remove an entity's data from every store on destroy.
type Removable interface {
	Remove(id EntityID)
}

// PtrComponentStore is a generic typed map store for one kind of component.
// Iteration is always in ascending EntityID order so systems that draw from
// the shared random source consume it in a reproducible sequence.
type PtrComponentStore[T any] struct {
	data map[EntityID]*T
	keys []EntityID // scratch for ordered iteration
}

func NewPtrComponentStore[T any]() *PtrComponentStore[T] {
	return &PtrComponentStore[T]{
		data: make(map[EntityID]*T, 64),
	}
}

func (s *PtrComponentStore[T]) Set(id EntityID, c *T) {
	s.data[id] = c
}

func (s *PtrComponentStore[T]) Get(id EntityID) (*T, bool) {
	c, ok := s.data[id]
	return c, ok
}

func (s *PtrComponentStore[T]) Remove(id EntityID) {
	delete(s.data, id)
}

func (s *PtrComponentStore[T]) Has(id EntityID) bool {
	_, ok := s.data[id]
	return ok
}

func (s *PtrComponentStore[T]) Len() int {
	return len(s.data)
}

// IDs returns a sorted snapshot of the ids currently in the store. The
// snapshot stays valid if fn-style callers destroy entities while walking it.
func (s *PtrComponentStore[T]) IDs() []EntityID {
	s.keys = s.keys[:0]
	for id := range s.data {
		s.keys = append(s.keys, id)
	}
	slices.Sort(s.keys)
	return slices.Clone(s.keys)
}

// Each visits every component in id order. Components removed by fn before
// they are reached are skipped.
func (s *PtrComponentStore[T]) Each(fn func(EntityID, *T)) {
	for _, id := range s.IDs() {
		if c, ok := s.data[id]; ok {
			fn(id, c)
		}
	}
}
