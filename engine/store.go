package engine

import (
	"github.com/lixenwraith/grove/core"
)

// Store is a generic container for a specific component type T
// Uses sparse set pattern for cache-friendly iteration
type Store[T any] struct {
	components map[core.Entity]T
	entities   []core.Entity // entities that currently have this component
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[core.Entity]T),
		entities:   make([]core.Entity, 0, 16),
	}
}

// Set inserts or updates a component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves a component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Remove deletes a component from an entity
func (s *Store[T]) Remove(e core.Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities[i] = s.entities[len(s.entities)-1]
			s.entities = s.entities[:len(s.entities)-1]
			break
		}
	}
}

// Entities returns all entities with this component type
func (s *Store[T]) Entities() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Len returns the number of entities with this component
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.components = make(map[core.Entity]T)
	s.entities = s.entities[:0]
}
