package types

import "slices"

// OrderedSet is a generic set for comparable types that remembers the order
// in which elements were first inserted.
//
// It combines a map for O(1) membership tests with a slice holding the
// insertion order. This type is mutable: Add modifies the set in place.
type OrderedSet[T comparable] struct {
	index map[T]struct{}
	items []T
}

// NewOrderedSet creates a new OrderedSet and optionally inserts the provided
// elements, preserving their order.
func NewOrderedSet[T comparable](data ...T) *OrderedSet[T] {
	set := &OrderedSet[T]{
		index: make(map[T]struct{}, len(data)),
	}
	set.Add(data...)
	return set
}

// Add inserts one or more elements into the set. Elements already present are
// ignored, keeping their original position.
func (s *OrderedSet[T]) Add(values ...T) {
	for _, val := range values {
		if _, ok := s.index[val]; ok {
			continue
		}
		s.index[val] = struct{}{}
		s.items = append(s.items, val)
	}
}

// Contains reports whether the set holds the given element.
func (s *OrderedSet[T]) Contains(value T) bool {
	_, ok := s.index[value]
	return ok
}

// Len returns the number of elements in the set.
func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// ToSlice returns a copy of all elements in insertion order.
func (s *OrderedSet[T]) ToSlice() []T {
	return slices.Clone(s.items)
}
