package inventory

import "fmt"

// Bounded is a Container with a fixed maximum capacity. The capacity is
// set at construction and never changes; an add that would exceed it is
// rejected outright, not truncated.
type Bounded[T Keyed] struct {
	Container[T]
	maxCapacity int
}

// NewBounded creates an empty bounded container with the given capacity.
func NewBounded[T Keyed](capacity int) *Bounded[T] {
	return &Bounded[T]{
		Container:   Container[T]{elements: make(map[string]T)},
		maxCapacity: capacity,
	}
}

// Cap returns the maximum capacity.
func (b *Bounded[T]) Cap() int {
	return b.maxCapacity
}

// Add inserts the item, failing with ErrCapacityExceeded when the
// container is full. The contents are unchanged on failure. Overwriting
// an existing name does not count against capacity.
func (b *Bounded[T]) Add(item T) error {
	if !b.Contains(item.Name()) && b.Len() >= b.maxCapacity {
		return fmt.Errorf("at %d items: %w", b.maxCapacity, ErrCapacityExceeded)
	}
	b.Container.Add(item)
	return nil
}

// Show returns each element's transcript rendering in name order. It is a
// pure read: calling it never changes the container, and successive calls
// restart from the beginning.
func (b *Bounded[T]) Show() []string {
	lines := make([]string, 0, b.Len())
	for _, it := range b.Items() {
		lines = append(lines, it.String())
	}
	return lines
}
