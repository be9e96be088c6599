// Package inventory provides the name-keyed generic containers that hold
// a character's items.
package inventory

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNotFound is returned by lookups and removals when no entry with
	// the requested name exists.
	ErrNotFound = errors.New("item not found")

	// ErrCapacityExceeded is returned by Bounded.Add when the container
	// is already at its maximum capacity.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// Keyed is what a container needs from its elements: a stable name to key
// by and a transcript rendering. Every item kind satisfies it.
type Keyed interface {
	fmt.Stringer
	Name() string
}

// Container is a mapping from item name to item. Adding an item whose name
// is already present overwrites the existing entry; callers that want
// collision rejection must check Contains first. Iteration order is name
// order.
type Container[T Keyed] struct {
	elements map[string]T
}

// NewContainer creates an empty container.
func NewContainer[T Keyed]() *Container[T] {
	return &Container[T]{
		elements: make(map[string]T),
	}
}

// Add inserts the item keyed by its name, overwriting any existing entry.
func (c *Container[T]) Add(item T) {
	if c.elements == nil {
		c.elements = make(map[string]T)
	}
	c.elements[item.Name()] = item
}

// Remove removes the entry keyed by the item's name.
func (c *Container[T]) Remove(item T) error {
	return c.RemoveName(item.Name())
}

// RemoveName removes the entry with the given name. It fails with
// ErrNotFound when the name is absent, leaving the container unchanged.
func (c *Container[T]) RemoveName(name string) error {
	if _, ok := c.elements[name]; !ok {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	delete(c.elements, name)
	return nil
}

// Contains reports whether an entry with the given name exists.
func (c *Container[T]) Contains(name string) bool {
	_, ok := c.elements[name]
	return ok
}

// Get returns the item stored under name, or ErrNotFound when absent.
func (c *Container[T]) Get(name string) (T, error) {
	it, ok := c.elements[name]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return it, nil
}

// Len returns the number of stored items.
func (c *Container[T]) Len() int {
	return len(c.elements)
}

// Items returns the stored items in name order.
func (c *Container[T]) Items() []T {
	items := make([]T, 0, len(c.elements))
	for _, name := range c.names() {
		items = append(items, c.elements[name])
	}
	return items
}

func (c *Container[T]) names() []string {
	names := make([]string, 0, len(c.elements))
	for name := range c.elements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
