package item

import (
	"fmt"
	"sort"
)

// School determines whether a spell damages or heals its target.
type School string

const (
	SchoolOffensive   School = "offensive"
	SchoolRestorative School = "restorative"
)

// Spell applies its effect only to targets it was attuned to at creation.
// The allowed-target set holds character names, never character references:
// the spell does not own or keep alive the characters it can touch.
// Spells are single-use.
type Spell struct {
	properties
	school    School
	magnitude int
	allowed   map[string]struct{}
}

var _ Item = (*Spell)(nil)

// NewSpell creates a single-use spell attuned to the given targets.
// The allowed-target set is seeded here, exactly once.
func NewSpell(name string, school School, magnitude int, targets ...Target) *Spell {
	s := &Spell{
		properties: properties{name: name, usableOnce: true},
		school:     school,
		magnitude:  magnitude,
		allowed:    make(map[string]struct{}, len(targets)),
	}
	for _, t := range targets {
		s.allowed[t.Name()] = struct{}{}
	}
	return s
}

// School returns the spell's school.
func (s *Spell) School() School {
	return s.school
}

// Magnitude returns the spell's effect magnitude.
func (s *Spell) Magnitude() int {
	return s.magnitude
}

// Allows reports whether the named character is an allowed target.
func (s *Spell) Allows(name string) bool {
	_, ok := s.allowed[name]
	return ok
}

// NumAllowedTargets returns the size of the allowed-target set.
func (s *Spell) NumAllowedTargets() int {
	return len(s.allowed)
}

// TargetNames returns the allowed-target names in sorted order.
func (s *Spell) TargetNames() []string {
	names := make([]string, 0, len(s.allowed))
	for name := range s.allowed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Use applies the spell's effect to the target. Casting on a character
// outside the allowed-target set fails the use condition and leaves both
// characters untouched.
func (s *Spell) Use(user, target Target) error {
	if err := s.ready(); err != nil {
		return err
	}
	if !s.Allows(target.Name()) {
		return fmt.Errorf("%s may not target %s: %w", s.name, target.Name(), ErrPreconditionNotMet)
	}
	switch s.school {
	case SchoolRestorative:
		target.Heal(s.magnitude)
	default:
		target.TakeDamage(s.magnitude)
	}
	s.expend()
	return nil
}

// String renders the transcript form "name:numAllowedTargets".
func (s *Spell) String() string {
	return fmt.Sprintf("%s:%d", s.name, len(s.allowed))
}
