// Package item defines the polymorphic "use an item on a target" protocol
// shared by weapons, potions and spells.
package item

import (
	"errors"
	"fmt"
)

var (
	// ErrPreconditionNotMet is returned when an item's use condition fails.
	// Neither the user nor the target is mutated in that case.
	ErrPreconditionNotMet = errors.New("use condition not met")

	// ErrItemSpent is returned when a use-once item is used again after a
	// successful use. Spent is a terminal state.
	ErrItemSpent = errors.New("item is spent")
)

// Target is the surface an item effect needs from whatever it acts on.
// *actor.Character satisfies it.
type Target interface {
	Name() string
	TakeDamage(n int)
	Heal(n int)
}

// Item is the contract collaborators use. Use is the only entry point:
// it checks the kind-specific precondition, applies the effect, and for
// use-once items transitions the item to its spent state. The owning
// container is responsible for removing a spent item afterward.
type Item interface {
	fmt.Stringer

	Name() string
	UsableOnce() bool
	Spent() bool
	Use(user, target Target) error
}

// properties holds the state common to all item kinds.
type properties struct {
	name       string
	usableOnce bool
	spent      bool
}

func (p *properties) Name() string {
	return p.name
}

func (p *properties) UsableOnce() bool {
	return p.usableOnce
}

func (p *properties) Spent() bool {
	return p.spent
}

// ready reports whether the item may still be used.
func (p *properties) ready() error {
	if p.spent {
		return fmt.Errorf("%s: %w", p.name, ErrItemSpent)
	}
	return nil
}

// expend runs after a successful use. Use-once items become spent.
func (p *properties) expend() {
	if p.usableOnce {
		p.spent = true
	}
}
