package item

import "fmt"

// Potion restores a fixed amount of health to its target. Potions are
// consumed by use: one successful drink and the potion is spent.
type Potion struct {
	properties
	healValue int
}

var _ Item = (*Potion)(nil)

// NewPotion creates a single-use potion with the given heal value.
func NewPotion(name string, healValue int) *Potion {
	return &Potion{
		properties: properties{name: name, usableOnce: true},
		healValue:  healValue,
	}
}

// HealValue returns the amount of health the potion restores.
func (p *Potion) HealValue() int {
	return p.healValue
}

// Use applies the potion's heal to the target.
func (p *Potion) Use(user, target Target) error {
	if err := p.ready(); err != nil {
		return err
	}
	target.Heal(p.healValue)
	p.expend()
	return nil
}

// String renders the transcript form "name:healValue".
func (p *Potion) String() string {
	return fmt.Sprintf("%s:%d", p.name, p.healValue)
}
