package item

import "fmt"

// Weapon deals a fixed amount of damage to its target. Weapons are
// reusable; they never become spent.
type Weapon struct {
	properties
	damage int
}

var _ Item = (*Weapon)(nil)

// NewWeapon creates a weapon with the given display name and damage.
func NewWeapon(name string, damage int) *Weapon {
	return &Weapon{
		properties: properties{name: name},
		damage:     damage,
	}
}

// Damage returns the weapon's damage value.
func (w *Weapon) Damage() int {
	return w.damage
}

// Use applies the weapon's damage to the target.
func (w *Weapon) Use(user, target Target) error {
	if err := w.ready(); err != nil {
		return err
	}
	target.TakeDamage(w.damage)
	w.expend()
	return nil
}

// String renders the transcript form "name:damage".
func (w *Weapon) String() string {
	return fmt.Sprintf("%s:%d", w.name, w.damage)
}
