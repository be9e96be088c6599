package actor

import (
	"github.com/mhollis/fable-engine/pkg/inventory"
	"github.com/mhollis/fable-engine/pkg/item"
)

// The inventory roles pair a character with one bounded container of a
// single item kind and expose the verb that uses an item from it by name.
// Roles hold a non-owning reference to the character they act for; the
// health/name state lives once on the Character no matter how many roles
// an archetype composes.
//
// Each verb looks the item up, applies it to the target, and removes it
// from the container when a use-once item was successfully spent. The
// effect always runs before the removal.

// WeaponBearer is the capability of attacking with a named weapon.
type WeaponBearer interface {
	Attack(target *Character, weapon string) error
	ShowWeapons() []string
	Arsenal() *inventory.Bounded[*item.Weapon]
}

// PotionBearer is the capability of drinking a named potion.
type PotionBearer interface {
	Drink(target *Character, potion string) error
	ShowPotions() []string
	MedicalBag() *inventory.Bounded[*item.Potion]
}

// SpellBearer is the capability of casting a named spell.
type SpellBearer interface {
	Cast(target *Character, spell string) error
	ShowSpells() []string
	SpellBook() *inventory.Bounded[*item.Spell]
}

// WeaponUser composes a character with a bounded arsenal.
type WeaponUser struct {
	self    *Character
	arsenal *inventory.Bounded[*item.Weapon]
}

// NewWeaponUser creates the weapon role for a character with the given
// arsenal capacity.
func NewWeaponUser(self *Character, capacity int) WeaponUser {
	return WeaponUser{
		self:    self,
		arsenal: inventory.NewBounded[*item.Weapon](capacity),
	}
}

// Arsenal returns the role's weapon container.
func (u *WeaponUser) Arsenal() *inventory.Bounded[*item.Weapon] {
	return u.arsenal
}

// Attack looks the weapon up by name and applies it to the target.
func (u *WeaponUser) Attack(target *Character, weapon string) error {
	w, err := u.arsenal.Get(weapon)
	if err != nil {
		return err
	}
	if err := w.Use(u.self, target); err != nil {
		return err
	}
	if w.UsableOnce() {
		return u.arsenal.Remove(w)
	}
	return nil
}

// ShowWeapons lists the arsenal's contents for display.
func (u *WeaponUser) ShowWeapons() []string {
	return u.arsenal.Show()
}

// PotionUser composes a character with a bounded medical bag.
type PotionUser struct {
	self       *Character
	medicalBag *inventory.Bounded[*item.Potion]
}

// NewPotionUser creates the potion role for a character with the given
// bag capacity.
func NewPotionUser(self *Character, capacity int) PotionUser {
	return PotionUser{
		self:       self,
		medicalBag: inventory.NewBounded[*item.Potion](capacity),
	}
}

// MedicalBag returns the role's potion container.
func (u *PotionUser) MedicalBag() *inventory.Bounded[*item.Potion] {
	return u.medicalBag
}

// Drink looks the potion up by name and applies it to the target. The
// potion is removed from the bag once drunk.
func (u *PotionUser) Drink(target *Character, potion string) error {
	p, err := u.medicalBag.Get(potion)
	if err != nil {
		return err
	}
	if err := p.Use(u.self, target); err != nil {
		return err
	}
	if p.UsableOnce() {
		return u.medicalBag.Remove(p)
	}
	return nil
}

// ShowPotions lists the bag's contents for display.
func (u *PotionUser) ShowPotions() []string {
	return u.medicalBag.Show()
}

// SpellUser composes a character with a bounded spell book.
type SpellUser struct {
	self      *Character
	spellBook *inventory.Bounded[*item.Spell]
}

// NewSpellUser creates the spell role for a character with the given
// book capacity.
func NewSpellUser(self *Character, capacity int) SpellUser {
	return SpellUser{
		self:      self,
		spellBook: inventory.NewBounded[*item.Spell](capacity),
	}
}

// SpellBook returns the role's spell container.
func (u *SpellUser) SpellBook() *inventory.Bounded[*item.Spell] {
	return u.spellBook
}

// Cast looks the spell up by name and applies it to the target. A spell
// that fails its use condition stays in the book; a cast spell is removed.
func (u *SpellUser) Cast(target *Character, spell string) error {
	s, err := u.spellBook.Get(spell)
	if err != nil {
		return err
	}
	if err := s.Use(u.self, target); err != nil {
		return err
	}
	if s.UsableOnce() {
		return u.spellBook.Remove(s)
	}
	return nil
}

// ShowSpells lists the book's contents for display.
func (u *SpellUser) ShowSpells() []string {
	return u.spellBook.Show()
}
