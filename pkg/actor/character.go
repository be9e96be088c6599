package actor

import "fmt"

// Character is the mutable health/name record that every item effect
// ultimately acts on. The name is fixed at creation; health only ever
// changes through TakeDamage and Heal.
//
// Health is deliberately unclamped: damage may push it below zero and
// healing has no ceiling. Defeat is a condition callers check with
// IsDefeated, not a state enforced here.
type Character struct {
	name string
	hp   int
}

// NewCharacter creates a character with the given name and starting health.
func NewCharacter(name string, hp int) *Character {
	return &Character{
		name: name,
		hp:   hp,
	}
}

// Name returns the character's immutable identity.
func (c *Character) Name() string {
	return c.name
}

// HP returns the current health points.
func (c *Character) HP() int {
	return c.hp
}

// TakeDamage subtracts n from the character's health.
func (c *Character) TakeDamage(n int) {
	c.hp -= n
}

// Heal adds n to the character's health.
func (c *Character) Heal(n int) {
	c.hp += n
}

// IsDefeated returns true if the character's HP is 0 or less.
func (c *Character) IsDefeated() bool {
	return c.hp <= 0
}

// Base returns the character itself. Archetypes embed *Character, so this
// gives collaborators that hold an Adventurer a handle on the shared base
// without knowing the concrete composition.
func (c *Character) Base() *Character {
	return c
}

// String renders the diagnostic form used in transcripts.
func (c *Character) String() string {
	return fmt.Sprintf("%s:%d", c.name, c.hp)
}
