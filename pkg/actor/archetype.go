package actor

// Default container capacities per archetype.
const (
	FighterWeaponCapacity = 3
	FighterPotionCapacity = 5

	ArcherWeaponCapacity = 2
	ArcherPotionCapacity = 3
	ArcherSpellCapacity  = 2

	WizardPotionCapacity = 10
	WizardSpellCapacity  = 10
)

// Adventurer is any playable character: the shared Character surface plus
// access to the base record for item effects. Concrete archetypes also
// satisfy the bearer interfaces for the roles they compose.
type Adventurer interface {
	Name() string
	HP() int
	TakeDamage(n int)
	Heal(n int)
	IsDefeated() bool
	Base() *Character
	String() string
}

// Fighter wields weapons and carries potions.
type Fighter struct {
	*Character
	WeaponUser
	PotionUser
}

var (
	_ Adventurer   = (*Fighter)(nil)
	_ WeaponBearer = (*Fighter)(nil)
	_ PotionBearer = (*Fighter)(nil)
)

// NewFighter creates a fighter. Both roles share the one character base.
func NewFighter(name string, hp int) *Fighter {
	c := NewCharacter(name, hp)
	return &Fighter{
		Character:  c,
		WeaponUser: NewWeaponUser(c, FighterWeaponCapacity),
		PotionUser: NewPotionUser(c, FighterPotionCapacity),
	}
}

// Archer wields weapons, carries potions and casts spells.
type Archer struct {
	*Character
	WeaponUser
	PotionUser
	SpellUser
}

var (
	_ Adventurer   = (*Archer)(nil)
	_ WeaponBearer = (*Archer)(nil)
	_ PotionBearer = (*Archer)(nil)
	_ SpellBearer  = (*Archer)(nil)
)

// NewArcher creates an archer. All three roles share the one character base.
func NewArcher(name string, hp int) *Archer {
	c := NewCharacter(name, hp)
	return &Archer{
		Character:  c,
		WeaponUser: NewWeaponUser(c, ArcherWeaponCapacity),
		PotionUser: NewPotionUser(c, ArcherPotionCapacity),
		SpellUser:  NewSpellUser(c, ArcherSpellCapacity),
	}
}

// Wizard carries potions and casts spells.
type Wizard struct {
	*Character
	PotionUser
	SpellUser
}

var (
	_ Adventurer   = (*Wizard)(nil)
	_ PotionBearer = (*Wizard)(nil)
	_ SpellBearer  = (*Wizard)(nil)
)

// NewWizard creates a wizard. Both roles share the one character base.
func NewWizard(name string, hp int) *Wizard {
	c := NewCharacter(name, hp)
	return &Wizard{
		Character:  c,
		PotionUser: NewPotionUser(c, WizardPotionCapacity),
		SpellUser:  NewSpellUser(c, WizardSpellCapacity),
	}
}
