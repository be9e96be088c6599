// Package session holds the live state of one narrative run: a roster of
// named characters and the verbs a command driver invokes against them.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mhollis/fable-engine/pkg/actor"
	"github.com/mhollis/fable-engine/pkg/item"
)

var (
	// ErrUnknownCharacter is returned when a roster lookup misses.
	ErrUnknownCharacter = errors.New("unknown character")

	// ErrInvalidAction is returned for verbs a character's archetype does
	// not support, duplicate character names, and malformed commands.
	ErrInvalidAction = errors.New("invalid action")
)

// Class names the fixed archetype compositions.
type Class string

const (
	ClassFighter Class = "fighter"
	ClassArcher  Class = "archer"
	ClassWizard  Class = "wizard"
)

// ParseClass resolves a class name, case-insensitively.
func ParseClass(s string) (Class, error) {
	switch Class(strings.ToLower(s)) {
	case ClassFighter:
		return ClassFighter, nil
	case ClassArcher:
		return ClassArcher, nil
	case ClassWizard:
		return ClassWizard, nil
	default:
		return "", fmt.Errorf("class %q: %w", s, ErrInvalidAction)
	}
}

// Kind names an item kind for creation and show commands.
type Kind string

const (
	KindWeapon Kind = "weapon"
	KindPotion Kind = "potion"
	KindSpell  Kind = "spell"
)

// Session is the roster of characters for one run. All operations are
// sequential; a failed operation never corrupts the roster, and no failure
// is fatal to the session.
type Session struct {
	ID      uuid.UUID
	roster  map[string]actor.Adventurer
	classes map[string]Class
	order   []string // creation order, for display and snapshots
}

// New creates an empty session with a fresh identity.
func New() *Session {
	return &Session{
		ID:      uuid.New(),
		roster:  make(map[string]actor.Adventurer),
		classes: make(map[string]Class),
	}
}

// CreateCharacter adds a character of the given class to the roster.
// Duplicate names are rejected rather than silently replaced.
func (s *Session) CreateCharacter(class Class, name string, hp int) (actor.Adventurer, error) {
	if _, ok := s.roster[name]; ok {
		return nil, fmt.Errorf("character %q already exists: %w", name, ErrInvalidAction)
	}

	var a actor.Adventurer
	switch class {
	case ClassFighter:
		a = actor.NewFighter(name, hp)
	case ClassArcher:
		a = actor.NewArcher(name, hp)
	case ClassWizard:
		a = actor.NewWizard(name, hp)
	default:
		return nil, fmt.Errorf("class %q: %w", class, ErrInvalidAction)
	}

	s.roster[name] = a
	s.classes[name] = class
	s.order = append(s.order, name)
	return a, nil
}

// Character looks a roster member up by name.
func (s *Session) Character(name string) (actor.Adventurer, error) {
	a, ok := s.roster[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownCharacter)
	}
	return a, nil
}

// Class returns the class a roster member was created with.
func (s *Session) Class(name string) (Class, error) {
	c, ok := s.classes[name]
	if !ok {
		return "", fmt.Errorf("%q: %w", name, ErrUnknownCharacter)
	}
	return c, nil
}

// Members returns the roster in creation order.
func (s *Session) Members() []actor.Adventurer {
	members := make([]actor.Adventurer, 0, len(s.order))
	for _, name := range s.order {
		members = append(members, s.roster[name])
	}
	return members
}

// CreateWeapon forges a weapon into the owner's arsenal.
func (s *Session) CreateWeapon(owner, name string, damage int) error {
	bearer, err := s.weaponBearer(owner)
	if err != nil {
		return err
	}
	return bearer.Arsenal().Add(item.NewWeapon(name, damage))
}

// CreatePotion brews a potion into the owner's medical bag.
func (s *Session) CreatePotion(owner, name string, healValue int) error {
	bearer, err := s.potionBearer(owner)
	if err != nil {
		return err
	}
	return bearer.MedicalBag().Add(item.NewPotion(name, healValue))
}

// CreateSpell scribes a spell into the owner's spell book. Every allowed
// target must already be on the roster; the spell keeps only their names.
func (s *Session) CreateSpell(owner, name string, school item.School, magnitude int, targetNames []string) error {
	bearer, err := s.spellBearer(owner)
	if err != nil {
		return err
	}
	targets := make([]item.Target, 0, len(targetNames))
	for _, tn := range targetNames {
		t, err := s.Character(tn)
		if err != nil {
			return err
		}
		targets = append(targets, t.Base())
	}
	return bearer.SpellBook().Add(item.NewSpell(name, school, magnitude, targets...))
}

// Attack has the named character strike the target with a named weapon.
func (s *Session) Attack(actorName, targetName, weapon string) error {
	bearer, err := s.weaponBearer(actorName)
	if err != nil {
		return err
	}
	target, err := s.Character(targetName)
	if err != nil {
		return err
	}
	return bearer.Attack(target.Base(), weapon)
}

// Drink has the named character apply a named potion to the target.
func (s *Session) Drink(actorName, targetName, potion string) error {
	bearer, err := s.potionBearer(actorName)
	if err != nil {
		return err
	}
	target, err := s.Character(targetName)
	if err != nil {
		return err
	}
	return bearer.Drink(target.Base(), potion)
}

// Cast has the named character cast a named spell on the target.
func (s *Session) Cast(actorName, targetName, spell string) error {
	bearer, err := s.spellBearer(actorName)
	if err != nil {
		return err
	}
	target, err := s.Character(targetName)
	if err != nil {
		return err
	}
	return bearer.Cast(target.Base(), spell)
}

// Show lists a character's items of the given kind, or the whole roster
// when kind is "characters". The listing is a pure read.
func (s *Session) Show(kind string, name string) ([]string, error) {
	if kind == "characters" {
		lines := make([]string, 0, len(s.order))
		for _, m := range s.Members() {
			lines = append(lines, m.String())
		}
		return lines, nil
	}

	switch Kind(strings.TrimSuffix(strings.ToLower(kind), "s")) {
	case KindWeapon:
		bearer, err := s.weaponBearer(name)
		if err != nil {
			return nil, err
		}
		return bearer.ShowWeapons(), nil
	case KindPotion:
		bearer, err := s.potionBearer(name)
		if err != nil {
			return nil, err
		}
		return bearer.ShowPotions(), nil
	case KindSpell:
		bearer, err := s.spellBearer(name)
		if err != nil {
			return nil, err
		}
		return bearer.ShowSpells(), nil
	default:
		return nil, fmt.Errorf("show %q: %w", kind, ErrInvalidAction)
	}
}

// NarratorName is the reserved speaker allowed in dialogue without being
// on the roster.
const NarratorName = "Narrator"

// Dialogue returns the transcript line for a character speaking.
func (s *Session) Dialogue(speaker string, words []string) (string, error) {
	if speaker != NarratorName {
		if _, err := s.Character(speaker); err != nil {
			return "", err
		}
	}
	return speaker + ": " + strings.Join(words, " "), nil
}

func (s *Session) weaponBearer(name string) (actor.WeaponBearer, error) {
	a, err := s.Character(name)
	if err != nil {
		return nil, err
	}
	bearer, ok := a.(actor.WeaponBearer)
	if !ok {
		return nil, fmt.Errorf("%s cannot wield weapons: %w", name, ErrInvalidAction)
	}
	return bearer, nil
}

func (s *Session) potionBearer(name string) (actor.PotionBearer, error) {
	a, err := s.Character(name)
	if err != nil {
		return nil, err
	}
	bearer, ok := a.(actor.PotionBearer)
	if !ok {
		return nil, fmt.Errorf("%s cannot carry potions: %w", name, ErrInvalidAction)
	}
	return bearer, nil
}

func (s *Session) spellBearer(name string) (actor.SpellBearer, error) {
	a, err := s.Character(name)
	if err != nil {
		return nil, err
	}
	bearer, ok := a.(actor.SpellBearer)
	if !ok {
		return nil, fmt.Errorf("%s cannot cast spells: %w", name, ErrInvalidAction)
	}
	return bearer, nil
}
