package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mhollis/fable-engine/pkg/actor"
)

// Snapshot is the serializable form of a session, used for persistence
// and API responses. The live Session is rebuilt from it with
// NewFromSnapshot; the split keeps runtime state out of the wire format.
type Snapshot struct {
	ID         uuid.UUID       `json:"id"`
	Characters []CharacterSpec `json:"characters,omitempty"`
}

// CharacterSpec is the serializable form of one roster member and the
// contents of the containers its class composes.
type CharacterSpec struct {
	Name    string       `json:"name"`
	Class   Class        `json:"class"`
	HP      int          `json:"hp"`
	Weapons []WeaponSpec `json:"weapons,omitempty"`
	Potions []PotionSpec `json:"potions,omitempty"`
	Spells  []SpellSpec  `json:"spells,omitempty"`
}

// WeaponSpec is the serializable form of a weapon.
type WeaponSpec struct {
	Name   string `json:"name"`
	Damage int    `json:"damage"`
}

// PotionSpec is the serializable form of a potion.
type PotionSpec struct {
	Name      string `json:"name"`
	HealValue int    `json:"heal_value"`
}

// SpellSpec is the serializable form of a spell. Targets holds allowed
// target names; the characters themselves live on the roster.
type SpellSpec struct {
	Name      string   `json:"name"`
	School    string   `json:"school"`
	Magnitude int      `json:"magnitude"`
	Targets   []string `json:"targets,omitempty"`
}

// Snapshot captures the session's current state. Containers only ever
// hold ready items (use-once items are removed the moment they are
// spent), so no spent state needs to be carried.
func (s *Session) Snapshot() *Snapshot {
	snap := &Snapshot{ID: s.ID}
	for _, m := range s.Members() {
		spec := CharacterSpec{
			Name:  m.Name(),
			Class: s.classes[m.Name()],
			HP:    m.HP(),
		}
		if bearer, ok := m.(actor.WeaponBearer); ok {
			for _, w := range bearer.Arsenal().Items() {
				spec.Weapons = append(spec.Weapons, WeaponSpec{Name: w.Name(), Damage: w.Damage()})
			}
		}
		if bearer, ok := m.(actor.PotionBearer); ok {
			for _, p := range bearer.MedicalBag().Items() {
				spec.Potions = append(spec.Potions, PotionSpec{Name: p.Name(), HealValue: p.HealValue()})
			}
		}
		if bearer, ok := m.(actor.SpellBearer); ok {
			for _, sp := range bearer.SpellBook().Items() {
				spec.Spells = append(spec.Spells, SpellSpec{
					Name:      sp.Name(),
					School:    string(sp.School()),
					Magnitude: sp.Magnitude(),
					Targets:   sp.TargetNames(),
				})
			}
		}
		snap.Characters = append(snap.Characters, spec)
	}
	return snap
}

// NewFromSnapshot rebuilds a live session. Characters are restored first
// so that spell target names resolve regardless of creation order.
func NewFromSnapshot(snap *Snapshot) (*Session, error) {
	if snap == nil {
		return nil, fmt.Errorf("snapshot cannot be nil")
	}

	s := New()
	s.ID = snap.ID

	for _, spec := range snap.Characters {
		if _, err := s.CreateCharacter(spec.Class, spec.Name, spec.HP); err != nil {
			return nil, fmt.Errorf("restore character %q: %w", spec.Name, err)
		}
	}

	for _, spec := range snap.Characters {
		for _, w := range spec.Weapons {
			if err := s.CreateWeapon(spec.Name, w.Name, w.Damage); err != nil {
				return nil, fmt.Errorf("restore weapon %q: %w", w.Name, err)
			}
		}
		for _, p := range spec.Potions {
			if err := s.CreatePotion(spec.Name, p.Name, p.HealValue); err != nil {
				return nil, fmt.Errorf("restore potion %q: %w", p.Name, err)
			}
		}
		for _, sp := range spec.Spells {
			if err := s.CreateSpell(spec.Name, sp.Name, parseSchool(sp.School), sp.Magnitude, sp.Targets); err != nil {
				return nil, fmt.Errorf("restore spell %q: %w", sp.Name, err)
			}
		}
	}
	return s, nil
}
