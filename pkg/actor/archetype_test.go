package actor

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mhollis/fable-engine/pkg/inventory"
	"github.com/mhollis/fable-engine/pkg/item"
)

func TestFighter_Attack(t *testing.T) {
	f := NewFighter("Aria", 100)
	dummy := NewCharacter("Dummy", 20)

	if err := f.Arsenal().Add(item.NewWeapon("Sword", 10)); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := f.Attack(dummy, "Sword"); err != nil {
		t.Fatalf("Attack returned error: %v", err)
	}

	if dummy.HP() != 10 {
		t.Errorf("Expected dummy HP 10, got %d", dummy.HP())
	}
	if f.HP() != 100 {
		t.Errorf("Expected fighter HP unchanged at 100, got %d", f.HP())
	}
	if !f.Arsenal().Contains("Sword") {
		t.Error("Expected sword to stay in the arsenal after attacking")
	}
}

func TestFighter_AttackMissingWeapon(t *testing.T) {
	f := NewFighter("Aria", 100)
	dummy := NewCharacter("Dummy", 20)

	err := f.Attack(dummy, "Ghostblade")
	if !errors.Is(err, inventory.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if dummy.HP() != 20 {
		t.Errorf("Expected dummy HP unchanged, got %d", dummy.HP())
	}
}

func TestFighter_DrinkRemovesPotion(t *testing.T) {
	f := NewFighter("Aria", 100)
	f.TakeDamage(40)

	if err := f.MedicalBag().Add(item.NewPotion("Elixir", 25)); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := f.Drink(f.Base(), "Elixir"); err != nil {
		t.Fatalf("Drink returned error: %v", err)
	}

	if f.HP() != 85 {
		t.Errorf("Expected HP 85, got %d", f.HP())
	}
	if f.MedicalBag().Contains("Elixir") {
		t.Error("Expected drunk potion to be removed from the bag")
	}

	err := f.Drink(f.Base(), "Elixir")
	if !errors.Is(err, inventory.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound on second drink, got %v", err)
	}
}

func TestWizard_CastRemovesSpell(t *testing.T) {
	w := NewWizard("Merlin", 60)
	foe := NewCharacter("Gob", 30)

	if err := w.SpellBook().Add(item.NewSpell("Bolt", item.SchoolOffensive, 12, foe)); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := w.Cast(foe, "Bolt"); err != nil {
		t.Fatalf("Cast returned error: %v", err)
	}

	if foe.HP() != 18 {
		t.Errorf("Expected foe HP 18, got %d", foe.HP())
	}
	if w.SpellBook().Contains("Bolt") {
		t.Error("Expected cast spell to be removed from the book")
	}
}

func TestWizard_CastDisallowedTargetKeepsSpell(t *testing.T) {
	w := NewWizard("Merlin", 60)
	ally := NewCharacter("Aria", 50)
	foe := NewCharacter("Gob", 30)

	if err := w.SpellBook().Add(item.NewSpell("Mend", item.SchoolRestorative, 10, ally)); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	err := w.Cast(foe, "Mend")
	if !errors.Is(err, item.ErrPreconditionNotMet) {
		t.Fatalf("Expected ErrPreconditionNotMet, got %v", err)
	}
	if foe.HP() != 30 || ally.HP() != 50 {
		t.Error("Expected no health change after failed cast")
	}
	if !w.SpellBook().Contains("Mend") {
		t.Error("Expected failed cast to leave the spell in the book")
	}

	if err := w.Cast(ally, "Mend"); err != nil {
		t.Fatalf("Cast returned error: %v", err)
	}
	if ally.HP() != 60 {
		t.Errorf("Expected ally HP 60, got %d", ally.HP())
	}
}

func TestArcher_ComposesAllRoles(t *testing.T) {
	a := NewArcher("Robin", 80)
	foe := NewCharacter("Gob", 30)

	if err := a.Arsenal().Add(item.NewWeapon("Bow", 8)); err != nil {
		t.Fatalf("Add weapon returned error: %v", err)
	}
	if err := a.MedicalBag().Add(item.NewPotion("Tonic", 5)); err != nil {
		t.Fatalf("Add potion returned error: %v", err)
	}
	if err := a.SpellBook().Add(item.NewSpell("Snare", item.SchoolOffensive, 3, foe)); err != nil {
		t.Fatalf("Add spell returned error: %v", err)
	}

	if err := a.Attack(foe, "Bow"); err != nil {
		t.Fatalf("Attack returned error: %v", err)
	}
	if err := a.Cast(foe, "Snare"); err != nil {
		t.Fatalf("Cast returned error: %v", err)
	}
	if err := a.Drink(a.Base(), "Tonic"); err != nil {
		t.Fatalf("Drink returned error: %v", err)
	}

	if foe.HP() != 19 {
		t.Errorf("Expected foe HP 19, got %d", foe.HP())
	}
	if a.HP() != 85 {
		t.Errorf("Expected archer HP 85, got %d", a.HP())
	}
}

func TestArchetype_CapacityLimits(t *testing.T) {
	f := NewFighter("Aria", 100)
	for i := 0; i < FighterWeaponCapacity; i++ {
		if err := f.Arsenal().Add(item.NewWeapon(fmt.Sprintf("Sword%d", i), 1)); err != nil {
			t.Fatalf("Add %d returned error: %v", i, err)
		}
	}
	err := f.Arsenal().Add(item.NewWeapon("OneTooMany", 1))
	if !errors.Is(err, inventory.ErrCapacityExceeded) {
		t.Fatalf("Expected ErrCapacityExceeded, got %v", err)
	}

	w := NewWizard("Merlin", 60)
	for i := 0; i < WizardSpellCapacity; i++ {
		if err := w.SpellBook().Add(item.NewSpell(fmt.Sprintf("Spell%d", i), item.SchoolOffensive, 1)); err != nil {
			t.Fatalf("Add %d returned error: %v", i, err)
		}
	}
	err = w.SpellBook().Add(item.NewSpell("OneTooMany", item.SchoolOffensive, 1))
	if !errors.Is(err, inventory.ErrCapacityExceeded) {
		t.Fatalf("Expected ErrCapacityExceeded, got %v", err)
	}
}

func TestRoles_ShareOneCharacterBase(t *testing.T) {
	f := NewFighter("Aria", 100)

	// Damage through the embedded character is visible to every role:
	// drinking a potion heals the same record the attack verb reads.
	f.TakeDamage(50)
	if err := f.MedicalBag().Add(item.NewPotion("Elixir", 20)); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := f.Drink(f.Base(), "Elixir"); err != nil {
		t.Fatalf("Drink returned error: %v", err)
	}
	if f.HP() != 70 {
		t.Errorf("Expected HP 70, got %d", f.HP())
	}
	if f.String() != "Aria:70" {
		t.Errorf("String() = %q, want Aria:70", f.String())
	}
}
