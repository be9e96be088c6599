package item

import (
	"errors"
	"testing"
)

// dummy is a plain target for item tests.
type dummy struct {
	name string
	hp   int
}

func (d *dummy) Name() string     { return d.name }
func (d *dummy) TakeDamage(n int) { d.hp -= n }
func (d *dummy) Heal(n int)       { d.hp += n }

func TestWeapon_Use(t *testing.T) {
	w := NewWeapon("Sword", 10)
	user := &dummy{name: "Aria", hp: 100}
	target := &dummy{name: "Dummy", hp: 20}

	if err := w.Use(user, target); err != nil {
		t.Fatalf("Use returned error: %v", err)
	}
	if target.hp != 10 {
		t.Errorf("Expected target HP 10, got %d", target.hp)
	}
	if user.hp != 100 {
		t.Errorf("Expected user HP unchanged at 100, got %d", user.hp)
	}
}

func TestWeapon_Reusable(t *testing.T) {
	w := NewWeapon("Sword", 10)
	target := &dummy{name: "Dummy", hp: 30}

	for i := 0; i < 3; i++ {
		if err := w.Use(nil, target); err != nil {
			t.Fatalf("Use %d returned error: %v", i, err)
		}
	}
	if w.Spent() {
		t.Error("Expected weapon to never become spent")
	}
	if target.hp != 0 {
		t.Errorf("Expected target HP 0, got %d", target.hp)
	}
}

func TestPotion_UseOnce(t *testing.T) {
	p := NewPotion("Elixir", 15)
	target := &dummy{name: "Aria", hp: 50}

	if err := p.Use(target, target); err != nil {
		t.Fatalf("Use returned error: %v", err)
	}
	if target.hp != 65 {
		t.Errorf("Expected HP 65, got %d", target.hp)
	}
	if !p.Spent() {
		t.Error("Expected potion to be spent after use")
	}

	err := p.Use(target, target)
	if !errors.Is(err, ErrItemSpent) {
		t.Fatalf("Expected ErrItemSpent on second use, got %v", err)
	}
	if target.hp != 65 {
		t.Errorf("Expected HP unchanged after failed use, got %d", target.hp)
	}
}

func TestSpell_Schools(t *testing.T) {
	ally := &dummy{name: "Aria", hp: 40}
	foe := &dummy{name: "Gob", hp: 40}

	tests := []struct {
		name   string
		school School
		target *dummy
		wantHP int
	}{
		{"offensive damages", SchoolOffensive, foe, 28},
		{"restorative heals", SchoolRestorative, ally, 52},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSpell("Bolt", tt.school, 12, tt.target)
			if err := s.Use(nil, tt.target); err != nil {
				t.Fatalf("Use returned error: %v", err)
			}
			if tt.target.hp != tt.wantHP {
				t.Errorf("Expected HP %d, got %d", tt.wantHP, tt.target.hp)
			}
		})
	}
}

func TestSpell_DisallowedTarget(t *testing.T) {
	allowed := &dummy{name: "Aria", hp: 40}
	outsider := &dummy{name: "Gob", hp: 40}
	s := NewSpell("Bolt", SchoolOffensive, 12, allowed)

	err := s.Use(nil, outsider)
	if !errors.Is(err, ErrPreconditionNotMet) {
		t.Fatalf("Expected ErrPreconditionNotMet, got %v", err)
	}
	if outsider.hp != 40 {
		t.Errorf("Expected outsider HP unchanged, got %d", outsider.hp)
	}
	if s.Spent() {
		t.Error("Expected spell to remain usable after failed precondition")
	}

	// The failed cast must not cost the spell: a later valid cast works.
	if err := s.Use(nil, allowed); err != nil {
		t.Fatalf("Expected valid cast to succeed, got %v", err)
	}
	if allowed.hp != 28 {
		t.Errorf("Expected allowed HP 28, got %d", allowed.hp)
	}
}

func TestSpell_TargetSet(t *testing.T) {
	a := &dummy{name: "Aria"}
	b := &dummy{name: "Gob"}
	s := NewSpell("Chain", SchoolOffensive, 5, b, a)

	if s.NumAllowedTargets() != 2 {
		t.Errorf("Expected 2 allowed targets, got %d", s.NumAllowedTargets())
	}
	names := s.TargetNames()
	if len(names) != 2 || names[0] != "Aria" || names[1] != "Gob" {
		t.Errorf("Expected sorted target names [Aria Gob], got %v", names)
	}
	if !s.Allows("Aria") || s.Allows("Nobody") {
		t.Error("Allows reported wrong membership")
	}
}

func TestItem_String(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{"weapon", NewWeapon("Sword", 10), "Sword:10"},
		{"potion", NewPotion("Elixir", 15), "Elixir:15"},
		{"spell", NewSpell("Bolt", SchoolOffensive, 12, &dummy{name: "Aria"}), "Bolt:1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
