package actor

import "testing"

func TestCharacter_TakeDamageAndHeal(t *testing.T) {
	c := NewCharacter("Aria", 100)

	c.TakeDamage(30)
	if c.HP() != 70 {
		t.Errorf("Expected HP 70 after damage, got %d", c.HP())
	}

	c.Heal(10)
	if c.HP() != 80 {
		t.Errorf("Expected HP 80 after heal, got %d", c.HP())
	}
}

func TestCharacter_HealthIsUnclamped(t *testing.T) {
	tests := []struct {
		name    string
		startHP int
		damage  int
		wantHP  int
	}{
		{"damage below zero", 10, 25, -15},
		{"exact zero", 10, 10, 0},
		{"overkill then overheal", 5, 100, -95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCharacter("Aria", tt.startHP)
			c.TakeDamage(tt.damage)
			if c.HP() != tt.wantHP {
				t.Errorf("Expected HP %d, got %d", tt.wantHP, c.HP())
			}
			// Healing the same amount always restores the start value.
			c.Heal(tt.damage)
			if c.HP() != tt.startHP {
				t.Errorf("Expected HP restored to %d, got %d", tt.startHP, c.HP())
			}
		})
	}
}

func TestCharacter_IsDefeated(t *testing.T) {
	c := NewCharacter("Aria", 1)
	if c.IsDefeated() {
		t.Error("Expected character with 1 HP to be standing")
	}

	c.TakeDamage(1)
	if !c.IsDefeated() {
		t.Error("Expected character at 0 HP to be defeated")
	}

	// Defeat is a condition, not a state: healing recovers the character.
	c.Heal(5)
	if c.IsDefeated() {
		t.Error("Expected healed character to be standing again")
	}
}

func TestCharacter_String(t *testing.T) {
	c := NewCharacter("Aria", 100)
	if got := c.String(); got != "Aria:100" {
		t.Errorf("String() = %q, want Aria:100", got)
	}

	c.TakeDamage(120)
	if got := c.String(); got != "Aria:-20" {
		t.Errorf("String() = %q, want Aria:-20", got)
	}
}
