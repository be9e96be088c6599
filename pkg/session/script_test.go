package session

import (
	"errors"
	"testing"

	"github.com/mhollis/fable-engine/pkg/item"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name        string
		line        string
		expectError bool
		validate    func(*testing.T, *Command)
	}{
		{
			name: "create character",
			line: "Create character fighter Aria 100",
			validate: func(t *testing.T, cmd *Command) {
				if cmd.Verb != VerbCreate || cmd.Class != ClassFighter || cmd.Name != "Aria" || cmd.HP != 100 {
					t.Errorf("Unexpected command: %+v", cmd)
				}
			},
		},
		{
			name: "create character class is case-insensitive",
			line: "Create character Wizard Merlin 60",
			validate: func(t *testing.T, cmd *Command) {
				if cmd.Class != ClassWizard {
					t.Errorf("Expected class wizard, got %s", cmd.Class)
				}
			},
		},
		{
			name: "create weapon",
			line: "Create item weapon Aria Sword 10",
			validate: func(t *testing.T, cmd *Command) {
				if cmd.Kind != KindWeapon || cmd.Owner != "Aria" || cmd.Name != "Sword" || cmd.Value != 10 {
					t.Errorf("Unexpected command: %+v", cmd)
				}
			},
		},
		{
			name: "create potion",
			line: "Create item potion Aria Elixir 15",
			validate: func(t *testing.T, cmd *Command) {
				if cmd.Kind != KindPotion || cmd.Value != 15 {
					t.Errorf("Unexpected command: %+v", cmd)
				}
			},
		},
		{
			name: "create spell with targets",
			line: "Create item spell Merlin Bolt offensive 12 Aria Gob",
			validate: func(t *testing.T, cmd *Command) {
				if cmd.Kind != KindSpell || cmd.School != item.SchoolOffensive || cmd.Value != 12 {
					t.Errorf("Unexpected command: %+v", cmd)
				}
				if len(cmd.Targets) != 2 || cmd.Targets[0] != "Aria" || cmd.Targets[1] != "Gob" {
					t.Errorf("Unexpected targets: %v", cmd.Targets)
				}
			},
		},
		{
			name: "create spell without targets",
			line: "Create item spell Merlin Ward restorative 5",
			validate: func(t *testing.T, cmd *Command) {
				if cmd.School != item.SchoolRestorative || len(cmd.Targets) != 0 {
					t.Errorf("Unexpected command: %+v", cmd)
				}
			},
		},
		{
			name: "attack",
			line: "Attack Aria Dummy Sword",
			validate: func(t *testing.T, cmd *Command) {
				if cmd.Verb != VerbAttack || cmd.Actor != "Aria" || cmd.Target != "Dummy" || cmd.Item != "Sword" {
					t.Errorf("Unexpected command: %+v", cmd)
				}
			},
		},
		{
			name: "show characters",
			line: "Show characters",
			validate: func(t *testing.T, cmd *Command) {
				if cmd.Verb != VerbShow || cmd.ShowKind != "characters" {
					t.Errorf("Unexpected command: %+v", cmd)
				}
			},
		},
		{
			name: "show weapons",
			line: "Show weapons Aria",
			validate: func(t *testing.T, cmd *Command) {
				if cmd.ShowKind != "weapons" || cmd.Name != "Aria" {
					t.Errorf("Unexpected command: %+v", cmd)
				}
			},
		},
		{
			name: "dialogue",
			line: "Dialogue Aria We ride at dawn",
			validate: func(t *testing.T, cmd *Command) {
				if cmd.Verb != VerbDialogue || cmd.Speaker != "Aria" || len(cmd.Words) != 4 {
					t.Errorf("Unexpected command: %+v", cmd)
				}
			},
		},
		{name: "empty line", line: "   ", expectError: true},
		{name: "unknown verb", line: "Teleport Aria home", expectError: true},
		{name: "bad class", line: "Create character bard Aria 100", expectError: true},
		{name: "bad hp", line: "Create character fighter Aria lots", expectError: true},
		{name: "bad school", line: "Create item spell Merlin Bolt chaotic 12", expectError: true},
		{name: "attack missing item", line: "Attack Aria Dummy", expectError: true},
		{name: "show missing name", line: "Show weapons", expectError: true},
		{name: "dialogue without words", line: "Dialogue Aria", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.line)
			if tt.expectError {
				if !errors.Is(err, ErrInvalidAction) {
					t.Fatalf("Expected ErrInvalidAction, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCommand returned error: %v", err)
			}
			tt.validate(t, cmd)
		})
	}
}

func TestSession_RunScript(t *testing.T) {
	s := New()
	script := []string{
		"Create character fighter Aria 100",
		"Create character wizard Merlin 60",
		"Create character fighter Dummy 20",
		"Create item weapon Aria Sword 10",
		"Create item potion Merlin Elixir 15",
		"Create item spell Merlin Bolt offensive 12 Dummy",
		"Attack Aria Dummy Sword",
		"Cast Merlin Dummy Bolt",
		"Drink Merlin Merlin Elixir",
	}
	for _, line := range script {
		if _, err := s.Run(line); err != nil {
			t.Fatalf("Run(%q) returned error: %v", line, err)
		}
	}

	out, err := s.Run("Show characters")
	if err != nil {
		t.Fatalf("Run(Show characters) returned error: %v", err)
	}
	if len(out) != 1 || out[0] != "Aria:100 Merlin:75 Dummy:-2" {
		t.Errorf("Show characters = %v", out)
	}

	// The bolt was spent; the book is now empty.
	out, err = s.Run("Show spells Merlin")
	if err != nil {
		t.Fatalf("Run(Show spells) returned error: %v", err)
	}
	if len(out) != 1 || out[0] != "" {
		t.Errorf("Show spells = %v, want one empty line", out)
	}
}

func TestSession_RunDialogue(t *testing.T) {
	s := New()
	if _, err := s.Run("Create character fighter Aria 100"); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	out, err := s.Run("Dialogue Aria Hold the line")
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(out) != 1 || out[0] != "Aria: Hold the line" {
		t.Errorf("Dialogue output = %v", out)
	}
}

func TestSession_RunFailureLeavesStateIntact(t *testing.T) {
	s := New()
	if _, err := s.Run("Create character fighter Aria 100"); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if _, err := s.Run("Create item weapon Aria Sword 10"); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if _, err := s.Run("Attack Aria Ghost Sword"); err == nil {
		t.Fatal("Expected error attacking a missing target")
	}

	// The failed command is not fatal: the session keeps working.
	if _, err := s.Run("Create character fighter Dummy 20"); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if _, err := s.Run("Attack Aria Dummy Sword"); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	dummy, _ := s.Character("Dummy")
	if dummy.HP() != 10 {
		t.Errorf("Expected dummy HP 10, got %d", dummy.HP())
	}
}
