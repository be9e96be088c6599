package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mhollis/fable-engine/pkg/item"
)

// Verb is a top-level script command.
type Verb string

const (
	VerbCreate   Verb = "Create"
	VerbAttack   Verb = "Attack"
	VerbDrink    Verb = "Drink"
	VerbCast     Verb = "Cast"
	VerbShow     Verb = "Show"
	VerbDialogue Verb = "Dialogue"
)

// Command is one parsed script line. Which fields are meaningful depends
// on the verb.
type Command struct {
	Verb Verb

	// Create character
	Class Class
	HP    int

	// Create item
	Kind    Kind
	Owner   string
	Value   int
	School  item.School
	Targets []string

	// Shared: item or character display name
	Name string

	// Attack / Drink / Cast
	Actor  string
	Target string
	Item   string

	// Show
	ShowKind string

	// Dialogue
	Speaker string
	Words   []string
}

// ParseCommand parses one script line.
//
//	Create character <class> <name> <hp>
//	Create item weapon <owner> <name> <damage>
//	Create item potion <owner> <name> <healValue>
//	Create item spell <owner> <name> <school> <magnitude> [target ...]
//	Attack <actor> <target> <weapon>
//	Drink <actor> <target> <potion>
//	Cast <actor> <target> <spell>
//	Show characters
//	Show weapons|potions|spells <name>
//	Dialogue <speaker> <words ...>
func ParseCommand(line string) (*Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty command: %w", ErrInvalidAction)
	}

	switch Verb(fields[0]) {
	case VerbCreate:
		return parseCreate(fields[1:])

	case VerbAttack, VerbDrink, VerbCast:
		if len(fields) != 4 {
			return nil, fmt.Errorf("%s wants <actor> <target> <item>: %w", fields[0], ErrInvalidAction)
		}
		return &Command{
			Verb:   Verb(fields[0]),
			Actor:  fields[1],
			Target: fields[2],
			Item:   fields[3],
		}, nil

	case VerbShow:
		switch {
		case len(fields) == 2 && strings.EqualFold(fields[1], "characters"):
			return &Command{Verb: VerbShow, ShowKind: "characters"}, nil
		case len(fields) == 3:
			return &Command{Verb: VerbShow, ShowKind: fields[1], Name: fields[2]}, nil
		default:
			return nil, fmt.Errorf("Show wants <kind> <name>: %w", ErrInvalidAction)
		}

	case VerbDialogue:
		if len(fields) < 3 {
			return nil, fmt.Errorf("Dialogue wants <speaker> <words>: %w", ErrInvalidAction)
		}
		return &Command{
			Verb:    VerbDialogue,
			Speaker: fields[1],
			Words:   fields[2:],
		}, nil

	default:
		return nil, fmt.Errorf("verb %q: %w", fields[0], ErrInvalidAction)
	}
}

func parseCreate(fields []string) (*Command, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("Create wants character or item: %w", ErrInvalidAction)
	}

	switch strings.ToLower(fields[0]) {
	case "character":
		if len(fields) != 4 {
			return nil, fmt.Errorf("Create character wants <class> <name> <hp>: %w", ErrInvalidAction)
		}
		class, err := ParseClass(fields[1])
		if err != nil {
			return nil, err
		}
		hp, err := parseInt(fields[3], "hp")
		if err != nil {
			return nil, err
		}
		return &Command{Verb: VerbCreate, Class: class, Name: fields[2], HP: hp}, nil

	case "item":
		if len(fields) < 2 {
			return nil, fmt.Errorf("Create item wants a kind: %w", ErrInvalidAction)
		}
		return parseCreateItem(Kind(strings.ToLower(fields[1])), fields[2:])

	default:
		return nil, fmt.Errorf("Create %q: %w", fields[0], ErrInvalidAction)
	}
}

func parseCreateItem(kind Kind, fields []string) (*Command, error) {
	switch kind {
	case KindWeapon, KindPotion:
		if len(fields) != 3 {
			return nil, fmt.Errorf("Create item %s wants <owner> <name> <value>: %w", kind, ErrInvalidAction)
		}
		value, err := parseInt(fields[2], "value")
		if err != nil {
			return nil, err
		}
		return &Command{Verb: VerbCreate, Kind: kind, Owner: fields[0], Name: fields[1], Value: value}, nil

	case KindSpell:
		if len(fields) < 4 {
			return nil, fmt.Errorf("Create item spell wants <owner> <name> <school> <magnitude> [targets]: %w", ErrInvalidAction)
		}
		school, err := parseSchoolStrict(fields[2])
		if err != nil {
			return nil, err
		}
		magnitude, err := parseInt(fields[3], "magnitude")
		if err != nil {
			return nil, err
		}
		return &Command{
			Verb:    VerbCreate,
			Kind:    KindSpell,
			Owner:   fields[0],
			Name:    fields[1],
			School:  school,
			Value:   magnitude,
			Targets: fields[4:],
		}, nil

	default:
		return nil, fmt.Errorf("item kind %q: %w", kind, ErrInvalidAction)
	}
}

// Apply executes a parsed command against the session. The returned lines
// are transcript output; most verbs produce none.
func (s *Session) Apply(cmd *Command) ([]string, error) {
	switch cmd.Verb {
	case VerbCreate:
		return nil, s.applyCreate(cmd)

	case VerbAttack:
		return nil, s.Attack(cmd.Actor, cmd.Target, cmd.Item)

	case VerbDrink:
		return nil, s.Drink(cmd.Actor, cmd.Target, cmd.Item)

	case VerbCast:
		return nil, s.Cast(cmd.Actor, cmd.Target, cmd.Item)

	case VerbShow:
		lines, err := s.Show(cmd.ShowKind, cmd.Name)
		if err != nil {
			return nil, err
		}
		return []string{strings.Join(lines, " ")}, nil

	case VerbDialogue:
		line, err := s.Dialogue(cmd.Speaker, cmd.Words)
		if err != nil {
			return nil, err
		}
		return []string{line}, nil

	default:
		return nil, fmt.Errorf("verb %q: %w", cmd.Verb, ErrInvalidAction)
	}
}

func (s *Session) applyCreate(cmd *Command) error {
	if cmd.Class != "" {
		_, err := s.CreateCharacter(cmd.Class, cmd.Name, cmd.HP)
		return err
	}
	switch cmd.Kind {
	case KindWeapon:
		return s.CreateWeapon(cmd.Owner, cmd.Name, cmd.Value)
	case KindPotion:
		return s.CreatePotion(cmd.Owner, cmd.Name, cmd.Value)
	case KindSpell:
		return s.CreateSpell(cmd.Owner, cmd.Name, cmd.School, cmd.Value, cmd.Targets)
	default:
		return fmt.Errorf("item kind %q: %w", cmd.Kind, ErrInvalidAction)
	}
}

// Run parses and applies one raw script line.
func (s *Session) Run(line string) ([]string, error) {
	cmd, err := ParseCommand(line)
	if err != nil {
		return nil, err
	}
	return s.Apply(cmd)
}

func parseInt(s, field string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", field, s, ErrInvalidAction)
	}
	return n, nil
}

func parseSchoolStrict(s string) (item.School, error) {
	switch item.School(strings.ToLower(s)) {
	case item.SchoolOffensive:
		return item.SchoolOffensive, nil
	case item.SchoolRestorative:
		return item.SchoolRestorative, nil
	default:
		return "", fmt.Errorf("school %q: %w", s, ErrInvalidAction)
	}
}

// parseSchool is the lenient form used when restoring snapshots: anything
// unrecognized falls back to offensive, matching Spell.Use's default.
func parseSchool(s string) item.School {
	if school, err := parseSchoolStrict(s); err == nil {
		return school
	}
	return item.SchoolOffensive
}
