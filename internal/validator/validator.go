package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arcanaland/termtarot/internal/config"
	"github.com/arcanaland/termtarot/internal/deck"
	"github.com/arcanaland/termtarot/internal/element"
	"github.com/arcanaland/termtarot/internal/schema"
	"github.com/arcanaland/termtarot/internal/spread"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	Kind    config.Kind
	Path    string
	Results ValidationResults
}

func NewValidator(kind config.Kind, path string) *Validator {
	return &Validator{
		Kind:    kind,
		Path:    path,
		Results: ValidationResults{},
	}
}

// Validate checks every deck or spread found at the path. Files that cannot
// be loaded at all are reported as an error instead of a result. An empty
// Kind is inferred from the fields the files carry.
func (v *Validator) Validate() (ValidationResults, error) {
	switch v.Kind {
	case "":
		return v.validateAny()
	case config.Decks:
		decks, err := element.DeckCandidates(v.Path)
		if err != nil {
			return v.Results, err
		}
		for _, d := range decks {
			v.validateDeck(d)
		}
	case config.Spreads:
		spreads, err := element.SpreadCandidates(v.Path)
		if err != nil {
			return v.Results, err
		}
		for _, s := range spreads {
			v.validateSpread(s)
		}
	default:
		return v.Results, fmt.Errorf("unknown kind: %s", v.Kind)
	}

	return v.Results, nil
}

// validateAny tries the path as decks, then as spreads
func (v *Validator) validateAny() (ValidationResults, error) {
	decks, deckErr := element.DeckCandidates(v.Path)
	if deckErr == nil {
		v.Kind = config.Decks
		for _, d := range decks {
			v.validateDeck(d)
		}
		return v.Results, nil
	}
	if !errors.Is(deckErr, schema.ErrMissingField) {
		return v.Results, deckErr
	}

	spreads, err := element.SpreadCandidates(v.Path)
	if err != nil {
		// Neither kind fits; the deck error names what is missing
		return v.Results, deckErr
	}
	v.Kind = config.Spreads
	for _, s := range spreads {
		v.validateSpread(s)
	}
	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateDeck checks that every card can be rendered
func (v *Validator) validateDeck(d *deck.Deck) {
	label := deckLabel(d)

	if d.Name == "" {
		v.warnf("deck has no name; it will show up blank in selection menus")
	}

	if len(d.Cards) == 0 {
		v.errorf("%s has no cards", label)
		return
	}

	seen := make(map[string]int)
	for i, c := range d.Cards {
		if strings.TrimSpace(c.Name) == "" {
			v.errorf("%s: card %d has no name", label, i)
			continue
		}

		if prev, ok := seen[c.Name]; ok {
			v.warnf("%s: duplicate card name %q (cards %d and %d)", label, c.Name, prev, i)
		} else {
			seen[c.Name] = i
		}

		// Empty collections render the fallback text
		var missing []string
		if len(c.FortuneTelling) == 0 {
			missing = append(missing, "fortune_telling")
		}
		if len(c.Meanings.Light) == 0 {
			missing = append(missing, "meanings.light")
		}
		if len(c.Meanings.Shadow) == 0 {
			missing = append(missing, "meanings.shadow")
		}
		if len(missing) > 0 {
			v.warnf("%s: card %q has no %s", label, c.Name, strings.Join(missing, ", "))
		}
	}
}

// validateSpread checks positions and their layout hints
func (v *Validator) validateSpread(s *spread.Spread) {
	label := spreadLabel(s)

	if s.Name == "" {
		v.warnf("spread has no name; it will show up blank in selection menus")
	}

	if len(s.Positions) == 0 {
		v.errorf("%s has no positions", label)
		return
	}

	orders := make(map[uint8]string)
	for i, p := range s.Positions {
		if strings.TrimSpace(p.Name) == "" {
			v.errorf("%s: position %d has no name", label, i)
		}

		if other, ok := orders[p.Order]; ok {
			v.warnf("%s: positions %q and %q share order %d", label, other, p.Name, p.Order)
		} else {
			orders[p.Order] = p.Name
		}

		// Coordinates are 0-based
		if p.XPos >= s.PositionXSize || p.YPos >= s.PositionYSize {
			v.warnf("%s: position %q at (%d, %d) lies outside the %dx%d layout",
				label, p.Name, p.XPos, p.YPos, s.PositionXSize, s.PositionYSize)
		}
	}
}

func deckLabel(d *deck.Deck) string {
	if d.Name == "" {
		return "deck"
	}
	return fmt.Sprintf("deck %q", d.Name)
}

func spreadLabel(s *spread.Spread) string {
	if s.Name == "" {
		return "spread"
	}
	return fmt.Sprintf("spread %q", s.Name)
}
