package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/arcanaland/termtarot/internal/card"
	"github.com/arcanaland/termtarot/internal/schema"
	"github.com/arcanaland/termtarot/internal/seed"
)

var (
	ErrNotEnoughCards = errors.New("cannot draw more cards than exist in the deck")
	ErrInvalidCount   = errors.New("draw count must not be negative")
	ErrCardNotFound   = errors.New("card not found")
)

// Deck represents a tarot deck loaded from a deck file
type Deck struct {
	Name  string      `json:"name"`
	Cards []card.Card `json:"cards"`
}

// UnmarshalJSON rejects documents that are not decks, such as spread files
func (d *Deck) UnmarshalJSON(data []byte) error {
	if err := schema.Require(data, "name", "cards"); err != nil {
		return fmt.Errorf("deck: %w", err)
	}
	type plain Deck
	return json.Unmarshal(data, (*plain)(d))
}

// Label returns the display name of the deck
func (d *Deck) Label() string {
	return d.Name
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.Cards)
}

// Shuffle permutes the cards in place. The same seed and the same starting
// order always produce the same permutation.
func (d *Deck) Shuffle(s uint64) {
	r := seed.NewRand(s)
	r.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Draw returns a copy of the first count cards. The deck is left untouched.
func (d *Deck) Draw(count int) ([]card.Card, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if count > len(d.Cards) {
		return nil, fmt.Errorf("%w: requested %d, deck %q has %d",
			ErrNotEnoughCards, count, d.Name, len(d.Cards))
	}

	drawn := make([]card.Card, count)
	copy(drawn, d.Cards[:count])
	return drawn, nil
}

// FindCard looks up a card by name, ignoring case
func (d *Deck) FindCard(name string) (*card.Card, error) {
	for i := range d.Cards {
		if strings.EqualFold(d.Cards[i].Name, name) {
			return &d.Cards[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrCardNotFound, name)
}
