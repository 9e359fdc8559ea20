package card

import (
	"encoding/json"
	"fmt"

	"github.com/arcanaland/termtarot/internal/schema"
)

// Meanings holds the interpretive variants of a card
type Meanings struct {
	Light  []string `json:"light"`
	Shadow []string `json:"shadow"`
}

func (m *Meanings) UnmarshalJSON(data []byte) error {
	if err := schema.Require(data, "light", "shadow"); err != nil {
		return fmt.Errorf("meanings: %w", err)
	}
	type plain Meanings
	return json.Unmarshal(data, (*plain)(m))
}

// Card represents a tarot card as stored in a deck file
type Card struct {
	Rank           uint8    `json:"rank"`
	Suit           string   `json:"suit"`
	Name           string   `json:"name"` // Display title
	Meanings       Meanings `json:"meanings"`
	Keywords       []string `json:"keywords"`
	FortuneTelling []string `json:"fortune_telling"`
}

// UnmarshalJSON rejects cards that leave out any field
func (c *Card) UnmarshalJSON(data []byte) error {
	if err := schema.Require(data, "rank", "suit", "name", "meanings", "keywords", "fortune_telling"); err != nil {
		return fmt.Errorf("card: %w", err)
	}
	type plain Card
	return json.Unmarshal(data, (*plain)(c))
}
