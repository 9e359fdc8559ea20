package spread

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/arcanaland/termtarot/internal/card"
	"github.com/arcanaland/termtarot/internal/deck"
	"github.com/arcanaland/termtarot/internal/schema"
)

var ErrInvalidOrientation = errors.New("invalid position orientation")

// Orientation describes how a card is laid at a position
type Orientation string

const (
	Horizontal Orientation = "Horizontal"
	Vertical   Orientation = "Vertical"
)

// UnmarshalText accepts only the two known orientations
func (o *Orientation) UnmarshalText(text []byte) error {
	switch v := Orientation(text); v {
	case Horizontal, Vertical:
		*o = v
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, string(text))
	}
}

// Position is one slot of a spread.
// Order, XPos and YPos are layout hints; pairing and rendering use storage order.
type Position struct {
	Order       uint8       `json:"order"`
	Name        string      `json:"name"`
	Meaning     string      `json:"meaning"`
	Orientation Orientation `json:"orientation"`
	XPos        uint8       `json:"x_pos"`
	YPos        uint8       `json:"y_pos"`
}

func (p *Position) UnmarshalJSON(data []byte) error {
	if err := schema.Require(data, "order", "name", "meaning", "orientation", "x_pos", "y_pos"); err != nil {
		return fmt.Errorf("position: %w", err)
	}
	type plain Position
	return json.Unmarshal(data, (*plain)(p))
}

// Spread represents a reading layout loaded from a spread file
type Spread struct {
	Name          string     `json:"name"`
	PositionXSize uint8      `json:"position_x_size"`
	PositionYSize uint8      `json:"position_y_size"`
	Positions     []Position `json:"positions"`
}

// UnmarshalJSON rejects documents that are not spreads, such as deck files
func (s *Spread) UnmarshalJSON(data []byte) error {
	if err := schema.Require(data, "name", "position_x_size", "position_y_size", "positions"); err != nil {
		return fmt.Errorf("spread: %w", err)
	}
	type plain Spread
	return json.Unmarshal(data, (*plain)(s))
}

// Label returns the display name of the spread
func (s *Spread) Label() string {
	return s.Name
}

// Len returns the number of positions in the spread
func (s *Spread) Len() int {
	return len(s.Positions)
}

// Pair is a position together with the card drawn for it
type Pair struct {
	Position Position
	Card     card.Card
}

// FilledSpread is a spread with a card drawn for each position.
// Cards is an owned copy, so later changes to the deck never reach it.
type FilledSpread struct {
	Spread *Spread
	Cards  []card.Card
}

// Fill shuffles d with seed and draws one card per position of sp.
func Fill(sp *Spread, d *deck.Deck, seed uint64) (*FilledSpread, error) {
	d.Shuffle(seed)

	cards, err := d.Draw(len(sp.Positions))
	if err != nil {
		return nil, err
	}

	return &FilledSpread{
		Spread: sp,
		Cards:  cards,
	}, nil
}

// Pairs returns positions matched with cards in storage order
func (f *FilledSpread) Pairs() []Pair {
	n := min(len(f.Spread.Positions), len(f.Cards))
	pairs := make([]Pair, n)
	for i := 0; i < n; i++ {
		pairs[i] = Pair{Position: f.Spread.Positions[i], Card: f.Cards[i]}
	}
	return pairs
}
