// Package render writes readings as plain text.
package render

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/arcanaland/termtarot/internal/card"
	"github.com/arcanaland/termtarot/internal/prompt"
	"github.com/arcanaland/termtarot/internal/seed"
	"github.com/arcanaland/termtarot/internal/spread"
)

const (
	NoFortune = "No Fortune"
	NoLight   = "No Light meaning"
	NoShadow  = "No Shadow meaning"

	// ContinuePrompt is shown between positions of an interactive reading
	ContinuePrompt = "Press ENTER to draw next card"
)

var separator = strings.Repeat("=", 30)

// Renderer writes a filled spread, one block per position
type Renderer struct {
	Out         io.Writer
	Seed        uint64
	Interactive bool
	Pacer       prompt.Pacer
	Color       bool

	positionColor *color.Color
	cardColor     *color.Color
}

// New creates a non-interactive, uncolored renderer
func New(out io.Writer, s uint64) *Renderer {
	return &Renderer{Out: out, Seed: s}
}

// Render writes every (position, card) pair of f to the output
func (r *Renderer) Render(f *spread.FilledSpread) error {
	if r.Interactive && r.Pacer == nil {
		return fmt.Errorf("interactive rendering needs a pacer")
	}

	r.positionColor = r.newColor(color.FgCyan, color.Bold)
	r.cardColor = r.newColor(color.FgHiWhite, color.Bold)

	w := &errWriter{w: r.Out}
	for _, pair := range f.Pairs() {
		r.writePosition(w, pair.Position)
		w.println("")
		r.writeCard(w, pair.Card)
		w.println("")
		w.println(separator)
		w.println("")

		if w.err != nil {
			return w.err
		}

		if r.Interactive {
			if err := r.Pacer.Wait(ContinuePrompt); err != nil {
				return err
			}
		}
	}

	return w.err
}

func (r *Renderer) writePosition(w *errWriter, p spread.Position) {
	r.writeTitle(w, p.Name, r.positionColor)
	w.println(p.Meaning)
}

// writeCard prints the card with one variant per field. Each card starts a
// fresh generator from the seed and consumes it fortune, light, shadow.
func (r *Renderer) writeCard(w *errWriter, c card.Card) {
	rng := seed.NewRand(r.Seed)

	r.writeTitle(w, c.Name, r.cardColor)
	w.println(choose(rng, c.FortuneTelling, NoFortune))
	w.println("Light: " + choose(rng, c.Meanings.Light, NoLight))
	w.println("Shadow: " + choose(rng, c.Meanings.Shadow, NoShadow))
}

func (r *Renderer) writeTitle(w *errWriter, title string, c *color.Color) {
	if c != nil {
		w.println(c.Sprint(title))
	} else {
		w.println(title)
	}
	w.println(Underline(title))
}

func (r *Renderer) newColor(attrs ...color.Attribute) *color.Color {
	if !r.Color {
		return nil
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// Underline returns a dash for every character of title
func Underline(title string) string {
	return strings.Repeat("-", utf8.RuneCountInString(title))
}

// choose picks one option, or returns fallback when there are none
func choose(rng *rand.Rand, options []string, fallback string) string {
	if len(options) == 0 {
		return fallback
	}
	return options[rng.IntN(len(options))]
}

// errWriter remembers the first write error and drops everything after it
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) println(s string) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w, s)
}
