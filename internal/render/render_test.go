package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/termtarot/internal/card"
	"github.com/arcanaland/termtarot/internal/deck"
	"github.com/arcanaland/termtarot/internal/seed"
	"github.com/arcanaland/termtarot/internal/spread"
)

type countingPacer struct {
	messages []string
	err      error
}

func (p *countingPacer) Wait(message string) error {
	p.messages = append(p.messages, message)
	return p.err
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func loadFixture(t *testing.T, v any, parts ...string) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(append([]string{"..", "..", "testdata"}, parts...)...))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}

func testSpread(t *testing.T) *spread.Spread {
	var sp spread.Spread
	loadFixture(t, &sp, "spreads", "test_spread.json")
	return &sp
}

func testDeck(t *testing.T) *deck.Deck {
	var d deck.Deck
	loadFixture(t, &d, "decks", "test_deck.json")
	return &d
}

// expectedCardBlock derives the card lines independently: one generator per card,
// consumed fortune, light, shadow.
func expectedCardBlock(c card.Card, s uint64) string {
	rng := seed.NewRand(s)
	pick := func(options []string, fallback string) string {
		if len(options) == 0 {
			return fallback
		}
		return options[rng.IntN(len(options))]
	}

	fortune := pick(c.FortuneTelling, NoFortune)
	light := pick(c.Meanings.Light, NoLight)
	shadow := pick(c.Meanings.Shadow, NoShadow)

	return c.Name + "\n" +
		strings.Repeat("-", len(c.Name)) + "\n" +
		fortune + "\n" +
		"Light: " + light + "\n" +
		"Shadow: " + shadow + "\n"
}

func TestRender_EndToEnd(t *testing.T) {
	d := testDeck(t)
	filled, err := spread.Fill(testSpread(t), d, 1)
	require.NoError(t, err)

	reference := testDeck(t)
	reference.Shuffle(1)
	drawn, err := reference.Draw(2)
	require.NoError(t, err)

	want := "test position 1\n" +
		"---------------\n" +
		"test meaning 1\n" +
		"\n" +
		expectedCardBlock(drawn[0], 1) +
		"\n" +
		"==============================\n" +
		"\n" +
		"test position 2\n" +
		"---------------\n" +
		"test meaning 2\n" +
		"\n" +
		expectedCardBlock(drawn[1], 1) +
		"\n" +
		"==============================\n" +
		"\n"

	var out bytes.Buffer
	require.NoError(t, New(&out, 1).Render(filled))
	assert.Equal(t, want, out.String())
}

func TestRender_Reproducible(t *testing.T) {
	render := func() string {
		filled, err := spread.Fill(testSpread(t), testDeck(t), 12345)
		require.NoError(t, err)
		var out bytes.Buffer
		require.NoError(t, New(&out, 12345).Render(filled))
		return out.String()
	}

	assert.Equal(t, render(), render())
}

func TestRender_SingleVariantCards(t *testing.T) {
	d := testDeck(t)
	d.Cards = d.Cards[1:] // both remaining cards have one variant per field

	filled, err := spread.Fill(testSpread(t), d, 1)
	require.NoError(t, err)

	block := func(pos, meaning, name, suffix string) string {
		return pos + "\n---------------\n" + meaning + "\n\n" +
			name + "\n----------\n" +
			"test_fortune" + suffix + "\n" +
			"Light: light_meaning" + suffix + "\n" +
			"Shadow: shadow_meaning" + suffix + "\n" +
			"\n==============================\n\n"
	}
	oneThenTwo := block("test position 1", "test meaning 1", "test_name1", "1") +
		block("test position 2", "test meaning 2", "test_name2", "2")
	twoThenOne := block("test position 1", "test meaning 1", "test_name2", "2") +
		block("test position 2", "test meaning 2", "test_name1", "1")

	var out bytes.Buffer
	require.NoError(t, New(&out, 1).Render(filled))
	assert.Contains(t, []string{oneThenTwo, twoThenOne}, out.String())
}

func TestRender_Fallbacks(t *testing.T) {
	filled := &spread.FilledSpread{
		Spread: &spread.Spread{Positions: []spread.Position{{Name: "Past", Meaning: "What was"}}},
		Cards:  []card.Card{{Name: "Blank"}},
	}

	var out bytes.Buffer
	require.NoError(t, New(&out, 7).Render(filled))

	want := "Past\n----\nWhat was\n\n" +
		"Blank\n-----\n" +
		"No Fortune\n" +
		"Light: No Light meaning\n" +
		"Shadow: No Shadow meaning\n" +
		"\n==============================\n\n"
	assert.Equal(t, want, out.String())
}

func TestRender_UnderlineCountsCharacters(t *testing.T) {
	filled := &spread.FilledSpread{
		Spread: &spread.Spread{Positions: []spread.Position{{Name: "Présent", Meaning: "m"}}},
		Cards:  []card.Card{{Name: "L'Étoile ✶"}},
	}

	var out bytes.Buffer
	require.NoError(t, New(&out, 1).Render(filled))

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "Présent", lines[0])
	assert.Equal(t, "-------", lines[1])
	assert.Equal(t, "L'Étoile ✶", lines[4])
	assert.Equal(t, "----------", lines[5])
}

func TestRender_Interactive(t *testing.T) {
	filled, err := spread.Fill(testSpread(t), testDeck(t), 1)
	require.NoError(t, err)

	pacer := &countingPacer{}
	r := New(&bytes.Buffer{}, 1)
	r.Interactive = true
	r.Pacer = pacer

	require.NoError(t, r.Render(filled))
	assert.Equal(t, []string{ContinuePrompt, ContinuePrompt}, pacer.messages)
}

func TestRender_InteractiveStopsOnPacerError(t *testing.T) {
	filled, err := spread.Fill(testSpread(t), testDeck(t), 1)
	require.NoError(t, err)

	cause := errors.New("stdin closed")
	pacer := &countingPacer{err: cause}
	var out bytes.Buffer
	r := New(&out, 1)
	r.Interactive = true
	r.Pacer = pacer

	assert.ErrorIs(t, r.Render(filled), cause)
	assert.Len(t, pacer.messages, 1)
	assert.NotContains(t, out.String(), "test position 2")
}

func TestRender_NonInteractiveNeverWaits(t *testing.T) {
	filled, err := spread.Fill(testSpread(t), testDeck(t), 1)
	require.NoError(t, err)

	pacer := &countingPacer{}
	r := New(&bytes.Buffer{}, 1)
	r.Pacer = pacer

	require.NoError(t, r.Render(filled))
	assert.Empty(t, pacer.messages)
}

func TestRender_InteractiveNeedsPacer(t *testing.T) {
	r := New(&bytes.Buffer{}, 1)
	r.Interactive = true
	assert.Error(t, r.Render(&spread.FilledSpread{Spread: &spread.Spread{}}))
}

func TestRender_WriteError(t *testing.T) {
	filled, err := spread.Fill(testSpread(t), testDeck(t), 1)
	require.NoError(t, err)

	assert.EqualError(t, New(failingWriter{}, 1).Render(filled), "disk full")
}

func TestRender_Color(t *testing.T) {
	filled := &spread.FilledSpread{
		Spread: &spread.Spread{Positions: []spread.Position{{Name: "Past", Meaning: "m"}}},
		Cards:  []card.Card{{Name: "Sun"}},
	}

	var out bytes.Buffer
	r := New(&out, 1)
	r.Color = true
	require.NoError(t, r.Render(filled))

	lines := strings.Split(out.String(), "\n")
	assert.Contains(t, lines[0], "\x1b[")
	assert.Contains(t, lines[0], "Past")
	assert.Equal(t, "----", lines[1])
	assert.Equal(t, "---", lines[5])
}

func TestUnderline(t *testing.T) {
	assert.Equal(t, "", Underline(""))
	assert.Equal(t, "---------", Underline("test_name"))
	assert.Equal(t, "---", Underline("日本語"))
}
