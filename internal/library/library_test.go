package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/termtarot/internal/config"
	"github.com/arcanaland/termtarot/internal/element"
	"github.com/arcanaland/termtarot/internal/spread"
)

func TestDefaults(t *testing.T) {
	decks, err := Defaults(config.Decks)
	require.NoError(t, err)
	assert.Equal(t, []string{"major_arcana.json"}, decks)

	spreads, err := Defaults(config.Spreads)
	require.NoError(t, err)
	assert.Equal(t, []string{"celtic_cross.json", "debug_spread.json", "three_card.json"}, spreads)

	_, err = Defaults(config.Kind("cards"))
	assert.Error(t, err)
}

func TestWriteDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "spreads")

	written, err := WriteDefaults(config.Spreads, dir, false)
	require.NoError(t, err)
	assert.Len(t, written, 3)

	// A user edit survives a second init
	edited := filepath.Join(dir, "three_card.json")
	require.NoError(t, os.WriteFile(edited, []byte(`{"name": "mine"}`), 0644))

	written, err = WriteDefaults(config.Spreads, dir, false)
	require.NoError(t, err)
	assert.Empty(t, written)
	data, err := os.ReadFile(edited)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "mine"}`, string(data))

	written, err = WriteDefaults(config.Spreads, dir, true)
	require.NoError(t, err)
	assert.Len(t, written, 3)
	data, err = os.ReadFile(edited)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Three Card")
}

func TestDefaultsLoad(t *testing.T) {
	deckDir := filepath.Join(t.TempDir(), "decks")
	_, err := WriteDefaults(config.Decks, deckDir, false)
	require.NoError(t, err)

	d, err := element.LoadDeck(deckDir, nil)
	require.NoError(t, err)
	assert.Equal(t, "Major Arcana", d.Name)
	assert.Len(t, d.Cards, 22)

	spreadDir := filepath.Join(t.TempDir(), "spreads")
	_, err = WriteDefaults(config.Spreads, spreadDir, false)
	require.NoError(t, err)

	spreads, err := element.SpreadCandidates(spreadDir)
	require.NoError(t, err)
	require.Len(t, spreads, 3)

	// Every default spread can be filled from the default deck
	for _, sp := range spreads {
		_, err := spread.Fill(sp, d, 1)
		assert.NoError(t, err, sp.Name)
	}
}
