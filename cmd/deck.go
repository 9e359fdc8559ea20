package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/termtarot/internal/config"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage tarot decks in your deck library",
	Long: `Commands for managing tarot decks in your deck library.

The library lives at XDG_DATA_HOME/termtarot/decks. Every JSON file or
directory in it can be named with --deck_path or picked as the default.`,
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(newLibraryCommands(config.Decks)...)
}
