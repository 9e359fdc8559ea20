package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/termtarot/internal/config"
	"github.com/arcanaland/termtarot/internal/element"
	"github.com/arcanaland/termtarot/internal/prompt"
	"github.com/arcanaland/termtarot/internal/render"
)

var showDeck string

var showCmd = &cobra.Command{
	Use:   "show [card_name]",
	Short: "Display every meaning of a specific card",
	Long: `Show prints the full entry of a card: its keywords, every fortune telling
variant and all light and shadow meanings. Card names are matched without
regard to case.

You can specify a deck using the --deck flag, which will look for the deck
in your deck library (XDG_DATA_HOME/termtarot/decks) or as a path.
If no deck is specified, the default deck is used.

Examples:
  termtarot show "The Fool"
  termtarot show --deck major_arcana.json "wheel of fortune"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		env, err := config.LoadEnv()
		if err != nil {
			return err
		}

		deckPath, err := config.ResolvePath(config.Decks, showDeck, env, cfg)
		if err != nil {
			return err
		}

		tty := prompt.NewTerminal(cmd.InOrStdin(), cmd.ErrOrStderr())
		d, err := element.LoadDeck(deckPath, tty)
		if err != nil {
			return fmt.Errorf("error loading deck: %w", err)
		}

		c, err := d.FindCard(args[0])
		if err != nil {
			return fmt.Errorf("error getting card: %w", err)
		}

		out := cmd.OutOrStdout()
		return render.CardDetail(out, c, d.Name, terminalWidth(out, 80))
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringVar(&showDeck, "deck", "", "Specify a deck from your deck library or a path to a deck")
}
