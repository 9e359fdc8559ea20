package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/termtarot/internal/config"
	"github.com/arcanaland/termtarot/internal/element"
	"github.com/arcanaland/termtarot/internal/pager"
	"github.com/arcanaland/termtarot/internal/prompt"
	"github.com/arcanaland/termtarot/internal/render"
	"github.com/arcanaland/termtarot/internal/seed"
	"github.com/arcanaland/termtarot/internal/spread"
)

var (
	verbose bool

	// reading flags
	interactive bool
	detailed    bool
	seedText    string
	spreadPath  string
	deckPath    string
)

// RootCmd runs a reading when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "termtarot",
	Short: "Draw a tarot reading in your terminal",
	Long: `termtarot shuffles a deck, lays it out on a spread and prints the reading.

Decks and spreads are JSON files. Either path may point at a single file or at
a directory; when a directory holds several files you will be asked to choose.
Without paths the defaults from your config or your library
(XDG_DATA_HOME/termtarot) are used.

The same seed always produces the same reading.

Examples:
  termtarot --deck_path ~/decks/standard.json --spread_path three_card.json
  termtarot -s "what does tuesday hold" -i`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
		return nil
	},
	RunE: runReading,
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	RootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Set to view tarot cards/positions in interactive manner")
	RootCmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "Should multiple interpretations for cards/positions be displayed?")
	RootCmd.Flags().StringVarP(&seedText, "seed", "s", "", "Value used to draw cards and select interpretations")
	RootCmd.Flags().StringVar(&spreadPath, "spread_path", "", "Path that holds desired spread files. Can be a single file or a directory")
	RootCmd.Flags().StringVar(&deckPath, "deck_path", "", "Path that holds desired deck files. Can be a single file or a directory")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

func runReading(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	env, err := config.LoadEnv()
	if err != nil {
		return err
	}

	resolvedSpread, err := config.ResolvePath(config.Spreads, spreadPath, env, cfg)
	if err != nil {
		return err
	}
	slog.Debug("resolved spread path", "path", resolvedSpread)

	resolvedDeck, err := config.ResolvePath(config.Decks, deckPath, env, cfg)
	if err != nil {
		return err
	}
	slog.Debug("resolved deck path", "path", resolvedDeck)

	text := seedText
	if text == "" {
		text = seed.Default(time.Now())
	}
	s := seed.FromString(text)
	slog.Debug("seed", "text", text, "value", s)

	if detailed {
		slog.Debug("detailed output is reserved and has no effect yet")
	}

	tty := prompt.NewTerminal(cmd.InOrStdin(), cmd.ErrOrStderr())

	d, err := element.LoadDeck(resolvedDeck, tty)
	if err != nil {
		return fmt.Errorf("error loading deck: %w", err)
	}

	sp, err := element.LoadSpread(resolvedSpread, tty)
	if err != nil {
		return fmt.Errorf("error loading spread: %w", err)
	}

	filled, err := spread.Fill(sp, d, s)
	if err != nil {
		return fmt.Errorf("error drawing cards: %w", err)
	}

	out := io.WriteCloser(nopWriteCloser{cmd.OutOrStdout()})
	if !interactive {
		out, err = pager.Open(config.PagerCommand(env, cfg), cmd.OutOrStdout())
		if err != nil {
			return err
		}
	}

	r := render.New(out, s)
	r.Interactive = interactive
	r.Pacer = tty
	r.Color = interactive && isTerminal(cmd.OutOrStdout())

	renderErr := r.Render(filled)
	if err := out.Close(); err != nil && renderErr == nil {
		renderErr = err
	}
	return renderErr
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w, or fallback when it is not a terminal
func terminalWidth(w io.Writer, fallback int) int {
	f, ok := w.(*os.File)
	if !ok {
		return fallback
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
