package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arcanaland/termtarot/internal/config"
	"github.com/arcanaland/termtarot/internal/element"
	"github.com/arcanaland/termtarot/internal/library"
)

// libraryEntry is one file or directory in a library together with the
// display names of the elements it holds
type libraryEntry struct {
	Name   string
	Labels []string
}

// listLibrary loads every entry of the library for kind. Entries that fail to
// load are skipped and reported on errOut.
func listLibrary(kind config.Kind, errOut io.Writer) ([]libraryEntry, error) {
	libraryPath := config.GetLibraryPath(kind)

	entries, err := os.ReadDir(libraryPath)
	if err != nil {
		return nil, err
	}

	var result []libraryEntry
	for _, entry := range entries {
		entryPath := filepath.Join(libraryPath, entry.Name())

		labels, err := loadLabels(kind, entryPath)
		if err != nil {
			// Not a valid deck or spread, skip
			fmt.Fprintf(errOut, "Skipping %s: %v\n", entry.Name(), err)
			continue
		}

		result = append(result, libraryEntry{Name: entry.Name(), Labels: labels})
	}

	return result, nil
}

func loadLabels(kind config.Kind, path string) ([]string, error) {
	var labels []string
	switch kind {
	case config.Decks:
		decks, err := element.DeckCandidates(path)
		if err != nil {
			return nil, err
		}
		for _, d := range decks {
			labels = append(labels, d.Label())
		}
	default:
		spreads, err := element.SpreadCandidates(path)
		if err != nil {
			return nil, err
		}
		for _, s := range spreads {
			labels = append(labels, s.Label())
		}
	}
	return labels, nil
}

// newLibraryCommands builds the ls, set-default and init commands for kind
func newLibraryCommands(kind config.Kind) []*cobra.Command {
	singular := kind.Singular()

	listCmd := &cobra.Command{
		Use:   "ls",
		Short: fmt.Sprintf("List available %s in your library", kind),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			libraryPath := config.GetLibraryPath(kind)

			// Check if library exists
			if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
				fmt.Fprintf(out, "The %s library at %s does not exist.\n", singular, libraryPath)
				fmt.Fprintf(out, "Run 'termtarot %s init' to create it.\n", singular)
				return nil
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}

			entries, err := listLibrary(kind, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("error reading %s library: %w", singular, err)
			}

			if len(entries) == 0 {
				fmt.Fprintf(out, "No %s found in your library.\n", kind)
				fmt.Fprintln(out, "You can add some by copying them to:", libraryPath)
				return nil
			}

			for _, entry := range entries {
				for _, label := range entry.Labels {
					if entry.Name == cfg.Default(kind) {
						fmt.Fprintf(out, "* %s (%s) [DEFAULT]\n", entry.Name, label)
					} else {
						fmt.Fprintf(out, "  %s (%s)\n", entry.Name, label)
					}
				}
			}
			return nil
		},
	}

	setDefaultCmd := &cobra.Command{
		Use:   fmt.Sprintf("set-default [%s_name]", singular),
		Short: fmt.Sprintf("Set the default %s", singular),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			path, err := config.GetElementPath(kind, name)
			if err != nil {
				return err
			}

			// Try to load it to make sure it's valid
			if _, err := loadLabels(kind, path); err != nil {
				return fmt.Errorf("not a valid %s: %w", singular, err)
			}

			if err := config.SetDefault(kind, name); err != nil {
				return fmt.Errorf("error setting default %s: %w", singular, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Default %s set to: %s\n", singular, name)
			return nil
		},
	}

	var overwrite bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: fmt.Sprintf("Initialize the %s library with the bundled %s", singular, kind),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			libraryPath := config.GetLibraryPath(kind)

			written, err := library.WriteDefaults(kind, libraryPath, overwrite)
			if err != nil {
				return fmt.Errorf("error initializing %s library: %w", singular, err)
			}

			fmt.Fprintf(out, "%s library initialized at: %s\n", capitalize(singular), libraryPath)
			for _, path := range written {
				fmt.Fprintln(out, "  wrote", filepath.Base(path))
			}

			// Initialize config
			if _, err := config.LoadConfig(); err != nil {
				return fmt.Errorf("error initializing config: %w", err)
			}
			fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&overwrite, "overwrite", "o", false, "Replace bundled files that already exist in the library")

	return []*cobra.Command{listCmd, setDefaultCmd, initCmd}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
