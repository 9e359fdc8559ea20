package cmd

import (
	"errors"
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/termtarot/internal/config"
	"github.com/arcanaland/termtarot/internal/validator"
)

var validateKind string

// errValidationFailed is returned when a file loads but has errors
var errValidationFailed = errors.New("validation failed")

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a deck or spread file or directory",
	Long: `Validate loads every deck or spread found at the path and reports problems
that would spoil a reading: cards or positions without names, missing meanings,
duplicate names and positions outside the spread layout.

Without --kind the path is read as decks, and as spreads when the files lack
the fields a deck needs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		out := cmd.OutOrStdout()

		var kind config.Kind
		switch validateKind {
		case "":
			// inferred from the file contents
		case "deck", string(config.Decks):
			kind = config.Decks
		case "spread", string(config.Spreads):
			kind = config.Spreads
		default:
			return fmt.Errorf("unknown kind %q: expected deck or spread", validateKind)
		}

		// Check if path exists
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("path not found: %s", path)
		}

		v := validator.NewValidator(kind, path)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}
		kind = v.Kind

		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ %s '%s' is valid.\n", capitalize(kind.Singular()), path)
		} else {
			fmt.Fprintf(out, "❌ %s '%s' has %d validation errors:\n", capitalize(kind.Singular()), path, len(results.Errors))
			for i, e := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, colorize.RedString(e))
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, colorize.YellowString(warn))
			}
		}

		if len(results.Errors) > 0 {
			return errValidationFailed
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateKind, "kind", "k", "", "What the path holds: deck or spread (inferred when empty)")
}
