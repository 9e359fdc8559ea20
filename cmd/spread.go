package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/termtarot/internal/config"
)

// spreadCmd represents the spread command group
var spreadCmd = &cobra.Command{
	Use:   "spread",
	Short: "Manage spreads in your spread library",
	Long:  `Commands for managing spreads in your spread library (XDG_DATA_HOME/termtarot/spreads).`,
}

func init() {
	RootCmd.AddCommand(spreadCmd)
	spreadCmd.AddCommand(newLibraryCommands(config.Spreads)...)
}
