package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
// The CLI is an offline host for the computation engine: it loads a JSON
// dataset produced by the surrounding application and prints reports.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sumactl",
		Short: "Offline reports over a sumaconta dataset",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newTrialBalanceCommand())
	rootCmd.AddCommand(newValuationCommand())

	return rootCmd
}
