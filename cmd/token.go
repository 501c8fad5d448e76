package cmd

import (
	"github.com/spf13/cobra"

	"github.com/meridianhq/meridian-cli/internal/app"
	"github.com/meridianhq/meridian-cli/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var tokenCmd = &cobra.Command{
	Use:   "token <value>",
	Short: "Save a bearer token to the configuration file.",
	Long: `Save a bearer token to the configuration file.

The token is written back into the existing configuration file, preserving
its formatting and key order. Subsequent requests are sent with an
'Authorization: Bearer' header carrying the saved token.`,
	Args:             cobra.ExactArgs(1),
	PersistentPreRun: initConfig,
	Run: func(cmd *cobra.Command, args []string) {
		if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		app.ExecuteTokenCommand(cmd.Context(), appConfig, args[0])
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(tokenCmd)
}
