package cmd

import (
	"github.com/spf13/cobra"

	"github.com/meridianhq/meridian-cli/internal/app"
	"github.com/meridianhq/meridian-cli/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var callCmd = &cobra.Command{
	Use:   "call <function> [arguments...]",
	Short: "Invoke a server-side function and print its result.",
	Long: `Invoke a server-side function by name.

Each argument is parsed as JSON; arguments that are not valid JSON are
passed through as plain strings. Throttled calls are retried automatically.

Examples:
  meridian call sum 1 2
  meridian call findUser '{"email":"someone@example.com"}'`,
	Args:             cobra.MinimumNArgs(1),
	PersistentPreRun: initConfig,
	Run: func(cmd *cobra.Command, args []string) {
		if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		app.ExecuteCallCommand(cmd.Context(), appConfig, args[0], args[1:])
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(callCmd)
}
