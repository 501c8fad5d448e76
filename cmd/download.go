package cmd

import (
	"github.com/spf13/cobra"

	"github.com/meridianhq/meridian-cli/internal/app"
	"github.com/meridianhq/meridian-cli/internal/logger"
)

//nolint:gochecknoglobals // Cobra command requires a global definition for proper command-line parsing and execution.
var downloadCmd = &cobra.Command{
	Use:   "download <url>",
	Short: "Download an asset to a local file.",
	Long: `Download an asset and save it under the output directory.

Relative URLs are joined against the resolved base URL. The local filename
is derived from the last segment of the URL path.`,
	Args:             cobra.ExactArgs(1),
	PersistentPreRun: initConfig,
	Run: func(cmd *cobra.Command, args []string) {
		if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
			logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
		}

		app.ExecuteDownloadCommand(cmd.Context(), appConfig, args[0])
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	downloadCmd.Flags().StringP(
		"output",
		"o",
		"",
		"directory to save downloaded files (the path will be created if it doesn't exist).")

	rootCmd.AddCommand(downloadCmd)
}
