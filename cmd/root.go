package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/meridianhq/meridian-cli/internal/app"
	"github.com/meridianhq/meridian-cli/internal/config"
	"github.com/meridianhq/meridian-cli/internal/logger"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "meridian [flags] <path>",
		Short: "Send requests to a Meridian App Services deployment.",
		Long: `Meridian CLI is a command-line client for Meridian App Services.

The root command sends a single request to the given API path. The base URL
is taken from the configuration, or resolved through the discovery service
when only an application ID is configured. When an auth token is present,
requests are sent with an 'Authorization: Bearer' header.

Examples:
  meridian /api/client/v1/ping
  meridian -X POST -d '{"name":"sum","arguments":[1,2]}' /api/client/v1/functions/call
  meridian -H 'X-Trace: abc' /api/client/v1/app/metadata`,
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			if err := bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			flags := cmd.Flags()
			options := &app.RootCommandOptions{}
			options.Method, _ = flags.GetString("method")
			options.Data, _ = flags.GetString("data")
			options.Headers, _ = flags.GetStringArray("header")

			app.ExecuteRootCommand(cmd.Context(), appConfig, args[0], options)
		},
	}
)

// Execute executes the root command.
func Execute() {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	defer stop()

	go func() {
		defer stop()

		err := rootCmd.ExecuteContext(ctx)
		cobra.CheckErr(err)
	}()

	<-ctx.Done()
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	persistentFlags := rootCmd.PersistentFlags()

	persistentFlags.StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	persistentFlags.StringP(
		"app-id",
		"a",
		"",
		"application ID to resolve the base URL through the discovery service.")

	persistentFlags.StringP(
		"base-url",
		"b",
		"",
		"base URL to use directly, skipping discovery.")

	persistentFlags.StringP(
		"log-level",
		"l",
		"",
		"log level: debug, info, warn, error.")

	rootCmdFlags := rootCmd.Flags()

	rootCmdFlags.StringP(
		"method",
		"X",
		"",
		"HTTP method to use (default is GET).")

	rootCmdFlags.StringP(
		"data",
		"d",
		"",
		"JSON request body.")

	rootCmdFlags.StringArrayP(
		"header",
		"H",
		nil,
		"extra request header in 'Name: value' form (repeatable).")
}

func initConfig(cmd *cobra.Command, _ []string) {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		logger.Fatalf(cmd.Context(), "Failed to load configuration: %v", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)
}

func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("app-id"); flag != nil && flag.Changed {
		cfg.AppID, _ = flags.GetString("app-id")
	}

	if flag := flags.Lookup("base-url"); flag != nil && flag.Changed {
		cfg.BaseURL, _ = flags.GetString("base-url")
	}

	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if flag := flags.Lookup("output"); flag != nil && flag.Changed {
		cfg.OutputPath, _ = flags.GetString("output")
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	logger.SetLevel(cfg.ParsedLogLevel)

	return nil
}
