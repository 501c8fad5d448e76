package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/meridianhq/meridian-cli/internal/config"
	"github.com/meridianhq/meridian-cli/internal/constants"
)

const testBaseConfigContent = `
app_id: "config-app"
auth_token: "config_token"
log_level: "info"
request_timeout: "30s"
retry_attempts_count: 3
min_retry_pause: "1s"
max_retry_pause: "3s"
output_path: "/config/output"
`

// TestFlagOverrides tests that command-line flags correctly override configuration file values.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides(t *testing.T) {
	tests := []struct {
		name           string
		flags          map[string]string
		expectedConfig func(*testing.T, *config.Config)
	}{
		{
			name:  "no flags - use config values",
			flags: map[string]string{},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "config-app", cfg.AppID)
				assert.Empty(t, cfg.BaseURL)
				assert.Equal(t, zapcore.InfoLevel, cfg.ParsedLogLevel)
				assert.Equal(t, "/config/output", cfg.OutputPath)
			},
		},
		{
			name: "app-id flag only - override app ID",
			flags: map[string]string{
				"app-id": "flag-app",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "flag-app", cfg.AppID)
				assert.Equal(t, "/config/output", cfg.OutputPath)
			},
		},
		{
			name: "base-url flag only - skip discovery",
			flags: map[string]string{
				"base-url": "https://eu-west.services.meridian.dev",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "config-app", cfg.AppID)
				assert.Equal(t, "https://eu-west.services.meridian.dev", cfg.BaseURL)
			},
		},
		{
			name: "log-level flag only - override log level",
			flags: map[string]string{
				"log-level": "debug",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, zapcore.DebugLevel, cfg.ParsedLogLevel)
			},
		},
		{
			name: "output flag only - override output path",
			flags: map[string]string{
				"output": "/flag/output",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "/flag/output", cfg.OutputPath)
				assert.Equal(t, "config-app", cfg.AppID)
			},
		},
		{
			name: "all flags - override everything",
			flags: map[string]string{
				"app-id":    "flag-app",
				"base-url":  "https://local.services.meridian.dev",
				"log-level": "warn",
				"output":    "/all/flags/output",
			},
			expectedConfig: func(t *testing.T, cfg *config.Config) {
				t.Helper()
				assert.Equal(t, "flag-app", cfg.AppID)
				assert.Equal(t, "https://local.services.meridian.dev", cfg.BaseURL)
				assert.Equal(t, zapcore.WarnLevel, cfg.ParsedLogLevel)
				assert.Equal(t, "/all/flags/output", cfg.OutputPath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temporary directory and config file.
			tempDir := t.TempDir()
			configPath := filepath.Join(tempDir, "test-config.yaml")

			err := os.WriteFile(
				configPath,
				[]byte(testBaseConfigContent),
				constants.DefaultFilePermissions,
			) //nolint:gosec // It's a test file.
			require.NoError(t, err)

			// Load configuration.
			cfg, err := config.LoadConfig(configPath)
			require.NoError(t, err)

			// Create a test command with the same flags as the root command.
			testCmd := &cobra.Command{Use: "test"}
			testCmd.Flags().StringP("app-id", "a", "", "application ID")
			testCmd.Flags().StringP("base-url", "b", "", "base URL")
			testCmd.Flags().StringP("log-level", "l", "", "log level")
			testCmd.Flags().StringP("output", "o", "", "output directory")

			// Set flag values.
			for flagName, flagValue := range tt.flags {
				require.NoError(t, testCmd.Flags().Set(flagName, flagValue),
					"failed to set flag %s", flagName)
			}

			// Bind flags to config.
			err = bindFlagsToConfig(testCmd.Flags(), cfg)
			require.NoError(t, err)

			// Verify expectations.
			tt.expectedConfig(t, cfg)
		})
	}
}

// TestFlagOverrides_InvalidValues tests that invalid flag values are caught during validation.
//
//nolint:nolintlint,tparallel // Cannot run in parallel due to Viper global state.
func TestFlagOverrides_InvalidValues(t *testing.T) {
	invalidTests := []struct {
		name      string
		flagName  string
		flagValue string
		wantErr   error
	}{
		{
			name:      "unknown log level",
			flagName:  "log-level",
			flagValue: "loud",
			wantErr:   config.ErrUnknownLogLevel,
		},
		{
			name:      "relative base URL",
			flagName:  "base-url",
			flagValue: "/not/absolute",
			wantErr:   config.ErrInvalidBaseURL,
		},
	}

	for _, tt := range invalidTests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temporary directory and config file.
			tempDir := t.TempDir()
			configPath := filepath.Join(tempDir, "test-config.yaml")

			err := os.WriteFile(
				configPath,
				[]byte(testBaseConfigContent),
				constants.DefaultFilePermissions,
			) //nolint:gosec // It's a test file.
			require.NoError(t, err)

			// Load configuration.
			cfg, err := config.LoadConfig(configPath)
			require.NoError(t, err)

			// Create a test command with flags.
			testCmd := &cobra.Command{Use: "test"}
			testCmd.Flags().StringP("base-url", "b", "", "base URL")
			testCmd.Flags().StringP("log-level", "l", "", "log level")

			// Set the flag.
			require.NoError(t, testCmd.Flags().Set(tt.flagName, tt.flagValue))

			// Bind flags to config - this should fail validation.
			err = bindFlagsToConfig(testCmd.Flags(), cfg)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestBindFlagsToConfig_EmptyFlagSet tests handling of an empty flag set.
func TestBindFlagsToConfig_EmptyFlagSet(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		AppID:              "test-app",
		AuthToken:          "test_token",
		LogLevel:           "info",
		RetryAttemptsCount: 3,
		MinRetryPause:      "1s",
		MaxRetryPause:      "3s",
	}

	// Create an empty flag set.
	emptyFlags := pflag.NewFlagSet("test", pflag.ContinueOnError)

	// Calling with an empty flag set should just validate the config.
	err := bindFlagsToConfig(emptyFlags, cfg)
	require.NoError(t, err)
}
