package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// validTestConfig returns a configuration that passes validation.
func validTestConfig() *Config {
	return &Config{
		AppID:              "demo-app",
		AuthToken:          "test_token",
		LogLevel:           "info",
		RequestTimeout:     "30s",
		RetryAttemptsCount: 3,
		MinRetryPause:      "1s",
		MaxRetryPause:      "3s",
	}
}

// TestLoadConfig tests the LoadConfig function.
//
//nolint:paralleltest // Not parallel because viper keeps global state.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name           string
		configFilename string
		configContent  string
		expectError    bool
		expectedError  string
	}{
		{
			name:           "valid config file",
			configFilename: "valid_config.yaml",
			configContent: `
app_id: "demo-app"
auth_token: "test_token"
log_level: "info"
request_timeout: "30s"
retry_attempts_count: 3
min_retry_pause: "1s"
max_retry_pause: "3s"
request_headers:
  X-Client-Name: "meridian-cli"
session_headers:
  X-Device-ID: "abc123"
`,
			expectError: false,
		},
		{
			name:           "non-existent file",
			configFilename: "non_existent.yaml",
			expectError:    true,
			expectedError:  "failed to read config from file",
		},
		{
			name:           "invalid yaml",
			configFilename: "invalid_config.yaml",
			configContent:  "app_id: [unclosed",
			expectError:    true,
			expectedError:  "failed to read config from file",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, tt.configFilename)

			if tt.configContent != "" {
				require.NoError(t, os.WriteFile(path, []byte(tt.configContent), 0o644))
			}

			cfg, err := LoadConfig(path)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "demo-app", cfg.AppID)
			assert.Equal(t, "test_token", cfg.AuthToken)
			assert.Equal(t, "meridian-cli", cfg.RequestHeaders["X-Client-Name"])
			assert.Equal(t, "abc123", cfg.SessionHeaders["X-Device-ID"])
		})
	}
}

// TestValidateConfig tests the ValidateConfig function.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		mutate        func(cfg *Config)
		expectedError error
	}{
		{
			name:          "valid config",
			mutate:        func(_ *Config) {},
			expectedError: nil,
		},
		{
			name: "base URL without app ID",
			mutate: func(cfg *Config) {
				cfg.AppID = ""
				cfg.BaseURL = "http://localhost:1337"
			},
			expectedError: nil,
		},
		{
			name: "missing app ID and base URL",
			mutate: func(cfg *Config) {
				cfg.AppID = ""
				cfg.BaseURL = ""
			},
			expectedError: ErrMissingAppID,
		},
		{
			name: "relative base URL",
			mutate: func(cfg *Config) {
				cfg.BaseURL = "/relative/path"
			},
			expectedError: ErrInvalidBaseURL,
		},
		{
			name: "unknown log level",
			mutate: func(cfg *Config) {
				cfg.LogLevel = "loud"
			},
			expectedError: ErrUnknownLogLevel,
		},
		{
			name: "negative request timeout",
			mutate: func(cfg *Config) {
				cfg.RequestTimeout = "-5s"
			},
			expectedError: ErrInvalidRequestTimeout,
		},
		{
			name: "zero retry attempts",
			mutate: func(cfg *Config) {
				cfg.RetryAttemptsCount = 0
			},
			expectedError: ErrInvalidRetryAttempts,
		},
		{
			name: "negative min retry pause",
			mutate: func(cfg *Config) {
				cfg.MinRetryPause = "-1s"
			},
			expectedError: ErrInvalidMinRetryPause,
		},
		{
			name: "max retry pause below min",
			mutate: func(cfg *Config) {
				cfg.MinRetryPause = "5s"
				cfg.MaxRetryPause = "1s"
			},
			expectedError: ErrMaxRetryPauseTooLow,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validTestConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)
			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)

				return
			}

			require.NoError(t, err)
		})
	}
}

// TestValidateConfigDerivedFields tests that validation fills derived fields.
func TestValidateConfigDerivedFields(t *testing.T) {
	t.Parallel()

	cfg := validTestConfig()
	cfg.MaxLogLength = "64KB"

	require.NoError(t, ValidateConfig(cfg))

	assert.Equal(t, DefaultDiscoveryURL, cfg.DiscoveryURL)
	assert.Equal(t, zapcore.InfoLevel, cfg.ParsedLogLevel)
	assert.Equal(t, 30*time.Second, cfg.ParsedRequestTimeout)
	assert.Equal(t, time.Second, cfg.ParsedMinRetryPause)
	assert.Equal(t, 3*time.Second, cfg.ParsedMaxRetryPause)
	assert.Equal(t, uint64(64*1000), cfg.ParsedMaxLogLength)
}

// TestValidateConfigDefaults tests default fallbacks for optional fields.
func TestValidateConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := validTestConfig()
	cfg.RequestTimeout = ""
	cfg.MaxLogLength = ""

	require.NoError(t, ValidateConfig(cfg))

	assert.Equal(t, DefaultRequestTimeout, cfg.ParsedRequestTimeout)
	assert.Equal(t, uint64(DefaultMaxLogLength), cfg.ParsedMaxLogLength)
}
