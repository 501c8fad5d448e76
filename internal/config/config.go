// Package config loads, validates, and persists the application configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/meridianhq/meridian-cli/internal/constants"
	"github.com/meridianhq/meridian-cli/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// AppID identifies the application on the Meridian backend.
	// It is used for base-URL discovery and as the composer identifier.
	AppID string `mapstructure:"app_id"`
	// DiscoveryURL is the host queried for base-URL resolution.
	DiscoveryURL string `mapstructure:"discovery_url"`
	// BaseURL, when set, skips discovery and is used as the API base directly.
	BaseURL string `mapstructure:"base_url"`
	// AuthToken is the bearer token for the current session.
	// An empty token means requests are sent anonymously.
	AuthToken string `mapstructure:"auth_token"`
	// SessionHeaders are headers contributed by the user session tier.
	SessionHeaders map[string]string `mapstructure:"session_headers"`
	// RequestHeaders are headers applied to every request (app tier).
	RequestHeaders map[string]string `mapstructure:"request_headers"`
	// UserAgent overrides the default User-Agent header.
	UserAgent string `mapstructure:"user_agent"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// RequestTimeout is the per-request timeout (e.g., "30s", "1m").
	RequestTimeout string `mapstructure:"request_timeout"`
	// RetryAttemptsCount is the number of attempts for throttled function calls.
	RetryAttemptsCount int64 `mapstructure:"retry_attempts_count"`
	// MinRetryPause is the minimum pause duration before retrying.
	MinRetryPause string `mapstructure:"min_retry_pause"`
	// MaxRetryPause is the maximum pause duration before retrying.
	MaxRetryPause string `mapstructure:"max_retry_pause"`
	// MaxLogLength caps the size of logged request/response dumps (e.g., "64KB").
	MaxLogLength string `mapstructure:"max_log_length"`
	// OutputPath is the directory path where downloaded assets are saved.
	OutputPath string `mapstructure:"output_path"`

	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedRequestTimeout is the parsed per-request timeout.
	ParsedRequestTimeout time.Duration
	// ParsedMinRetryPause is the parsed minimum retry pause duration.
	ParsedMinRetryPause time.Duration
	// ParsedMaxRetryPause is the parsed maximum retry pause duration.
	ParsedMaxRetryPause time.Duration
	// ParsedMaxLogLength is the parsed log dump cap in bytes.
	ParsedMaxLogLength uint64
}

const (
	// DefaultDiscoveryURL is the default host for base-URL discovery.
	DefaultDiscoveryURL = "https://services.meridian.dev"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".meridian.yaml"

	// DefaultRequestTimeout is used when request_timeout is not set.
	DefaultRequestTimeout = 60 * time.Second

	// DefaultMaxLogLength is the default maximum size (in bytes) for logged dumps.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB
)

// Static error definitions for better error handling.
var (
	// ErrMissingAppID indicates that neither app_id nor base_url is configured.
	ErrMissingAppID = errors.New("either app_id or base_url must be set")
	// ErrInvalidDiscoveryURL indicates that the discovery URL cannot be parsed.
	ErrInvalidDiscoveryURL = errors.New("invalid discovery URL")
	// ErrInvalidBaseURL indicates that the configured base URL cannot be parsed.
	ErrInvalidBaseURL = errors.New("invalid base URL")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is invalid.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrInvalidRetryAttempts indicates that the retry attempts count is invalid.
	ErrInvalidRetryAttempts = errors.New("retry attempts count must be a positive integer")
	// ErrInvalidMinRetryPause indicates that the min retry pause duration is invalid.
	ErrInvalidMinRetryPause = errors.New("min_retry_pause must be positive")
	// ErrInvalidMaxRetryPause indicates that the max retry pause duration is invalid.
	ErrInvalidMaxRetryPause = errors.New("max_retry_pause must be positive")
	// ErrMaxRetryPauseTooLow indicates that max_retry_pause is lower than min_retry_pause.
	ErrMaxRetryPauseTooLow = errors.New("max_retry_pause cannot be lower than min_retry_pause")
)

// LoadConfig loads configuration settings from a YAML file.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
//
//nolint:cyclop // Validation functions naturally have high complexity due to sequential checks.
func ValidateConfig(cfg *Config) error {
	var err error

	cfg.AppID = strings.TrimSpace(cfg.AppID)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)

	if cfg.AppID == "" && cfg.BaseURL == "" {
		return ErrMissingAppID
	}

	if cfg.DiscoveryURL == "" {
		cfg.DiscoveryURL = DefaultDiscoveryURL
	}

	if _, err = url.Parse(cfg.DiscoveryURL); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDiscoveryURL, cfg.DiscoveryURL)
	}

	if cfg.BaseURL != "" {
		parsed, parseErr := url.Parse(cfg.BaseURL)
		if parseErr != nil || !parsed.IsAbs() {
			return fmt.Errorf("%w: %s", ErrInvalidBaseURL, cfg.BaseURL)
		}
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedRequestTimeout = DefaultRequestTimeout
	if cfg.RequestTimeout != "" {
		cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
		if err != nil {
			return fmt.Errorf("failed to parse request timeout: %w", err)
		}

		if cfg.ParsedRequestTimeout <= 0 {
			return ErrInvalidRequestTimeout
		}
	}

	if cfg.RetryAttemptsCount <= 0 {
		return ErrInvalidRetryAttempts
	}

	cfg.ParsedMinRetryPause, err = time.ParseDuration(cfg.MinRetryPause)
	if err != nil {
		return fmt.Errorf("failed to parse min retry pause: %w", err)
	}

	if cfg.ParsedMinRetryPause <= 0 {
		return ErrInvalidMinRetryPause
	}

	cfg.ParsedMaxRetryPause, err = time.ParseDuration(cfg.MaxRetryPause)
	if err != nil {
		return fmt.Errorf("failed to parse max retry pause: %w", err)
	}

	if cfg.ParsedMaxRetryPause <= 0 {
		return ErrInvalidMaxRetryPause
	}

	if cfg.ParsedMaxRetryPause < cfg.ParsedMinRetryPause {
		return ErrMaxRetryPauseTooLow
	}

	cfg.ParsedMaxLogLength = DefaultMaxLogLength
	if cfg.MaxLogLength != "" {
		cfg.ParsedMaxLogLength, err = humanize.ParseBytes(cfg.MaxLogLength)
		if err != nil {
			return fmt.Errorf("failed to parse max log length: %w", err)
		}
	}

	return nil
}

// SaveConfig saves the configuration to the file while preserving the original format and order.
// Currently only the auth_token value is written back.
func SaveConfig(cfg *Config) error {
	configFile := getConfigFilePath()

	// Read the original file content.
	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cfg.AuthToken, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Update the auth_token value in the node tree.
	updateAuthTokenInNode(&node, cfg.AuthToken)

	// Marshal back to YAML (preserves order).
	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getConfigFilePath returns the config file path from viper or the default.
func getConfigFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return DefaultConfigFilename
	}

	return configFile
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile, authToken string, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// File doesn't exist, create it with viper.
	viper.Set("auth_token", authToken)

	if err = viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// updateAuthTokenInNode updates the auth_token value in the YAML node tree.
func updateAuthTokenInNode(node *yaml.Node, authToken string) {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return
	}

	mapNode := node.Content[0]

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		if keyNode.Value == "auth_token" {
			// Update the value while preserving style.
			valueNode.Value = authToken

			// Ensure it's quoted if it contains special characters.
			if valueNode.Style == 0 {
				valueNode.Style = yaml.DoubleQuotedStyle
			}

			break
		}
	}
}
