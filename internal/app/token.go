package app

import (
	"context"

	"github.com/meridianhq/meridian-cli/internal/config"
	"github.com/meridianhq/meridian-cli/internal/logger"
)

// ExecuteTokenCommand persists a bearer token into the configuration file.
func ExecuteTokenCommand(ctx context.Context, cfg *config.Config, token string) {
	cfg.AuthToken = token

	if err := config.SaveConfig(cfg); err != nil {
		logger.Fatalf(ctx, "Failed to save configuration: %v", err)
	}

	logger.Info(ctx, "Token saved. Requests will now be sent with your credentials.")
}
