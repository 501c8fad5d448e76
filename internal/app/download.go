package app

import (
	"context"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/meridianhq/meridian-cli/internal/config"
	"github.com/meridianhq/meridian-cli/internal/constants"
	"github.com/meridianhq/meridian-cli/internal/logger"
)

const defaultAssetFilename = "asset" + constants.ExtensionBin

// ExecuteDownloadCommand downloads an asset to the configured output directory.
func ExecuteDownloadCommand(ctx context.Context, cfg *config.Config, assetURL string) {
	client, err := newAPIClient(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize API client: %v", err)
	}

	result, err := client.DownloadAsset(ctx, assetURL)
	if err != nil {
		logger.Fatalf(ctx, "Failed to download asset: %v", err)
	}

	defer result.Body.Close() //nolint:errcheck // Error on close is not critical here.

	targetPath := AssetFilename(assetURL)

	if cfg.OutputPath != "" {
		if err = os.MkdirAll(cfg.OutputPath, constants.DefaultFolderPermissions); err != nil {
			logger.Fatalf(ctx, "Failed to create output directory: %v", err)
		}

		targetPath = filepath.Join(cfg.OutputPath, targetPath)
	}

	f, err := os.OpenFile(filepath.Clean(targetPath),
		os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.DefaultFilePermissions)
	if err != nil {
		logger.Fatalf(ctx, "Failed to create file: %v", err)
	}

	defer f.Close() //nolint:errcheck // Error on close is not critical here.

	// Progress bars are suppressed in debug mode to keep the log readable.
	var writer io.Writer = f

	if logger.Level() == zap.InfoLevel {
		bar := progressbar.DefaultBytes(
			result.TotalBytes,
			"Downloading",
		)

		writer = io.MultiWriter(f, bar)
	}

	bytesWritten, err := io.Copy(writer, result.Body)
	if err != nil {
		logger.Fatalf(ctx, "Failed to write file: %v", err)
	}

	logger.Infof(ctx, "Saved %s to %s", humanize.Bytes(uint64(bytesWritten)), targetPath)
}

// AssetFilename derives a local filename from the asset URL path.
func AssetFilename(assetURL string) string {
	parsed, err := url.Parse(assetURL)
	if err != nil {
		return defaultAssetFilename
	}

	name := path.Base(parsed.Path)
	if name == "." || name == "/" || name == "" {
		return defaultAssetFilename
	}

	return name
}
