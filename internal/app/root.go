package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/meridianhq/meridian-cli/internal/composer"
	"github.com/meridianhq/meridian-cli/internal/config"
	"github.com/meridianhq/meridian-cli/internal/logger"
)

// ErrMalformedHeader indicates a header flag that is not in "Name: value" form.
var ErrMalformedHeader = errors.New("malformed header, expected 'Name: value'")

// RootCommandOptions carries the flags of the root command.
type RootCommandOptions struct {
	// Method is the HTTP method, empty means GET.
	Method string
	// Data is the raw JSON request body, empty means no body.
	Data string
	// Headers are per-call headers in "Name: value" form.
	Headers []string
}

// ExecuteRootCommand sends a single request to the given API path
// and writes the response body to stdout.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config, path string, options *RootCommandOptions) {
	client, err := newAPIClient(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize API client: %v", err)
	}

	headers, err := ParseHeaderFlags(options.Headers)
	if err != nil {
		logger.Fatalf(ctx, "Failed to parse headers: %v", err)
	}

	var body any
	if options.Data != "" {
		if err = json.Unmarshal([]byte(options.Data), &body); err != nil {
			logger.Fatalf(ctx, "Request body is not valid JSON: %v", err)
		}
	}

	response, err := client.Fetch(ctx, &composer.Request{
		Method:  options.Method,
		URL:     path,
		Headers: headers,
		Body:    body,
	})
	if err != nil {
		logger.Fatalf(ctx, "Request failed: %v", err)
	}

	logger.Infof(ctx, "Received %d, %s",
		response.StatusCode, humanize.Bytes(uint64(len(response.Body))))

	_, _ = os.Stdout.Write(response.Body)

	if len(response.Body) > 0 && response.Body[len(response.Body)-1] != '\n' {
		fmt.Println()
	}
}

// ParseHeaderFlags converts "Name: value" flag values into a header map.
func ParseHeaderFlags(values []string) (map[string]string, error) {
	if len(values) == 0 {
		return nil, nil
	}

	headers := make(map[string]string, len(values))

	for _, value := range values {
		name, headerValue, found := strings.Cut(value, ":")
		if !found || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, value)
		}

		headers[strings.TrimSpace(name)] = strings.TrimSpace(headerValue)
	}

	return headers, nil
}
