package app

import (
	"context"
	"fmt"

	"github.com/meridianhq/meridian-cli/internal/client/meridian"
	"github.com/meridianhq/meridian-cli/internal/composer"
	"github.com/meridianhq/meridian-cli/internal/config"
	"github.com/meridianhq/meridian-cli/internal/locator"
	"github.com/meridianhq/meridian-cli/internal/session"
	transport_http "github.com/meridianhq/meridian-cli/internal/transport/http"
	"github.com/meridianhq/meridian-cli/internal/utils"
	"github.com/meridianhq/meridian-cli/internal/version"
)

// newAPIClient assembles the full client stack from configuration:
// decorated HTTP transport, base-URL resolver, session provider,
// request composer, and finally the Meridian API client.
func newAPIClient(_ context.Context, cfg *config.Config) (meridian.Client, error) {
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "meridian-cli/" + version.Short()
	}

	transportClient := transport_http.NewClient(cfg, utils.NewSimpleUserAgentProvider(userAgent))

	baseURLResolver, err := newBaseURLResolver(cfg, transportClient)
	if err != nil {
		return nil, err
	}

	name := cfg.AppID
	if name == "" {
		name = cfg.BaseURL
	}

	requestComposer, err := composer.NewComposer(composer.Config{
		Name:      name,
		Transport: transportClient,
		Sessions:  session.NewStaticProvider(cfg.AuthToken, cfg.SessionHeaders),
		BaseURL:   baseURLResolver,
		Headers:   cfg.RequestHeaders,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize request composer: %w", err)
	}

	return meridian.NewClient(cfg, requestComposer, transportClient.HTTPClient()), nil
}

// newBaseURLResolver picks the resolver strategy:
// an explicit base URL wins over discovery by application ID.
func newBaseURLResolver(cfg *config.Config, transportClient *transport_http.Client) (locator.Resolver, error) {
	if cfg.BaseURL != "" {
		return locator.NewStaticResolver(cfg.BaseURL), nil
	}

	resolver, err := locator.NewServiceResolver(transportClient.HTTPClient(), cfg.DiscoveryURL, cfg.AppID)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize base URL resolver: %w", err)
	}

	return resolver, nil
}
