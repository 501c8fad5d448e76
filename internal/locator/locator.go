// Package locator resolves the base URL for Meridian API requests.
// Deployments are region-sharded, so clients first ask the discovery host
// where an application lives and then talk to the returned hostname.
package locator

//go:generate $MOCKGEN -source=locator.go -destination=mocks/locator_mock.go

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/meridianhq/meridian-cli/internal/logger"
)

// Resolver supplies the base URL used for API requests.
type Resolver interface {
	// Resolve returns the base URL. Implementations may block on network I/O;
	// callers are expected to memoize the result.
	Resolve(ctx context.Context) (string, error)
}

const (
	// locationURI is the URI path prefix for the location endpoint.
	locationURI = "api/client/v1/app"
	// locationURISuffix is the final segment of the location endpoint.
	locationURISuffix = "location"

	// hostnameCacheSize bounds the resolved-hostname cache.
	// A process rarely talks to more than a handful of applications.
	hostnameCacheSize = 16
)

// Static error definitions for better error handling.
var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
	// ErrEmptyHostname indicates that the discovery response carried no hostname.
	ErrEmptyHostname = errors.New("location response contains no hostname")
)

// Location is the discovery endpoint response.
type Location struct {
	// Hostname is the base URL for HTTP API requests.
	Hostname string `json:"hostname"`
	// WSHostname is the base URL for websocket connections.
	WSHostname string `json:"ws_hostname"`
	// Region is the deployment region serving the application.
	Region string `json:"region"`
	// DeploymentModel distinguishes global from local deployments.
	DeploymentModel string `json:"deployment_model"`
}

// StaticResolver always resolves to a fixed base URL.
type StaticResolver struct {
	baseURL string
}

// NewStaticResolver creates a resolver that returns baseURL unchanged.
func NewStaticResolver(baseURL string) Resolver {
	return &StaticResolver{baseURL: baseURL}
}

// Resolve returns the fixed base URL.
func (r *StaticResolver) Resolve(_ context.Context) (string, error) {
	return r.baseURL, nil
}

// ServiceResolver resolves the base URL by querying the discovery host.
// Resolved hostnames are kept in an LRU cache keyed by application ID,
// so resolvers sharing a cache avoid repeated discovery round trips.
type ServiceResolver struct {
	httpClient   *http.Client
	discoveryURL string
	appID        string
	cache        *lru.Cache[string, string]
}

// NewServiceResolver creates a resolver for the given application ID.
func NewServiceResolver(httpClient *http.Client, discoveryURL, appID string) (Resolver, error) {
	cache, err := lru.New[string, string](hostnameCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create hostname cache: %w", err)
	}

	return &ServiceResolver{
		httpClient:   httpClient,
		discoveryURL: discoveryURL,
		appID:        appID,
		cache:        cache,
	}, nil
}

// Resolve queries the discovery host for the application's hostname.
func (r *ServiceResolver) Resolve(ctx context.Context) (string, error) {
	if hostname, ok := r.cache.Get(r.appID); ok {
		logger.Debugf(ctx, "Hostname cache hit for app ID: %s", r.appID)

		return hostname, nil
	}

	route, err := url.JoinPath(r.discoveryURL, locationURI, r.appID, locationURISuffix)
	if err != nil {
		return "", fmt.Errorf("failed to build location URL: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	if err != nil {
		return "", err
	}

	response, err := r.httpClient.Do(request)
	if err != nil {
		return "", err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	var location Location
	if err = json.NewDecoder(response.Body).Decode(&location); err != nil {
		return "", fmt.Errorf("failed to decode location response: %w", err)
	}

	if location.Hostname == "" {
		return "", ErrEmptyHostname
	}

	r.cache.Add(r.appID, location.Hostname)

	logger.Debugf(ctx, "Resolved app %s to %s (region: %s)", r.appID, location.Hostname, location.Region)

	return location.Hostname, nil
}
