package meridian

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/meridianhq/meridian-cli/internal/composer"
	"github.com/meridianhq/meridian-cli/internal/config"
	"github.com/meridianhq/meridian-cli/internal/logger"
	"github.com/meridianhq/meridian-cli/internal/utils"
)

// Client defines the interface for interacting with the Meridian API.
type Client interface {
	// Ping checks that the deployment serving the application is healthy.
	Ping(ctx context.Context) error
	// GetAppMetadata retrieves the application deployment metadata.
	GetAppMetadata(ctx context.Context) (*AppMetadata, error)
	// GetUserProfile retrieves the authenticated user's profile information.
	GetUserProfile(ctx context.Context) (*UserProfile, error)
	// CallFunction invokes a server-side function with positional arguments.
	CallFunction(ctx context.Context, name string, arguments []any) (any, error)
	// Fetch sends a raw request through the composer and returns the raw response.
	Fetch(ctx context.Context, request *composer.Request) (*composer.Response, error)
	// Query runs a GraphQL query against the application's GraphQL endpoint.
	Query(ctx context.Context, query string, variables map[string]any) (map[string]any, error)
	// DownloadAsset downloads an asset, returning a streaming body and total size.
	DownloadAsset(ctx context.Context, assetURL string) (*DownloadAssetResult, error)
}

// ClientImpl implements the Client interface for interacting with the Meridian API.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// composer builds and sends JSON API requests.
	composer *composer.Composer
	// httpClient is the decorated HTTP client shared with the composer's transport.
	// It backs the GraphQL client and raw asset downloads.
	httpClient *http.Client
	// graphQL lazily constructs the GraphQL client once the base URL is known.
	graphQL graphQLClientCell
}

// NewClient creates and returns a new instance of ClientImpl.
func NewClient(cfg *config.Config, requestComposer *composer.Composer, httpClient *http.Client) Client {
	return &ClientImpl{
		cfg:        cfg,
		composer:   requestComposer,
		httpClient: httpClient,
	}
}

// Ping checks that the deployment serving the application is healthy.
func (c *ClientImpl) Ping(ctx context.Context) error {
	_, err := fetchJSON[PingResponse](c, ctx, &composer.Request{URL: meridianAPIPingURI})

	return err
}

// GetAppMetadata retrieves the application deployment metadata.
func (c *ClientImpl) GetAppMetadata(ctx context.Context) (*AppMetadata, error) {
	result, err := fetchJSON[AppMetadata](c, ctx, &composer.Request{URL: meridianAPIAppMetadataURI})
	if err != nil {
		return nil, err
	}

	return result.Data, nil
}

// GetUserProfile retrieves the authenticated user's profile information.
func (c *ClientImpl) GetUserProfile(ctx context.Context) (*UserProfile, error) {
	result, err := fetchJSON[UserProfile](c, ctx, &composer.Request{URL: meridianAPIProfileURI})
	if err != nil {
		return nil, err
	}

	return result.Data, nil
}

// CallFunction invokes a server-side function with positional arguments.
// Throttled calls (HTTP 429) are retried with a randomized pause,
// up to the configured number of attempts.
func (c *ClientImpl) CallFunction(ctx context.Context, name string, arguments []any) (any, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyFunctionName
	}

	request := &composer.Request{
		Method: http.MethodPost,
		URL:    meridianAPIFunctionsCallURI,
		Body: &CallFunctionRequest{
			Name:      name,
			Arguments: arguments,
		},
	}

	var result *FetchJSONResult[any]

	for i := int64(0); i < c.cfg.RetryAttemptsCount; i++ {
		fetchResult, err := fetchJSON[any](c, ctx, request)
		if err == nil {
			result = fetchResult

			break
		}

		// Retry only on throttling.
		if i < c.cfg.RetryAttemptsCount-1 && fetchResult != nil && fetchResult.StatusCode == http.StatusTooManyRequests {
			logger.Infof(ctx, "Retrying function %q due to throttling (%d attempts left): %v",
				name, c.cfg.RetryAttemptsCount-i-1, err)
			utils.RandomPause(c.cfg.ParsedMinRetryPause, c.cfg.ParsedMaxRetryPause)

			continue
		}

		return nil, err
	}

	if result == nil || result.Data == nil {
		return nil, ErrFailedToCallFunction
	}

	return *result.Data, nil
}

// Fetch sends a raw request through the composer and returns the raw response.
func (c *ClientImpl) Fetch(ctx context.Context, request *composer.Request) (*composer.Response, error) {
	return c.composer.Fetch(ctx, request)
}

// DownloadAsset downloads an asset, returning a streaming body and total size.
// Relative asset URLs are joined against the resolved base URL.
func (c *ClientImpl) DownloadAsset(ctx context.Context, assetURL string) (*DownloadAssetResult, error) {
	parsed, err := url.Parse(assetURL)
	if err != nil {
		return nil, fmt.Errorf("invalid asset URL: %w", err)
	}

	if !parsed.IsAbs() {
		base, baseErr := c.composer.BaseURL(ctx)
		if baseErr != nil {
			return nil, baseErr
		}

		assetURL, err = url.JoinPath(base, assetURL)
		if err != nil {
			return nil, fmt.Errorf("failed to join asset URL: %w", err)
		}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, http.NoBody)
	if err != nil {
		return nil, err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusPartialContent {
		response.Body.Close() //nolint:errcheck,gosec // Error on close is not critical here.

		return nil, fmt.Errorf("%w: %d", composer.ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	return &DownloadAssetResult{
		Body:       response.Body,
		TotalBytes: response.ContentLength,
	}, nil
}

//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func fetchJSON[T any](c *ClientImpl, ctx context.Context, request *composer.Request) (*FetchJSONResult[T], error) {
	response, err := c.composer.Fetch(ctx, request)
	if err != nil {
		// Non-2xx responses still carry a status code useful for retry decisions.
		if response == nil {
			return nil, err
		}

		return &FetchJSONResult[T]{
			Data:       nil,
			StatusCode: response.StatusCode,
		}, err
	}

	var result T
	if err = response.JSON(&result); err != nil {
		return &FetchJSONResult[T]{
			Data:       nil,
			StatusCode: response.StatusCode,
		}, err
	}

	return &FetchJSONResult[T]{
		Data:       &result,
		StatusCode: response.StatusCode,
	}, nil
}
