package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/meridianhq/meridian-cli/internal/composer"
	"github.com/meridianhq/meridian-cli/internal/config"
	"github.com/meridianhq/meridian-cli/internal/utils"
)

// Client is the net/http realization of the composer's Transport.
// Its round-tripper chain stamps a request ID, injects the User-Agent,
// and logs traffic when debug logging is enabled.
type Client struct {
	// httpClient is the decorated HTTP client used for all sends.
	httpClient *http.Client
}

// NewClient creates a transport client from the application configuration.
func NewClient(cfg *config.Config, userAgentProvider utils.UserAgentProvider) *Client {
	httpClient := &http.Client{
		Transport: NewRequestIDInjector(
			NewUserAgentInjector(
				NewLogTransport(http.DefaultTransport, cfg.ParsedMaxLogLength),
				userAgentProvider)),
		Timeout: cfg.ParsedRequestTimeout,
	}

	return &Client{httpClient: httpClient}
}

// HTTPClient returns the underlying decorated http.Client for collaborators
// that need one directly, such as the GraphQL client and asset downloads.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Send implements composer.Transport.
// Statuses outside the 2xx range yield the response together with a wrapped
// composer.ErrUnexpectedHTTPStatus so callers can still inspect the payload.
func (c *Client) Send(ctx context.Context, descriptor *composer.Descriptor) (*composer.Response, error) {
	var bodyReader io.Reader = http.NoBody
	if descriptor.Body != nil {
		bodyReader = bytes.NewReader(descriptor.Body)
	}

	request, err := http.NewRequestWithContext(ctx, descriptor.Method, descriptor.URL, bodyReader)
	if err != nil {
		return nil, err
	}

	for key, value := range descriptor.Headers {
		request.Header.Set(key, value)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	payload, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	result := &composer.Response{
		StatusCode: response.StatusCode,
		Headers:    response.Header,
		Body:       payload,
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return result, fmt.Errorf("%w: %d", composer.ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	return result, nil
}
