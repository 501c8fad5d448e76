package composer

//go:generate $MOCKGEN -source=composer.go -destination=mocks/composer_mock.go

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/meridianhq/meridian-cli/internal/locator"
	"github.com/meridianhq/meridian-cli/internal/logger"
	"github.com/meridianhq/meridian-cli/internal/session"
)

// Transport performs the actual network send for a composed request.
type Transport interface {
	// Send transmits the descriptor and returns the raw response.
	// Implementations must return an error for transport failures
	// and for statuses outside the 2xx range.
	Send(ctx context.Context, descriptor *Descriptor) (*Response, error)
}

// Header names and values used during composition.
const (
	headerAccept        = "Accept"
	headerContentType   = "Content-Type"
	headerAuthorization = "Authorization"

	mimeTypeJSON = "application/json"
	bearerPrefix = "Bearer "
)

// Config carries the dependencies for NewComposer.
type Config struct {
	// Name identifies the composer, usually the application ID.
	Name string
	// Transport performs network sends.
	Transport Transport
	// Sessions supplies the currently active user session.
	Sessions session.Provider
	// BaseURL resolves the API base URL; the result is memoized.
	BaseURL locator.Resolver
	// Headers is the constructor-level header context. Optional.
	Headers map[string]string
}

// Composer merges header contexts in a fixed precedence order,
// attaches the session bearer token, and delegates sending to the transport.
// Composers are stateless between calls except for the memoized base URL.
type Composer struct {
	name      string
	transport Transport
	sessions  session.Provider
	headers   map[string]string
	baseURL   *resolvedBaseURL
}

// resolvedBaseURL memoizes a single base-URL resolution.
// The cell is shared between a composer and its clones, so the resolver
// runs at most once for the whole family; concurrent callers block on
// the same in-flight resolution instead of triggering duplicate work.
type resolvedBaseURL struct {
	resolver locator.Resolver
	once     sync.Once
	url      string
	err      error
}

func (r *resolvedBaseURL) get(ctx context.Context) (string, error) {
	r.once.Do(func() {
		r.url, r.err = r.resolver.Resolve(ctx)
	})

	return r.url, r.err
}

// NewComposer creates a new composer from the given configuration.
// It fails fast when a required dependency is missing.
func NewComposer(cfg Config) (*Composer, error) {
	switch {
	case strings.TrimSpace(cfg.Name) == "":
		return nil, ErrEmptyName
	case cfg.Transport == nil:
		return nil, ErrNilTransport
	case cfg.Sessions == nil:
		return nil, ErrNilSessionProvider
	case cfg.BaseURL == nil:
		return nil, ErrNilBaseURLResolver
	}

	return &Composer{
		name:      cfg.Name,
		transport: cfg.Transport,
		sessions:  cfg.Sessions,
		// Copy so later mutation of the caller's map cannot leak into the composer.
		headers: mergeHeaderContexts(cfg.Headers),
		baseURL: &resolvedBaseURL{resolver: cfg.BaseURL},
	}, nil
}

// CloneOverrides adjusts a derived composer.
type CloneOverrides struct {
	// Headers are merged over the parent's header context and win on key collision.
	Headers map[string]string
}

// Clone returns a new composer that shares the transport, session provider,
// and base-URL resolution state with the parent. The override headers are
// merged over the parent's header context; the parent is not modified.
func (c *Composer) Clone(overrides CloneOverrides) *Composer {
	return &Composer{
		name:      c.name,
		transport: c.transport,
		sessions:  c.sessions,
		headers:   mergeHeaderContexts(c.headers, overrides.Headers),
		baseURL:   c.baseURL,
	}
}

// Name returns the composer identifier.
func (c *Composer) Name() string {
	return c.name
}

// BaseURL returns the resolved base URL, triggering resolution on first use.
func (c *Composer) BaseURL(ctx context.Context) (string, error) {
	base, err := c.baseURL.get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to resolve base URL: %w", err)
	}

	return base, nil
}

// Fetch composes a single request and sends it through the transport,
// returning the raw response. Transport errors are propagated unmodified;
// no retries happen at this layer.
func (c *Composer) Fetch(ctx context.Context, request *Request) (*Response, error) {
	target, err := c.resolveTarget(ctx, request.URL)
	if err != nil {
		return nil, err
	}

	method := request.Method
	if method == "" {
		method = http.MethodGet
	}

	var body []byte
	if request.Body != nil {
		body, err = json.Marshal(request.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize request body: %w", err)
		}
	}

	descriptor := &Descriptor{
		Method:  method,
		URL:     target,
		Headers: c.composeHeaders(request, request.Body != nil),
		Body:    body,
	}

	logger.Debugf(ctx, "Composer %q sending %s %s", c.name, descriptor.Method, descriptor.URL)

	return c.transport.Send(ctx, descriptor)
}

// FetchJSON behaves like Fetch but guarantees the returned value
// is the parsed JSON response body.
func (c *Composer) FetchJSON(ctx context.Context, request *Request) (any, error) {
	response, err := c.Fetch(ctx, request)
	if err != nil {
		return nil, err
	}

	var result any
	if err = response.JSON(&result); err != nil {
		return nil, err
	}

	return result, nil
}

// resolveTarget returns the absolute request URL, joining relative URLs
// against the memoized base URL.
func (c *Composer) resolveTarget(ctx context.Context, target string) (string, error) {
	parsed, err := url.Parse(target)
	if err != nil {
		return "", fmt.Errorf("invalid request URL: %w", err)
	}

	if parsed.IsAbs() {
		return target, nil
	}

	base, err := c.BaseURL(ctx)
	if err != nil {
		return "", err
	}

	joined, err := url.JoinPath(base, target)
	if err != nil {
		return "", fmt.Errorf("failed to join request URL: %w", err)
	}

	return joined, nil
}

// composeHeaders merges the header tiers in ascending precedence:
// baseline, constructor-level context, session context, per-call headers.
// The session bearer token is applied last, unless the per-call headers
// already carry an explicit Authorization value.
func (c *Composer) composeHeaders(request *Request, hasBody bool) map[string]string {
	baseline := map[string]string{headerAccept: mimeTypeJSON}
	if hasBody {
		baseline[headerContentType] = mimeTypeJSON
	}

	user := c.sessions.CurrentUser()

	var sessionHeaders map[string]string
	if user != nil {
		sessionHeaders = user.Headers
	}

	merged := mergeHeaderContexts(baseline, c.headers, sessionHeaders, request.Headers)

	if user != nil {
		if _, overridden := request.Headers[headerAuthorization]; !overridden {
			merged[headerAuthorization] = bearerPrefix + user.AccessToken
		}
	}

	return merged
}

// mergeHeaderContexts folds the given header contexts left to right.
// Later contexts win outright on key collision; distinct keys are unioned.
// The result is always a fresh map.
func mergeHeaderContexts(contexts ...map[string]string) map[string]string {
	merged := make(map[string]string)

	for _, headers := range contexts {
		for key, value := range headers {
			merged[key] = value
		}
	}

	return merged
}
