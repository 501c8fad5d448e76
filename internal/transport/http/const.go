package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// DefaultUserAgent is the fallback User-Agent string used
	// when no user agent is configured.
	DefaultUserAgent = "meridian-cli"
)
