package http

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDInjector is a custom http.RoundTripper that stamps each outgoing
// request with a unique X-Request-ID header, so client-side and server-side
// logs for the same request can be correlated.
type RequestIDInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
}

// requestIDHeader is the HTTP header name carrying the request ID.
const requestIDHeader = "X-Request-ID"

// NewRequestIDInjector creates and returns a new instance of RequestIDInjector.
func NewRequestIDInjector(next http.RoundTripper) http.RoundTripper {
	return &RequestIDInjector{next: next}
}

// RoundTrip executes a single HTTP transaction and injects a request ID if it is missing.
// It implements the http.RoundTripper interface.
func (t *RequestIDInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(requestIDHeader) == "" {
		req.Header.Set(requestIDHeader, uuid.NewString())
	}

	return t.next.RoundTrip(req)
}
