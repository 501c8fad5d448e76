package composer

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Request describes a single API call before header composition.
type Request struct {
	// Method is the HTTP method; GET is assumed when empty.
	Method string
	// URL is either absolute or a path joined against the resolved base URL.
	URL string
	// Headers is the per-call header context, the highest regular precedence tier.
	Headers map[string]string
	// Body is JSON-serialized into the request body when non-nil.
	Body any
}

// Descriptor is the fully composed request handed to the Transport.
// Headers are final and the body, if any, is already serialized.
type Descriptor struct {
	// Method is the HTTP method.
	Method string
	// URL is the absolute request URL.
	URL string
	// Headers is the merged header mapping.
	Headers map[string]string
	// Body is the serialized JSON body, or nil.
	Body []byte
}

// Response is the raw transport response.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers http.Header
	// Body is the raw response payload.
	Body []byte
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}

	return nil
}
