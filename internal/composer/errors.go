package composer

import "errors"

var (
	// ErrEmptyName indicates that the composer was constructed without an identifier.
	ErrEmptyName = errors.New("composer name cannot be empty")
	// ErrNilTransport indicates that the composer was constructed without a transport.
	ErrNilTransport = errors.New("transport is required")
	// ErrNilSessionProvider indicates that the composer was constructed without a session provider.
	ErrNilSessionProvider = errors.New("session provider is required")
	// ErrNilBaseURLResolver indicates that the composer was constructed without a base-URL resolver.
	ErrNilBaseURLResolver = errors.New("base URL resolver is required")
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
)
