package meridian

import "io"

// FetchJSONResult wraps a decoded JSON payload together with the HTTP status code,
// so callers can make retry decisions on failures.
type FetchJSONResult[T any] struct {
	// Data is the decoded payload, nil when the call failed.
	Data *T
	// StatusCode is the HTTP status code of the response.
	StatusCode int
}

// PingResponse represents the response structure of the health-check endpoint.
type PingResponse struct {
	// Status is "ok" when the deployment is healthy.
	Status string `json:"status"`
}

// AppMetadata represents the application deployment metadata.
type AppMetadata struct {
	// ClientAppID is the public application identifier.
	ClientAppID string `json:"client_app_id"`
	// Name is the human-readable application name.
	Name string `json:"name"`
	// Region is the deployment region serving the application.
	Region string `json:"region"`
	// DeploymentModel distinguishes global from local deployments.
	DeploymentModel string `json:"deployment_model"`
}

// UserProfile represents the authenticated user's profile information.
type UserProfile struct {
	// UserID is the unique user identifier.
	UserID string `json:"user_id"`
	// Type is the user type, e.g. "normal" or "server".
	Type string `json:"type"`
	// Identities lists the authentication identities linked to the user.
	Identities []*UserIdentity `json:"identities"`
	// Data carries provider-specific profile fields.
	Data map[string]any `json:"data"`
}

// UserIdentity represents one authentication identity of a user.
type UserIdentity struct {
	// ID is the identity identifier.
	ID string `json:"id"`
	// ProviderType names the authentication provider.
	ProviderType string `json:"provider_type"`
}

// CallFunctionRequest is the payload for the function-call endpoint.
type CallFunctionRequest struct {
	// Name is the server-side function name.
	Name string `json:"name"`
	// Arguments are the positional function arguments.
	Arguments []any `json:"arguments"`
}

// DownloadAssetResult carries a streaming asset download.
type DownloadAssetResult struct {
	// Body streams the asset content; the caller must close it.
	Body io.ReadCloser
	// TotalBytes is the content length, or -1 when unknown.
	TotalBytes int64
}
