// Package session models the active user session and the accessor
// through which other components observe it.
package session

//go:generate $MOCKGEN -source=session.go -destination=mocks/session_mock.go

// User represents an authenticated user session.
type User struct {
	// AccessToken is the bearer token sent as Authorization.
	AccessToken string
	// Headers is the header context contributed by this session.
	Headers map[string]string
}

// Provider supplies the currently active user session.
type Provider interface {
	// CurrentUser returns the active session, or nil when nobody is logged in.
	CurrentUser() *User
}

// StaticProvider is a Provider backed by a session fixed at construction time.
type StaticProvider struct {
	user *User
}

// NewStaticProvider creates a provider for the given token and session headers.
// An empty token yields an anonymous provider whose CurrentUser returns nil.
func NewStaticProvider(accessToken string, headers map[string]string) Provider {
	if accessToken == "" {
		return &StaticProvider{}
	}

	return &StaticProvider{
		user: &User{
			AccessToken: accessToken,
			Headers:     headers,
		},
	}
}

// CurrentUser returns the active session, or nil for anonymous providers.
func (p *StaticProvider) CurrentUser() *User {
	return p.user
}
