package locator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStaticResolver tests the StaticResolver implementation.
func TestStaticResolver(t *testing.T) {
	t.Parallel()

	resolver := NewStaticResolver("http://host:1337")
	assert.Implements(t, (*Resolver)(nil), resolver)

	base, err := resolver.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "http://host:1337", base)
}

// TestServiceResolver_Resolve tests hostname resolution against a discovery server.
func TestServiceResolver_Resolve(t *testing.T) {
	t.Parallel()

	var requestCount atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount.Add(1)

		assert.Equal(t, "/api/client/v1/app/demo-app/location", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Location{
			Hostname:        "https://eu-west.meridian.dev",
			WSHostname:      "wss://eu-west.meridian.dev",
			Region:          "eu-west",
			DeploymentModel: "GLOBAL",
		})
	}))
	defer server.Close()

	resolver, err := NewServiceResolver(server.Client(), server.URL, "demo-app")
	require.NoError(t, err)

	ctx := context.Background()

	base, err := resolver.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://eu-west.meridian.dev", base)

	// Second resolution is served from the cache.
	base, err = resolver.Resolve(ctx)
	require.NoError(t, err)
	assert.Equal(t, "https://eu-west.meridian.dev", base)
	assert.Equal(t, int64(1), requestCount.Load())
}

// TestServiceResolver_ResolveErrors tests error handling during resolution.
func TestServiceResolver_ResolveErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		handler       http.HandlerFunc
		expectedError error
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			expectedError: ErrUnexpectedHTTPStatus,
		},
		{
			name: "empty hostname",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_ = json.NewEncoder(w).Encode(Location{})
			},
			expectedError: ErrEmptyHostname,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(tt.handler)
			defer server.Close()

			resolver, err := NewServiceResolver(server.Client(), server.URL, "demo-app")
			require.NoError(t, err)

			_, err = resolver.Resolve(context.Background())
			require.ErrorIs(t, err, tt.expectedError)
		})
	}
}

// TestServiceResolver_ResolveInvalidJSON tests decoding failures.
func TestServiceResolver_ResolveInvalidJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	resolver, err := NewServiceResolver(server.Client(), server.URL, "demo-app")
	require.NoError(t, err)

	_, err = resolver.Resolve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode location response")
}
