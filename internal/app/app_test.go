package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseHeaderFlags tests parsing of "Name: value" header flags.
func TestParseHeaderFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		values   []string
		expected map[string]string
		wantErr  error
	}{
		{
			name:     "empty input",
			values:   nil,
			expected: nil,
		},
		{
			name:   "single header",
			values: []string{"X-Trace: abc"},
			expected: map[string]string{
				"X-Trace": "abc",
			},
		},
		{
			name:   "value with colon",
			values: []string{"Authorization: Bearer a:b:c"},
			expected: map[string]string{
				"Authorization": "Bearer a:b:c",
			},
		},
		{
			name:   "whitespace trimmed",
			values: []string{"  X-Env :  staging  "},
			expected: map[string]string{
				"X-Env": "staging",
			},
		},
		{
			name:    "missing colon",
			values:  []string{"not-a-header"},
			wantErr: ErrMalformedHeader,
		},
		{
			name:    "empty name",
			values:  []string{": value"},
			wantErr: ErrMalformedHeader,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			headers, err := ParseHeaderFlags(tc.values)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, headers)
		})
	}
}

// TestAssetFilename tests local filename derivation from asset URLs.
func TestAssetFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		assetURL string
		expected string
	}{
		{
			name:     "absolute URL with path",
			assetURL: "https://host.example/assets/report.bin",
			expected: "report.bin",
		},
		{
			name:     "relative path",
			assetURL: "/exports/data.json",
			expected: "data.json",
		},
		{
			name:     "no path",
			assetURL: "https://host.example",
			expected: defaultAssetFilename,
		},
		{
			name:     "trailing slash",
			assetURL: "https://host.example/assets/",
			expected: "assets",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, AssetFilename(tc.assetURL))
		})
	}
}
