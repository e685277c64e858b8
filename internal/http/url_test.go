package http_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dispatchhttp "github.com/fivetwenty-io/dispatch/internal/http"
	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

func TestBuildURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		path     string
		query    dispatch.Query
		expected string
	}{
		{
			name:     "no query",
			path:     "/widgets",
			expected: "https://api.example.com/api/v1/widgets",
		},
		{
			name:     "empty query adds nothing",
			path:     "/widgets/",
			query:    dispatch.Query{},
			expected: "https://api.example.com/api/v1/widgets/",
		},
		{
			name:     "identifier query",
			path:     "/widgets/",
			query:    dispatch.NewQuery("q", "abc-123"),
			expected: "https://api.example.com/api/v1/widgets/?q=abc-123",
		},
		{
			name:     "numeric string identifier is untouched",
			path:     "/widgets/",
			query:    dispatch.NewQuery("q", "42"),
			expected: "https://api.example.com/api/v1/widgets/?q=42",
		},
		{
			name:     "path with existing query",
			path:     "/widgets?sort=name",
			query:    dispatch.NewQuery("page", "2"),
			expected: "https://api.example.com/api/v1/widgets?sort=name&page=2",
		},
		{
			name:     "reserved characters are encoded",
			path:     "/search",
			query:    dispatch.NewQuery("term", "a b&c=d/e?f#g"),
			expected: "https://api.example.com/api/v1/search?term=a+b%26c%3Dd%2Fe%3Ff%23g",
		},
		{
			name:     "safe characters are not encoded",
			path:     "/search",
			query:    dispatch.NewQuery("k", "A-z_0.9~"),
			expected: "https://api.example.com/api/v1/search?k=A-z_0.9~",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := dispatchhttp.BuildURL("https://api.example.com", testCase.path, testCase.query)
			assert.Equal(t, testCase.expected, got)
			assert.Equal(t, got, dispatchhttp.BuildURL("https://api.example.com", testCase.path, testCase.query))
		})
	}
}

func TestQueryRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []map[string]string{
		{"q": "abc-123"},
		{"empty": ""},
		{"space": "two words", "plus": "1+1", "amp": "a&b"},
		{"reserved": ":/?#[]@!$&'()*+,;=", "percent": "100%"},
		{"unicode": "héllo wörld", "emoji": "✓"},
		{"": "empty key"},
	}

	for _, input := range inputs {
		query := dispatch.Query{}
		for key, value := range input {
			query = query.Add(key, value)
		}

		parsed, err := url.ParseQuery(query.Encode())
		require.NoError(t, err)

		reconstructed := make(map[string]string, len(parsed))
		for key, values := range parsed {
			require.Len(t, values, 1)
			reconstructed[key] = values[0]
		}

		assert.Equal(t, input, reconstructed)
	}
}
