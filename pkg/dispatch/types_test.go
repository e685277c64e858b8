package dispatch_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

func TestQuery_Encode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    dispatch.Query
		expected string
	}{
		{name: "nil", query: nil, expected: ""},
		{name: "insertion order", query: dispatch.NewQuery("zeta", "1", "alpha", "2"), expected: "zeta=1&alpha=2"},
		{name: "reserved characters", query: dispatch.NewQuery("q", "a b&c=d"), expected: "q=a+b%26c%3Dd"},
		{name: "repeated key", query: dispatch.NewQuery("tag", "x").Add("tag", "y"), expected: "tag=x&tag=y"},
		{name: "trailing key", query: dispatch.NewQuery("flag"), expected: "flag="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.query.Encode())
		})
	}
}

func TestQuery_Values(t *testing.T) {
	t.Parallel()

	values := dispatch.NewQuery("tag", "x", "tag", "y", "q", "1").Values()
	assert.Equal(t, url.Values{"tag": {"x", "y"}, "q": {"1"}}, values)

	query := dispatch.QueryFromValues(values)
	assert.Equal(t, "q=1&tag=x&tag=y", query.Encode())
}

func TestQueryFromStruct(t *testing.T) {
	t.Parallel()

	query, err := dispatch.QueryFromStruct(&dispatch.ProjectSearch{Name: "apollo", Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, "limit=5&name=apollo", query.Encode())

	query, err = dispatch.QueryFromStruct(dispatch.ProjectSearch{})
	require.NoError(t, err)
	assert.Empty(t, query)

	_, err = dispatch.QueryFromStruct("not a struct")
	require.ErrorIs(t, err, dispatch.ErrInvalidQueryFilter)
}
