package dispatch

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/gorilla/schema"
)

// Param is a single query parameter.
type Param struct {
	Key   string
	Value string
}

// Query is an ordered list of query parameters. Encode keeps insertion order.
type Query []Param

// NewQuery builds a Query from alternating key/value strings. A trailing key
// without a value gets the empty string.
func NewQuery(pairs ...string) Query {
	query := make(Query, 0, (len(pairs)+1)/2)

	for i := 0; i < len(pairs); i += 2 {
		value := ""
		if i+1 < len(pairs) {
			value = pairs[i+1]
		}

		query = append(query, Param{Key: pairs[i], Value: value})
	}

	return query
}

// Add appends a parameter and returns the extended query.
func (q Query) Add(key, value string) Query {
	return append(q, Param{Key: key, Value: value})
}

// Encode percent-encodes the parameters in order, without a leading '?'.
func (q Query) Encode() string {
	var builder strings.Builder

	for i, param := range q {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(param.Key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(param.Value))
	}

	return builder.String()
}

// Values converts the query to url.Values.
func (q Query) Values() url.Values {
	values := make(url.Values, len(q))
	for _, param := range q {
		values.Add(param.Key, param.Value)
	}

	return values
}

// QueryFromValues converts url.Values to a Query with keys in sorted order.
func QueryFromValues(values url.Values) Query {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	query := make(Query, 0, len(keys))
	for _, key := range keys {
		for _, value := range values[key] {
			query = append(query, Param{Key: key, Value: value})
		}
	}

	return query
}

var queryEncoder = schema.NewEncoder()

// QueryFromStruct encodes a struct with `schema` tags into a Query with keys
// in sorted order. Fields tagged omitempty are dropped when zero.
func QueryFromStruct(filter interface{}) (Query, error) {
	values := make(map[string][]string)

	err := queryEncoder.Encode(filter, values)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQueryFilter, err)
	}

	return QueryFromValues(values), nil
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Cookie forwarding modes for Config.Credentials.
const (
	// CredentialsOmit never sends or stores cookies.
	CredentialsOmit = "omit"
	// CredentialsSameOrigin sends cookies only to the configured origin.
	CredentialsSameOrigin = "same-origin"
	// CredentialsInclude sends cookies to every host the client talks to.
	CredentialsInclude = "include"
)

// Config represents client configuration for building a dispatch.Client.
//
// BaseURL is normalized by dispatchclient.New: a trailing slash is trimmed and
// "https://" is added when no scheme is present. Plain http is rejected unless
// AllowInsecure is set.
//
// Timeout is the default per-request timeout. The context passed to each call
// is merged with it, so a caller deadline shorter than Timeout wins.
type Config struct {
	// BaseURL is the API origin, e.g. "https://api.example.com".
	BaseURL string `validate:"required,url"`
	// Token is sent as "Authorization: Bearer <token>" when non-empty.
	Token string
	// Timeout defaults to 30s when zero.
	Timeout time.Duration `validate:"gte=0"`
	// Credentials is the cookie forwarding mode: omit, same-origin, or include.
	// Empty means same-origin.
	Credentials string `validate:"omitempty,oneof=omit same-origin include"`
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger receives structured log lines from the HTTP layer.
	Logger Logger `validate:"-"`
	// RateLimit caps requests per second issued by this client. Zero disables it.
	RateLimit float64 `validate:"gte=0"`
	// RateBurst is the limiter burst size; defaults to 1 when RateLimit is set.
	RateBurst int `validate:"gte=0"`
	// AllowInsecure permits http:// base URLs. Intended for local development.
	AllowInsecure bool
	// Interceptors run around every JSON request.
	Interceptors *InterceptorChain `validate:"-"`
	// HTTPClient replaces the underlying net/http client.
	HTTPClient *http.Client `validate:"-"`
}
