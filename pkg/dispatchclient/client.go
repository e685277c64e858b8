package dispatchclient

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fivetwenty-io/dispatch/internal/client"
	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

var validate = validator.New()

// New creates a new API client. config is copied, so later changes to it do
// not affect the client.
func New(config *dispatch.Config) (dispatch.Client, error) {
	if config == nil {
		return nil, dispatch.ErrConfigRequired
	}

	normalized := *config

	baseURL, err := normalizeBaseURL(normalized.BaseURL, normalized.AllowInsecure)
	if err != nil {
		return nil, err
	}

	normalized.BaseURL = baseURL

	err = validate.Struct(&normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dispatch.ErrInvalidConfig, err)
	}

	apiClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithToken creates a new client with a base URL and bearer token.
func NewWithToken(baseURL, token string) (dispatch.Client, error) {
	return New(&dispatch.Config{
		BaseURL: baseURL,
		Token:   token,
	})
}

// normalizeBaseURL trims the trailing slash, defaults the scheme to https and
// rejects plain http unless allowInsecure is set.
func normalizeBaseURL(baseURL string, allowInsecure bool) (string, error) {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return "", dispatch.ErrBaseURLRequired
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", dispatch.ErrInvalidConfig, err)
	}

	if parsed.Host == "" {
		return "", dispatch.ErrNoHostInURL
	}

	if parsed.Scheme == "http" && !allowInsecure {
		return "", dispatch.ErrInsecureBaseURL
	}

	return baseURL, nil
}
