package client

import (
	"github.com/fivetwenty-io/dispatch/internal/http"
	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

// Client implements the dispatch.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string

	projects *ProjectsClient
	users    *UsersClient
	apiKeys  *APIKeysClient
	files    *FilesClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *dispatch.Config) []http.Option {
	var httpOpts []http.Option

	if config.Token != "" {
		httpOpts = append(httpOpts, http.WithToken(config.Token))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.Timeout))
	}

	if config.Credentials != "" {
		httpOpts = append(httpOpts, http.WithCredentials(config.Credentials))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.RateLimit > 0 {
		httpOpts = append(httpOpts, http.WithRateLimit(config.RateLimit, config.RateBurst))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	return httpOpts
}

// New creates a client from an already normalized config.
func New(config *dispatch.Config) (*Client, error) {
	if config == nil || config.BaseURL == "" {
		return nil, dispatch.ErrBaseURLRequired
	}

	httpClient := http.NewClient(config.BaseURL, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    httpClient.BaseURL(),
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.projects = NewProjectsClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.apiKeys = NewAPIKeysClient(c.httpClient)
	c.files = NewFilesClient(c.httpClient)
}

// BaseURL returns the API origin the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Projects implements dispatch.Client.Projects.
func (c *Client) Projects() dispatch.ProjectsClient {
	return c.projects
}

// Users implements dispatch.Client.Users.
func (c *Client) Users() dispatch.UsersClient {
	return c.users
}

// APIKeys implements dispatch.Client.APIKeys.
func (c *Client) APIKeys() dispatch.APIKeysClient {
	return c.apiKeys
}

// Files implements dispatch.Client.Files.
func (c *Client) Files() dispatch.FilesClient {
	return c.files
}
