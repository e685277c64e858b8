// Package http is the request dispatcher: it turns calls into JSON HTTP
// requests against the API and turns responses into decoded values or typed
// errors.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"

	"github.com/fivetwenty-io/dispatch/internal/cancel"
	"github.com/fivetwenty-io/dispatch/internal/constants"
	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

// ErrRateLimitExceeded is returned when the limiter can never admit a request.
var ErrRateLimitExceeded = errors.New("rate limit cannot admit request")

// Client dispatches requests to the API. Its configuration is fixed at
// construction, so one Client can serve any number of concurrent calls.
type Client struct {
	baseURL        string
	token          string
	timeout        time.Duration
	credentials    string
	userAgent      string
	logger         dispatch.Logger
	debug          bool
	limiter        *rate.Limiter
	interceptors   *dispatch.InterceptorChain
	baseHTTPClient *http.Client
	httpClient     *retryablehttp.Client
}

// RawRequest is a request sent by Raw. Headers and body are used as given.
type RawRequest struct {
	Method string
	Path   string
	Query  dispatch.Query
	Header http.Header
	Body   io.Reader
}

// NewClient creates a new dispatcher for baseURL (no trailing slash).
func NewClient(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		timeout:     constants.DefaultHTTPTimeout,
		credentials: dispatch.CredentialsSameOrigin,
		userAgent:   constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.httpClient = client.newRetryableClient()

	return client
}

func (c *Client) newRetryableClient() *retryablehttp.Client {
	retryClient := retryablehttp.NewClient()

	if c.baseHTTPClient != nil {
		httpClient := *c.baseHTTPClient
		retryClient.HTTPClient = &httpClient
	}

	retryClient.HTTPClient.Jar = newJar(c.credentials, c.baseURL)

	// Calls are never retried; the first outcome is the result.
	retryClient.RetryMax = 0
	retryClient.CheckRetry = func(context.Context, *http.Response, error) (bool, error) {
		return false, nil
	}
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil

	if c.logger != nil {
		retryClient.Logger = &leveledLogger{logger: c.logger}
	}

	if c.logger != nil && c.debug {
		retryClient.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, _ int) {
			c.logger.Debug("HTTP Request", map[string]interface{}{
				"method": req.Method,
				"url":    req.URL.String(),
			})
		}
		retryClient.ResponseLogHook = func(_ retryablehttp.Logger, resp *http.Response) {
			c.logger.Debug("HTTP Response", map[string]interface{}{
				"method":      resp.Request.Method,
				"url":         resp.Request.URL.String(),
				"status_code": resp.StatusCode,
			})
		}
	}

	return retryClient
}

// BaseURL returns the configured origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the default per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// UserAgent returns the User-Agent sent with every request.
func (c *Client) UserAgent() string {
	return c.userAgent
}

// AuthorizationHeader returns the Authorization header value, or "" when no
// credential is configured. Raw callers set it themselves.
func (c *Client) AuthorizationHeader() string {
	if c.token == "" {
		return ""
	}

	return constants.BearerPrefix + c.token
}

// Get issues a GET and decodes the JSON response into out. A nil out ignores
// the success body.
func (c *Client) Get(ctx context.Context, path string, query dispatch.Query, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with body encoded as JSON. A nil body sends no body.
func (c *Client) Post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// PostWithQuery is Post with query parameters.
func (c *Client) PostWithQuery(ctx context.Context, path string, query dispatch.Query, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, query, body, out)
}

// Put issues a PUT with body encoded as JSON. A nil body sends no body.
func (c *Client) Put(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete issues a DELETE. The response body is never inspected on success.
func (c *Client) Delete(ctx context.Context, path string, query dispatch.Query) error {
	return c.do(ctx, http.MethodDelete, path, query, nil, nil)
}

// Raw builds the URL and sends the request as given: no headers are added,
// no default timeout is applied and the response is returned unread. The
// caller must close the response body.
func (c *Client) Raw(ctx context.Context, request *RawRequest) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, request.Method, BuildURL(c.baseURL, request.Path, request.Query), request.Body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if request.Header != nil {
		req.Header = request.Header.Clone()
	}

	//nolint:wrapcheck // transport errors are returned unmodified
	return c.httpClient.HTTPClient.Do(req)
}

func (c *Client) do(ctx context.Context, method, path string, query dispatch.Query, body interface{}, out interface{}) error {
	var payload []byte

	if !IsNil(body) {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}

		payload = encoded
	}

	ctx, cancelRequest := cancel.Compose(ctx, c.timeout)
	defer cancelRequest()

	if cause := cancel.Cause(ctx); cause != nil {
		return &dispatch.CanceledError{Cause: cause}
	}

	if c.limiter != nil {
		err := c.waitForLimiter(ctx)
		if err != nil {
			return err
		}
	}

	intercepted := &dispatch.Request{
		Method:  method,
		URL:     BuildURL(c.baseURL, path, query),
		Headers: c.headers(),
		Body:    payload,
	}

	if c.interceptors != nil {
		err := c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
		if err != nil {
			return err
		}
	}

	resp, respBody, err := c.send(ctx, intercepted)

	if c.interceptors != nil {
		observed := &dispatch.Response{Body: respBody, Error: err}
		if resp != nil {
			observed.StatusCode = resp.StatusCode
			observed.Headers = resp.Header
		}

		interceptErr := c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, observed)
		if err == nil && interceptErr != nil {
			return interceptErr
		}
	}

	if err != nil {
		return err
	}

	return interpret(resp, respBody, out)
}

// send transmits intercepted as the interceptors left it.
func (c *Client) send(ctx context.Context, intercepted *dispatch.Request) (*http.Response, []byte, error) {
	var rawBody interface{}
	if intercepted.Body != nil {
		rawBody = intercepted.Body
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, intercepted.Method, intercepted.URL, rawBody)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header = intercepted.Headers

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, c.canceled(ctx, err)
	}

	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, nil, c.canceled(ctx, fmt.Errorf("reading response body: %w", err))
	}

	return resp, respBody, nil
}

// waitForLimiter blocks until the limiter admits one request or ctx fires.
// A wait longer than the deadline ends when the deadline fires.
func (c *Client) waitForLimiter(ctx context.Context) error {
	reservation := c.limiter.Reserve()
	if !reservation.OK() {
		return ErrRateLimitExceeded
	}

	delay := reservation.Delay()
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		reservation.Cancel()

		return c.canceled(ctx, fmt.Errorf("waiting for rate limiter: %w", ctx.Err()))
	}
}

// canceled converts err into a *dispatch.CanceledError when ctx has fired.
// Any other error is returned unchanged.
func (c *Client) canceled(ctx context.Context, err error) error {
	cause := cancel.Cause(ctx)
	if cause == nil {
		return err
	}

	return &dispatch.CanceledError{Cause: cause, Err: err}
}

func (c *Client) headers() http.Header {
	header := make(http.Header)
	header.Set(constants.HeaderContentType, constants.ContentTypeJSON)
	header.Set("Accept", constants.ContentTypeJSON)
	header.Set(constants.HeaderUserAgent, c.userAgent)

	if auth := c.AuthorizationHeader(); auth != "" {
		header.Set(constants.HeaderAuthorization, auth)
	}

	return header
}

// IsNil reports whether body is nil or a nil pointer, map, or slice.
func IsNil(body interface{}) bool {
	if body == nil {
		return true
	}

	value := reflect.ValueOf(body)

	switch value.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return value.IsNil()
	default:
		return false
	}
}

