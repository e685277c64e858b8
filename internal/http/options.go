package http

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/fivetwenty-io/dispatch/pkg/dispatch"
)

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer credential sent on every JSON request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithTimeout sets the default per-request timeout. Zero disables it.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithCredentials sets the cookie forwarding mode (omit, same-origin, include).
func WithCredentials(mode string) Option {
	return func(c *Client) {
		c.credentials = mode
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger.
func WithLogger(logger dispatch.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithRateLimit limits the client to limit requests per second with the given
// burst. A non-positive limit disables limiting.
func WithRateLimit(limit float64, burst int) Option {
	return func(c *Client) {
		if limit <= 0 {
			c.limiter = nil

			return
		}

		if burst <= 0 {
			burst = 1
		}

		c.limiter = rate.NewLimiter(rate.Limit(limit), burst)
	}
}

// WithInterceptors runs chain around every JSON request.
func WithInterceptors(chain *dispatch.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithHTTPClient replaces the underlying net/http client. The client is copied;
// its cookie jar is replaced according to the credentials mode.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.baseHTTPClient = httpClient
	}
}
