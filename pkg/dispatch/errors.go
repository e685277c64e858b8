package dispatch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned when the server answered but the answer is a failure:
// a non-2xx status, or a 2xx status without a JSON content type on a call that
// expects a decoded value.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int `json:"status"`
	// Message is the HTTP status phrase, e.g. "Not Found".
	Message string `json:"message"`
	// Body is the decoded JSON error body. It is nil when the response did not
	// declare a JSON content type.
	Body interface{} `json:"body,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// HasBody reports whether a decoded body is attached.
func (e *APIError) HasBody() bool {
	return e.Body != nil
}

// CanceledError is returned when the request was cut short before a response
// arrived, either by the caller's context or by the client's default timeout.
type CanceledError struct {
	// Cause is the reason supplied by whichever source fired first.
	Cause error
	// Err is the error reported by the transport, if the request was issued.
	Err error
}

// Error implements the error interface.
func (e *CanceledError) Error() string {
	return fmt.Sprintf("request canceled: %v", e.Cause)
}

// Unwrap exposes both the cause and the transport error to errors.Is and errors.As.
func (e *CanceledError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Cause}
	}

	return []error{e.Cause, e.Err}
}

// ErrRequestTimeout is the cancellation cause used when the client's default
// timeout fires before the caller's context.
var ErrRequestTimeout = fmt.Errorf("request timed out: %w", context.DeadlineExceeded)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrBaseURLRequired    = errors.New("base URL is required")
	ErrInsecureBaseURL    = errors.New("base URL must use https (set AllowInsecure for local development)")
	ErrNoHostInURL        = errors.New("no host specified in URL")
	ErrInvalidConfig      = errors.New("invalid config")
	ErrInvalidQueryFilter = errors.New("invalid query filter")
	ErrInvalidRequest     = errors.New("invalid request")
)

// IsAPIError reports whether err carries an *APIError.
func IsAPIError(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr)
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an
// *APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

// IsConflict checks if the error is a conflict error.
func IsConflict(err error) bool {
	return StatusCode(err) == http.StatusConflict
}

// IsCanceled reports whether the request was canceled or timed out before a
// response arrived.
func IsCanceled(err error) bool {
	var canceledErr *CanceledError

	return errors.As(err, &canceledErr)
}

// IsTimeout reports whether the client's default timeout canceled the request.
func IsTimeout(err error) bool {
	var canceledErr *CanceledError
	if !errors.As(err, &canceledErr) {
		return false
	}

	return errors.Is(canceledErr.Cause, ErrRequestTimeout)
}
