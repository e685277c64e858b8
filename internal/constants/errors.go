package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIConfigured  = errors.New("no API endpoint configured, use 'dispatch login --api <url>'")
	ErrNotAuthenticated = errors.New("not authenticated, use 'dispatch login' first")
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrEmptyToken       = errors.New("token must not be empty")
)

// Operation errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrInvalidKeyValue     = errors.New("expected KEY=VALUE")
	ErrNotRegularFile      = errors.New("path is not a regular file")
)

// Cancellation causes.
var (
	ErrInterrupted = errors.New("interrupted by signal")
)
