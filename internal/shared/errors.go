package shared

import (
	"fmt"
	"time"
)

var (
	// Configuration errors, fatal at startup
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")

	// Upstream errors, mapped to HTTP statuses by the server package
	ErrAuthFailed          = fmt.Errorf("authentication failed")
	ErrUnauthorized        = fmt.Errorf("unauthorized")
	ErrUpstreamUnavailable = fmt.Errorf("upstream unavailable")
	ErrRateLimited         = fmt.Errorf("rate limited")
	ErrNotFound            = fmt.Errorf("not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)

// RateLimitError wraps [ErrRateLimited] and carries the upstream's Retry-After
// hint. RetryAfter is zero when the upstream supplied no hint.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: retry after %s", e.RetryAfter)
	}
	return "rate limited"
}

func (e *RateLimitError) Unwrap() error {
	return ErrRateLimited
}
