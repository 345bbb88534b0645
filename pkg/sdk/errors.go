package sdk

import (
	"errors"
	"fmt"
)

// ErrUnavailable signals the service reported itself unhealthy.
var ErrUnavailable = errors.New("service unavailable")

// APIError is a structured error response from the service.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("triage api: %s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// IsClientError reports whether the failure was caused by the request
// (4xx) rather than the service.
func (e *APIError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}
