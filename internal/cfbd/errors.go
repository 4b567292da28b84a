// Package cfbd fetches SP+ ratings and betting lines from the
// CollegeFootballData API and normalizes them into the domain types. All
// field-name normalization of the upstream JSON happens here; the model
// packages never see the provider's shapes.
package cfbd

import "errors"

// APIError represents errors from CollegeFootballData API operations.
type APIError struct {
	Endpoint string // API endpoint path
	Code     string // Error code (e.g., "rate_limit_exceeded")
	Message  string // Error message
	Err      error  // Underlying error
}

func (e APIError) Error() string {
	if e.Err != nil {
		return e.Endpoint + ": " + e.Code + ": " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Endpoint + ": " + e.Code + ": " + e.Message
}

func (e APIError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeRateLimitExceeded    = "rate_limit_exceeded"
	ErrCodeAuthenticationFailed = "authentication_failed"
	ErrCodeNotFound             = "not_found"
	ErrCodeInvalidData          = "invalid_data"
	ErrCodeNetworkError         = "network_error"
	ErrCodeServerError          = "server_error"
)

// Error constructors
var (
	ErrMissingToken = errors.New("bearer token is not configured")
)

// NewAPIError creates a new API error.
func NewAPIError(endpoint, code, message string, err error) APIError {
	return APIError{Endpoint: endpoint, Code: code, Message: message, Err: err}
}
