package churchtools

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ChurchTools-specific errors.
var (
	// ErrNoDomain indicates the client was created without a base URL.
	ErrNoDomain = errors.New("churchtools: no domain configured")

	// ErrUnexpectedResponse indicates a response body that could not be decoded.
	ErrUnexpectedResponse = errors.New("churchtools: unexpected response")

	// ErrAjaxFailed indicates a legacy AJAX call reported a non-success status.
	ErrAjaxFailed = errors.New("churchtools: ajax call failed")
)

// RateLimitError represents a 429 response with the time requests may resume.
type RateLimitError struct {
	RetryAt time.Time
	URL     string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("churchtools: rate limit exceeded, retry at %s", e.RetryAt.Format(time.RFC3339))
}

// APIError represents a non-success API response.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("churchtools: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// IsNotFound checks if the error indicates a resource was not found.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error indicates an authentication failure.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error indicates a forbidden resource.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

func hasStatus(err error, status int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}
	return false
}
