package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates a required collaborator is not configured.
	ErrNotImplemented = errors.New("not implemented")

	// ErrConfigMissing indicates a required configuration value is unset.
	ErrConfigMissing = errors.New("configuration missing")

	// Authentication Errors.

	// ErrAuthRequired indicates no login token is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the login token was rejected.
	ErrAuthInvalid = errors.New("authentication invalid")

	// API Errors.

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrCalendarNotFound indicates a row names a calendar that does not exist.
	ErrCalendarNotFound = errors.New("calendar not found")

	// ErrUploadRejected indicates the server refused a file upload.
	ErrUploadRejected = errors.New("upload rejected")
)
