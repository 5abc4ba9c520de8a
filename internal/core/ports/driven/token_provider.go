package driven

import "context"

// TokenProvider provides the login token for authenticated API calls.
type TokenProvider interface {
	// GetToken returns the login token.
	// Returns domain.ErrAuthRequired if none is configured.
	GetToken(ctx context.Context) (string, error)

	// IsAuthenticated returns true if a token is available.
	IsAuthenticated() bool
}
