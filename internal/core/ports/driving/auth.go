package driving

import (
	"context"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
)

// AuthService manages the login token.
type AuthService interface {
	// Login validates the token against the platform and stores it.
	Login(ctx context.Context, domainURL, token string) (*domain.User, error)

	// WhoAmI returns the currently authenticated account.
	WhoAmI(ctx context.Context) (*domain.User, error)

	// Logout removes the stored token.
	Logout() error
}
