package auth

import (
	"context"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driven"
)

// Ensure StaticTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*StaticTokenProvider)(nil)

// StaticTokenProvider returns a fixed token. Used to validate a token
// before it is stored.
type StaticTokenProvider struct {
	token string
}

// NewStaticTokenProvider creates a token provider for a fixed token.
func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

// GetToken returns the token, or domain.ErrAuthRequired if it is empty.
func (p *StaticTokenProvider) GetToken(_ context.Context) (string, error) {
	if p.token == "" {
		return "", domain.ErrAuthRequired
	}
	return p.token, nil
}

// IsAuthenticated returns true if the token is not empty.
func (p *StaticTokenProvider) IsAuthenticated() bool {
	return p.token != ""
}
