package auth

import (
	"context"
	"os"
	"strings"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driven"
)

// EnvToken overrides the configured token.
const EnvToken = "CHURCHTOOLS_TOKEN"

// Ensure ConfigTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*ConfigTokenProvider)(nil)

// ConfigTokenProvider reads the login token from the environment or the
// config store. The token is looked up on every call so a login in the
// same process takes effect immediately.
type ConfigTokenProvider struct {
	store  driven.ConfigStore
	getenv func(string) string
}

// NewConfigTokenProvider creates a token provider backed by the config store.
func NewConfigTokenProvider(store driven.ConfigStore) *ConfigTokenProvider {
	return &ConfigTokenProvider{store: store, getenv: os.Getenv}
}

func (p *ConfigTokenProvider) lookup() string {
	if token := strings.TrimSpace(p.getenv(EnvToken)); token != "" {
		return token
	}
	if p.store == nil {
		return ""
	}
	return strings.TrimSpace(p.store.GetString(driven.KeyToken))
}

// GetToken returns the login token.
// Returns domain.ErrAuthRequired if no token is configured.
func (p *ConfigTokenProvider) GetToken(_ context.Context) (string, error) {
	token := p.lookup()
	if token == "" {
		return "", domain.ErrAuthRequired
	}
	return token, nil
}

// IsAuthenticated returns true if a token is configured.
func (p *ConfigTokenProvider) IsAuthenticated() bool {
	return p.lookup() != ""
}
