package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driven"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driving"
	"github.com/rh4001/ChurchToolsAPI/internal/logger"
)

// Ensure AuthService implements the interface.
var _ driving.AuthService = (*AuthService)(nil)

// ClientFactory creates a directory client for an explicit domain and token.
type ClientFactory func(domainURL, token string) driven.DirectoryClient

// AuthService validates and stores the login token.
type AuthService struct {
	config    driven.ConfigStore
	directory driven.DirectoryClient
	newClient ClientFactory
}

// NewAuthService creates a new auth service. directory answers WhoAmI for
// the stored credentials; newClient validates credentials before storing them.
func NewAuthService(config driven.ConfigStore, directory driven.DirectoryClient, newClient ClientFactory) *AuthService {
	return &AuthService{
		config:    config,
		directory: directory,
		newClient: newClient,
	}
}

// Login validates the token against the platform and stores both the
// domain and the token. An empty domainURL keeps the configured domain.
func (s *AuthService) Login(ctx context.Context, domainURL, token string) (*domain.User, error) {
	if s.config == nil || s.newClient == nil {
		return nil, domain.ErrNotImplemented
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", domain.ErrInvalidInput)
	}
	domainURL = strings.TrimSpace(domainURL)
	if domainURL == "" {
		domainURL = s.config.GetString(driven.KeyDomain)
	}
	if domainURL == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrConfigMissing, driven.KeyDomain)
	}

	user, err := s.newClient(domainURL, token).WhoAmI(ctx)
	if err != nil {
		return nil, fmt.Errorf("validate token: %w", err)
	}

	if err := s.config.Set(driven.KeyDomain, domainURL); err != nil {
		return nil, fmt.Errorf("store domain: %w", err)
	}
	if err := s.config.Set(driven.KeyToken, token); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	logger.Info("Logged in as %s %s", user.FirstName, user.LastName)
	return user, nil
}

// WhoAmI returns the account of the stored credentials.
func (s *AuthService) WhoAmI(ctx context.Context) (*domain.User, error) {
	if s.directory == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.directory.WhoAmI(ctx)
}

// Logout removes the stored token.
func (s *AuthService) Logout() error {
	if s.config == nil {
		return domain.ErrNotImplemented
	}
	return s.config.Set(driven.KeyToken, "")
}
