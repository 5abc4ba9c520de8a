package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rh4001/ChurchToolsAPI/internal/adapters/driven/storage/memory"
	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driven"
)

type clientCall struct {
	domainURL string
	token     string
}

func recordingFactory(directory *mockDirectory, calls *[]clientCall) ClientFactory {
	return func(domainURL, token string) driven.DirectoryClient {
		*calls = append(*calls, clientCall{domainURL, token})
		return directory
	}
}

func TestAuthService_Login(t *testing.T) {
	config := memory.NewConfigStore()
	user := &domain.User{ID: 7, FirstName: "Ada", LastName: "Admin"}
	var calls []clientCall
	service := NewAuthService(config, nil, recordingFactory(&mockDirectory{user: user}, &calls))

	got, err := service.Login(context.Background(), " https://demo.church.tools ", " secret ")
	require.NoError(t, err)

	assert.Equal(t, user, got)
	assert.Equal(t, []clientCall{{"https://demo.church.tools", "secret"}}, calls)
	assert.Equal(t, "https://demo.church.tools", config.GetString(driven.KeyDomain))
	assert.Equal(t, "secret", config.GetString(driven.KeyToken))
}

func TestAuthService_Login_ConfiguredDomain(t *testing.T) {
	config := memory.NewConfigStore(map[string]any{driven.KeyDomain: "demo.church.tools"})
	var calls []clientCall
	service := NewAuthService(config, nil, recordingFactory(&mockDirectory{user: &domain.User{}}, &calls))

	_, err := service.Login(context.Background(), "", "secret")
	require.NoError(t, err)
	assert.Equal(t, "demo.church.tools", calls[0].domainURL)
}

func TestAuthService_Login_Errors(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		service := NewAuthService(memory.NewConfigStore(), nil, recordingFactory(&mockDirectory{}, new([]clientCall)))
		_, err := service.Login(context.Background(), "demo.church.tools", "  ")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("no domain", func(t *testing.T) {
		service := NewAuthService(memory.NewConfigStore(), nil, recordingFactory(&mockDirectory{}, new([]clientCall)))
		_, err := service.Login(context.Background(), "", "secret")
		assert.ErrorIs(t, err, domain.ErrConfigMissing)
	})

	t.Run("rejected token is not stored", func(t *testing.T) {
		config := memory.NewConfigStore()
		directory := &mockDirectory{err: domain.ErrAuthInvalid}
		service := NewAuthService(config, nil, recordingFactory(directory, new([]clientCall)))

		_, err := service.Login(context.Background(), "demo.church.tools", "wrong")
		assert.ErrorIs(t, err, domain.ErrAuthInvalid)
		assert.Empty(t, config.GetString(driven.KeyToken))
		assert.Empty(t, config.GetString(driven.KeyDomain))
	})

	t.Run("no factory", func(t *testing.T) {
		service := NewAuthService(memory.NewConfigStore(), nil, nil)
		_, err := service.Login(context.Background(), "demo.church.tools", "secret")
		assert.ErrorIs(t, err, domain.ErrNotImplemented)
	})
}

func TestAuthService_WhoAmI(t *testing.T) {
	user := &domain.User{ID: 1, Email: "ada@example.org"}
	service := NewAuthService(nil, &mockDirectory{user: user}, nil)

	got, err := service.WhoAmI(context.Background())
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = NewAuthService(nil, nil, nil).WhoAmI(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}

func TestAuthService_Logout(t *testing.T) {
	config := memory.NewConfigStore(map[string]any{driven.KeyToken: "secret"})
	service := NewAuthService(config, nil, nil)

	require.NoError(t, service.Logout())
	assert.Empty(t, config.GetString(driven.KeyToken))
}
