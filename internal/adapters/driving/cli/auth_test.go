package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
)

func withAuthService(t *testing.T, s *mockAuthService) {
	t.Helper()
	old := authService
	authService = s
	t.Cleanup(func() {
		authService = old
		resetFlags(authLoginCmd)
	})
}

func TestAuthCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range authCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.ElementsMatch(t, []string{"login", "whoami", "logout"}, names)
}

func TestAuthLoginCmd_WithFlags(t *testing.T) {
	mock := &mockAuthService{user: &domain.User{ID: 7, FirstName: "Ada", LastName: "Admin"}}
	withAuthService(t, mock)

	out, err := executeCommand("auth", "login", "--domain", "demo.church.tools", "--token", "secret")

	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"demo.church.tools", "secret"}}, mock.loginCalls)
	assert.Contains(t, out, "Logged in as Ada Admin (id 7)")
}

func TestAuthLoginCmd_PromptsForToken(t *testing.T) {
	mock := &mockAuthService{user: &domain.User{ID: 1, FirstName: "Ada"}}
	withAuthService(t, mock)
	oldStdin := stdin
	stdin = strings.NewReader("prompted-token\n")
	defer func() { stdin = oldStdin }()

	out, err := executeCommand("auth", "login")

	require.NoError(t, err)
	assert.Contains(t, out, "Login token: ")
	require.Len(t, mock.loginCalls, 1)
	assert.Equal(t, "", mock.loginCalls[0][0])
	assert.Equal(t, "prompted-token", mock.loginCalls[0][1])
}

func TestAuthLoginCmd_Rejected(t *testing.T) {
	withAuthService(t, &mockAuthService{err: domain.ErrAuthInvalid})

	_, err := executeCommand("auth", "login", "--token", "wrong")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "token rejected")
}

func TestAuthWhoAmICmd(t *testing.T) {
	withAuthService(t, &mockAuthService{user: &domain.User{ID: 3, FirstName: "Ben", LastName: "Berg", Email: "ben@example.org"}})

	out, err := executeCommand("auth", "whoami")

	require.NoError(t, err)
	assert.Contains(t, out, "Ben Berg (id 3) <ben@example.org>")
}

func TestAuthWhoAmICmd_NotLoggedIn(t *testing.T) {
	withAuthService(t, &mockAuthService{err: domain.ErrAuthRequired})

	_, err := executeCommand("auth", "whoami")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
}

func TestAuthLogoutCmd(t *testing.T) {
	mock := &mockAuthService{}
	withAuthService(t, mock)

	out, err := executeCommand("auth", "logout")

	require.NoError(t, err)
	assert.True(t, mock.loggedOut)
	assert.Contains(t, out, "Logged out.")
}

func TestAuthCmd_ErrorsWithoutService(t *testing.T) {
	old := authService
	authService = nil
	defer func() { authService = old }()

	for _, sub := range []string{"login", "whoami", "logout"} {
		_, err := executeCommand("auth", sub)
		require.Error(t, err, sub)
		assert.Contains(t, err.Error(), "not configured")
	}
}
