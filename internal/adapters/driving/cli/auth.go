package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the ChurchTools login",
	Long: `Log in with a ChurchTools login token, show the current account, or log out.

The login token is found in ChurchTools under "Persönliche Einstellungen" >
"Berechtigungen" > "Login-Token". CHURCHTOOLS_TOKEN overrides the stored token.

Examples:
  # Prompt for the token
  churchtools auth login --domain https://demo.church.tools

  # Non-interactive
  churchtools auth login --domain demo.church.tools --token "$TOKEN"

  churchtools auth whoami`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Validate and store a login token",
	Args:  cobra.NoArgs,
	RunE:  runAuthLogin,
}

var authWhoAmICmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the authenticated account",
	Args:  cobra.NoArgs,
	RunE:  runAuthWhoAmI,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored login token",
	Args:  cobra.NoArgs,
	RunE:  runAuthLogout,
}

// Flags for auth login.
var (
	authLoginDomain string
	authLoginToken  string
)

func init() {
	authLoginCmd.Flags().StringVar(
		&authLoginDomain, "domain", "", "ChurchTools URL, e.g. https://demo.church.tools (default: configured domain)")
	authLoginCmd.Flags().StringVar(
		&authLoginToken, "token", "", "login token (prompted if not given)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authWhoAmICmd)
	authCmd.AddCommand(authLogoutCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	token := authLoginToken
	if token == "" {
		cmd.Print("Login token: ")
		token = readPassword()
		cmd.Println()
	}

	user, err := authService.Login(cmd.Context(), authLoginDomain, token)
	if err != nil {
		if errors.Is(err, domain.ErrAuthInvalid) {
			return errors.New("login failed: token rejected")
		}
		return fmt.Errorf("login failed: %w", err)
	}

	cmd.Printf("Logged in as %s\n", describeUser(user))
	return nil
}

func runAuthWhoAmI(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	user, err := authService.WhoAmI(cmd.Context())
	if err != nil {
		if errors.Is(err, domain.ErrAuthRequired) {
			return errors.New("not logged in, run 'churchtools auth login'")
		}
		return fmt.Errorf("whoami failed: %w", err)
	}

	cmd.Println(describeUser(user))
	return nil
}

func runAuthLogout(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}
	if err := authService.Logout(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	cmd.Println("Logged out.")
	return nil
}

func describeUser(u *domain.User) string {
	if u == nil {
		return "unknown user"
	}
	s := fmt.Sprintf("%s %s (id %d)", u.FirstName, u.LastName, u.ID)
	if u.Email != "" {
		s += " <" + u.Email + ">"
	}
	return s
}
