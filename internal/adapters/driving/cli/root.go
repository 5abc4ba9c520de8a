// Package cli provides the churchtools command line interface.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driving"
	"github.com/rh4001/ChurchToolsAPI/internal/logger"
)

// Global flags.
var (
	verbose   bool
	configDir string
)

// Services used by the commands. Set by main before Execute.
var (
	authService      driving.AuthService
	phonebookService driving.PhonebookService
	calendarService  driving.CalendarService
	songService      driving.SongService
	fileService      driving.FileService
)

var rootCmd = &cobra.Command{
	Use:   "churchtools",
	Short: "Automations for the ChurchTools platform",
	Long: `churchtools automates recurring ChurchTools tasks: household phonebooks,
calendar imports from spreadsheets, song and file maintenance.

Log in once with 'churchtools auth login', then run any command.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if setup == nil {
			return nil
		}
		return setup(configDir)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.churchtools)")
}

// Execute runs the root command.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

// SetupFunc wires the services once the global flags are parsed.
type SetupFunc func(configDir string) error

var setup SetupFunc

// SetSetup registers the function that wires the services.
func SetSetup(fn SetupFunc) { setup = fn }

// SetAuthService sets the auth service.
func SetAuthService(s driving.AuthService) { authService = s }

// SetPhonebookService sets the phonebook service.
func SetPhonebookService(s driving.PhonebookService) { phonebookService = s }

// SetCalendarService sets the calendar import service.
func SetCalendarService(s driving.CalendarService) { calendarService = s }

// SetSongService sets the song service.
func SetSongService(s driving.SongService) { songService = s }

// SetFileService sets the file service.
func SetFileService(s driving.FileService) { fileService = s }
