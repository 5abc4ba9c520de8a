package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rh4001/ChurchToolsAPI/internal/adapters/driven/table/csvtable"
	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
	"github.com/rh4001/ChurchToolsAPI/internal/logger"
)

var (
	calendarDryRun  bool
	calendarDefault string
	calendarWatch   bool
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Calendars and appointment imports",
}

var calendarListCmd = &cobra.Command{
	Use:   "list",
	Short: "List calendars",
	Args:  cobra.NoArgs,
	RunE:  runCalendarList,
}

var calendarImportCmd = &cobra.Command{
	Use:   "import [file.csv]",
	Short: "Create appointments from a spreadsheet",
	Long: `Create or update one appointment per row of a CSV file.

Columns (header names, case-insensitive):
  calendar     calendar name or ID (default: --calendar or import.default_calendar)
  title        appointment title (required)
  start, end   "2006-01-02 15:04", RFC3339 or a date; a date makes the appointment all-day
  address      free text, e.g. "Gemeindehaus, Waldweg 3, 45754 Timbuktu"
  subtitle, description, link, comment, allday, internal

The appointment ID and a status are written back into the id and status
columns, so running the import again updates instead of duplicating.
Rows with status "skip" are left alone.

Examples:
  churchtools calendar import termine.csv --dry-run
  churchtools calendar import termine.csv --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runCalendarImport,
}

func init() {
	calendarImportCmd.Flags().BoolVar(&calendarDryRun, "dry-run", false, "validate rows without creating appointments")
	calendarImportCmd.Flags().StringVar(&calendarDefault, "calendar", "", "calendar for rows without one")
	calendarImportCmd.Flags().BoolVarP(&calendarWatch, "watch", "w", false, "re-run the import whenever the file changes")

	calendarCmd.AddCommand(calendarListCmd)
	calendarCmd.AddCommand(calendarImportCmd)
	rootCmd.AddCommand(calendarCmd)
}

func runCalendarList(cmd *cobra.Command, _ []string) error {
	if calendarService == nil {
		return errors.New("calendar service not configured")
	}

	calendars, err := calendarService.Calendars(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list calendars: %w", err)
	}
	if len(calendars) == 0 {
		cmd.Println("No calendars.")
		return nil
	}

	rows := make([][]string, len(calendars))
	for i, c := range calendars {
		public := "no"
		if c.IsPublic {
			public = "yes"
		}
		rows[i] = []string{strconv.Itoa(c.ID), c.Name, public}
	}
	cmd.Println(renderTable([]string{"ID", "Name", "Public"}, rows))
	return nil
}

func runCalendarImport(cmd *cobra.Command, args []string) error {
	if calendarService == nil {
		return errors.New("calendar service not configured")
	}

	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	opts := calendarService.DefaultOptions()
	opts.DryRun = calendarDryRun
	if calendarDefault != "" {
		opts.DefaultCalendar = calendarDefault
	}

	runImport := func(ctx context.Context) error {
		report, err := calendarService.Import(ctx, csvtable.New(path), opts)
		if report != nil {
			printImportReport(cmd, report, opts.DryRun)
		}
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		return nil
	}

	if !calendarWatch {
		return runImport(cmd.Context())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runImport(ctx); err != nil {
		logger.Error("%v", err)
	}
	cmd.Printf("Watching %s for changes (Ctrl+C to stop)\n", path)
	return watchFile(ctx, path, watchDebounce, func() error {
		return runImport(ctx)
	})
}

func printImportReport(cmd *cobra.Command, report *domain.ImportReport, dryRun bool) {
	if dryRun {
		cmd.Printf("Dry run %s: %d rows, %d valid, %d skipped, %d failed\n",
			report.RunID, report.Total, report.Valid, report.Skipped, report.Failed)
	} else {
		cmd.Printf("Import %s: %d rows, %d created, %d updated, %d skipped, %d failed\n",
			report.RunID, report.Total, report.Created, report.Updated, report.Skipped, report.Failed)
	}
	for _, e := range report.Errors {
		cmd.Println(styles.Error.Render(fmt.Sprintf("  row %d: %v", e.Row, e.Err)))
	}
}
