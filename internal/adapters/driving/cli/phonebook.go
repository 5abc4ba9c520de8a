package cli

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
)

// Output formats of the phonebook command.
const (
	formatTable = "table"
	formatCSV   = "csv"
)

var phonebookHeaders = []string{"Household", "Members", "Street", "City", "Phone"}

var (
	phonebookStatus   []int
	phonebookCampus   []int
	phonebookArchived bool
	phonebookFormat   string
	phonebookOutput   string
)

var phonebookCmd = &cobra.Command{
	Use:   "phonebook",
	Short: "List members grouped into households",
	Long: `Fetch all persons and group them into households by city, street and last name.

Without --status or --campus the filter from phonebook.status_ids and
phonebook.campus_ids in the configuration is used.

Examples:
  churchtools phonebook
  churchtools phonebook --status 1,2 --format csv --output phonebook.csv`,
	Args: cobra.NoArgs,
	RunE: runPhonebook,
}

func init() {
	phonebookCmd.Flags().IntSliceVar(&phonebookStatus, "status", nil, "member status IDs to include")
	phonebookCmd.Flags().IntSliceVar(&phonebookCampus, "campus", nil, "campus IDs to include")
	phonebookCmd.Flags().BoolVar(&phonebookArchived, "archived", false, "include archived persons")
	phonebookCmd.Flags().StringVarP(&phonebookFormat, "format", "f", formatTable, "output format (table, csv)")
	phonebookCmd.Flags().StringVarP(&phonebookOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(phonebookCmd)
}

func runPhonebook(cmd *cobra.Command, _ []string) error {
	if phonebookService == nil {
		return errors.New("phonebook service not configured")
	}
	if phonebookFormat != formatTable && phonebookFormat != formatCSV {
		return fmt.Errorf("unknown format %q (use %s or %s)", phonebookFormat, formatTable, formatCSV)
	}

	filter := phonebookService.DefaultFilter()
	if len(phonebookStatus) > 0 {
		filter.StatusIDs = phonebookStatus
	}
	if len(phonebookCampus) > 0 {
		filter.CampusIDs = phonebookCampus
	}
	filter.IncludeArchived = phonebookArchived

	book, err := phonebookService.Build(cmd.Context(), filter)
	if err != nil {
		return fmt.Errorf("failed to build phonebook: %w", err)
	}

	out := cmd.OutOrStdout()
	if phonebookOutput != "" {
		f, err := os.Create(phonebookOutput)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", phonebookOutput, err)
		}
		defer f.Close()
		out = f
	}

	rows := phonebookRows(book)
	if phonebookFormat == formatCSV {
		if err := writeCSV(out, phonebookHeaders, rows); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, renderTable(phonebookHeaders, rows))
		fmt.Fprintln(out, styles.Muted.Render(
			fmt.Sprintf("%d households, %d persons", len(book.Households), book.PersonCount)))
	}

	if phonebookOutput != "" {
		cmd.Printf("Wrote %d households to %s\n", len(book.Households), phonebookOutput)
	}
	return nil
}

func phonebookRows(book *domain.Phonebook) [][]string {
	rows := make([][]string, 0, len(book.Households))
	for _, h := range book.Households {
		if len(h) == 0 {
			continue
		}
		first := h[0]
		rows = append(rows, []string{
			h.DisplayName(),
			strings.Join(h.FirstNames(), ", "),
			first.Street,
			strings.TrimSpace(first.Zip + " " + first.City),
			strings.Join(h.Phones(), ", "),
		})
	}
	return rows
}

func writeCSV(w io.Writer, headers []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
