package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rh4001/ChurchToolsAPI/internal/address"
)

var addressJSON bool

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Address helpers",
}

var addressParseCmd = &cobra.Command{
	Use:   "parse [address]",
	Short: "Split a free-text address into its parts",
	Long: `Split a comma separated address into name, street, postal code and city.

Examples:
  churchtools address parse "Gemeindehaus, Waldweg 3, 45754 Timbuktu"
  churchtools address parse --json "Waldweg 3, 45754 Timbuktu"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAddressParse,
}

func init() {
	addressParseCmd.Flags().BoolVar(&addressJSON, "json", false, "output as JSON")
	addressCmd.AddCommand(addressParseCmd)
	rootCmd.AddCommand(addressCmd)
}

func runAddressParse(cmd *cobra.Command, args []string) error {
	parsed := address.Parse(strings.Join(args, " "))

	if addressJSON {
		return printJSON(cmd, parsed)
	}

	cmd.Printf("Name:        %s\n", parsed.Name)
	cmd.Printf("Street:      %s\n", parsed.Street)
	cmd.Printf("Postal code: %s\n", parsed.PostalCode)
	cmd.Printf("City:        %s\n", parsed.City)
	return nil
}
