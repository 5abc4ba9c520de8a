package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressCmd_HasSubcommands(t *testing.T) {
	commands := addressCmd.Commands()
	require.Len(t, commands, 1)
	assert.Equal(t, "parse", commands[0].Name())
}

func TestAddressParseCmd_Text(t *testing.T) {
	out, err := executeCommand("address", "parse", "Gemeindehaus, Waldweg 3, 45754 Timbuktu")

	require.NoError(t, err)
	assert.Contains(t, out, "Name:        Gemeindehaus")
	assert.Contains(t, out, "Street:      Waldweg 3")
	assert.Contains(t, out, "Postal code: 45754")
	assert.Contains(t, out, "City:        Timbuktu")
}

func TestAddressParseCmd_JSON(t *testing.T) {
	defer resetFlags(addressParseCmd)

	out, err := executeCommand("address", "parse", "--json", "Waldweg 3, 45754 Timbuktu")

	require.NoError(t, err)
	assert.Contains(t, out, `"street": "Waldweg 3"`)
	assert.Contains(t, out, `"postalCode": "45754"`)
	assert.NotContains(t, out, `"name"`)
}

func TestAddressParseCmd_RequiresArg(t *testing.T) {
	_, err := executeCommand("address", "parse")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}
