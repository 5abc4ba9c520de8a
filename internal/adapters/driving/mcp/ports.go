package mcp

import (
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driving"
)

// Ports holds the services the MCP server reads from.
type Ports struct {
	// Phonebook groups members into households.
	Phonebook driving.PhonebookService

	// Calendar lists calendars. Optional.
	Calendar driving.CalendarService

	// Songs reads the song database. Optional.
	Songs driving.SongService
}

// Validate reports a missing phonebook service. Calendar and song
// access are optional and only change the advertised instructions.
func (p *Ports) Validate() error {
	if p == nil || p.Phonebook == nil {
		return ErrMissingPhonebookService
	}
	return nil
}
