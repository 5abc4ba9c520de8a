package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rh4001/ChurchToolsAPI/internal/address"
	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
)

// ParseAddressInput is the input schema for the parse_address tool.
type ParseAddressInput struct {
	Address string `json:"address" jsonschema:"free-text address, e.g. 'Gemeindehaus, Waldweg 3, 45754 Timbuktu'"`
}

// ParseAddressOutput is the output schema for the parse_address tool.
type ParseAddressOutput struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
}

// PhonebookInput is the input schema for the phonebook tool.
type PhonebookInput struct {
	StatusIDs       []int `json:"status_ids,omitempty" jsonschema:"member status IDs to include (default from configuration)"`
	CampusIDs       []int `json:"campus_ids,omitempty" jsonschema:"campus IDs to include (default from configuration)"`
	IncludeArchived bool  `json:"include_archived,omitempty" jsonschema:"include archived persons"`
}

// PhonebookOutput is the output schema for the phonebook tool.
type PhonebookOutput struct {
	Households  []HouseholdOutput `json:"households"`
	Count       int               `json:"count"`
	PersonCount int               `json:"person_count"`
}

// HouseholdOutput represents one household of the phonebook.
type HouseholdOutput struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
	Street  string   `json:"street"`
	Zip     string   `json:"zip"`
	City    string   `json:"city"`
	Phones  []string `json:"phones,omitempty"`
}

// ListCalendarsInput is the (empty) input schema for the list_calendars tool.
type ListCalendarsInput struct{}

// ListCalendarsOutput is the output schema for the list_calendars tool.
type ListCalendarsOutput struct {
	Calendars []CalendarOutput `json:"calendars"`
	Count     int              `json:"count"`
}

// CalendarOutput represents a single calendar.
type CalendarOutput struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsPublic bool   `json:"is_public"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "parse_address",
		Description: "Split a free-text German address into name, street, postal code and city",
	}, s.handleParseAddress)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "phonebook",
		Description: "List church members grouped into households",
	}, s.handlePhonebook)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_calendars",
		Description: "List the ChurchTools calendars appointments can be created in",
	}, s.handleListCalendars)
}

func (s *Server) handleParseAddress(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ParseAddressInput,
) (*mcp.CallToolResult, ParseAddressOutput, error) {
	parsed := address.Parse(input.Address)
	return nil, ParseAddressOutput{
		Name:       parsed.Name,
		Street:     parsed.Street,
		PostalCode: parsed.PostalCode,
		City:       parsed.City,
	}, nil
}

func (s *Server) handlePhonebook(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PhonebookInput,
) (*mcp.CallToolResult, PhonebookOutput, error) {
	filter := s.ports.Phonebook.DefaultFilter()
	if len(input.StatusIDs) > 0 {
		filter.StatusIDs = input.StatusIDs
	}
	if len(input.CampusIDs) > 0 {
		filter.CampusIDs = input.CampusIDs
	}
	filter.IncludeArchived = input.IncludeArchived

	book, err := s.ports.Phonebook.Build(ctx, filter)
	if err != nil {
		return nil, PhonebookOutput{}, err
	}

	output := PhonebookOutput{
		Households:  make([]HouseholdOutput, len(book.Households)),
		Count:       len(book.Households),
		PersonCount: book.PersonCount,
	}
	for i, h := range book.Households {
		output.Households[i] = householdOutput(h)
	}
	return nil, output, nil
}

func householdOutput(h domain.Household) HouseholdOutput {
	out := HouseholdOutput{
		Name:    h.DisplayName(),
		Members: h.FirstNames(),
		Phones:  h.Phones(),
	}
	if len(h) > 0 {
		out.Street = h[0].Street
		out.Zip = h[0].Zip
		out.City = h[0].City
	}
	return out
}

func (s *Server) handleListCalendars(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListCalendarsInput,
) (*mcp.CallToolResult, ListCalendarsOutput, error) {
	if s.ports.Calendar == nil {
		return nil, ListCalendarsOutput{}, ErrMissingCalendarService
	}

	calendars, err := s.ports.Calendar.Calendars(ctx)
	if err != nil {
		return nil, ListCalendarsOutput{}, err
	}

	output := ListCalendarsOutput{
		Calendars: make([]CalendarOutput, len(calendars)),
		Count:     len(calendars),
	}
	for i, c := range calendars {
		output.Calendars[i] = CalendarOutput{ID: c.ID, Name: c.Name, IsPublic: c.IsPublic}
	}
	return nil, output, nil
}
