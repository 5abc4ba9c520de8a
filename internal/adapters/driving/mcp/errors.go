// Package mcp provides an MCP (Model Context Protocol) server adapter for
// the ChurchTools CLI. It exposes address parsing, the household phonebook
// and calendar lookups to AI assistants.
package mcp

import "errors"

var (
	// ErrMissingPhonebookService is returned when the phonebook service is not provided.
	ErrMissingPhonebookService = errors.New("mcp: phonebook service is required")

	// ErrMissingCalendarService is returned by calendar tools when no calendar service is configured.
	ErrMissingCalendarService = errors.New("mcp: calendar service not configured")
)
