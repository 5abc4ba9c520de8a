package driving

import (
	"context"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
)

// PhonebookService builds household-grouped member lists.
type PhonebookService interface {
	// Build fetches persons matching the filter and groups them into households.
	Build(ctx context.Context, filter domain.PersonFilter) (*domain.Phonebook, error)

	// DefaultFilter returns the filter configured for phonebook runs.
	DefaultFilter() domain.PersonFilter
}
