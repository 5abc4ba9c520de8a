package services

import (
	"context"
	"fmt"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driven"
	"github.com/rh4001/ChurchToolsAPI/internal/core/ports/driving"
	"github.com/rh4001/ChurchToolsAPI/internal/household"
	"github.com/rh4001/ChurchToolsAPI/internal/logger"
)

// Ensure PhonebookService implements the interface.
var _ driving.PhonebookService = (*PhonebookService)(nil)

// PhonebookService groups member records into households.
type PhonebookService struct {
	directory driven.DirectoryClient
	config    driven.ConfigStore
}

// NewPhonebookService creates a new phonebook service.
func NewPhonebookService(directory driven.DirectoryClient, config driven.ConfigStore) *PhonebookService {
	return &PhonebookService{
		directory: directory,
		config:    config,
	}
}

// Build fetches persons matching the filter and groups them into households.
func (s *PhonebookService) Build(ctx context.Context, filter domain.PersonFilter) (*domain.Phonebook, error) {
	if s.directory == nil {
		return nil, domain.ErrNotImplemented
	}

	logger.Section("Phonebook")
	persons, err := s.directory.ListPersons(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}

	// The directory may filter server-side only partially.
	members := make([]domain.Person, 0, len(persons))
	for i := range persons {
		if filter.Matches(&persons[i]) {
			members = append(members, persons[i])
		}
	}
	logger.Debug("%d of %d persons match filter", len(members), len(persons))

	households := household.Group(members)
	logger.Info("Found %d households", len(households))

	return &domain.Phonebook{
		Households:  households,
		PersonCount: len(members),
	}, nil
}

// DefaultFilter returns the status and campus filter from configuration.
func (s *PhonebookService) DefaultFilter() domain.PersonFilter {
	if s.config == nil {
		return domain.PersonFilter{}
	}
	return domain.PersonFilter{
		StatusIDs: s.config.GetIntSlice(driven.KeyPhonebookStatusIDs),
		CampusIDs: s.config.GetIntSlice(driven.KeyPhonebookCampusIDs),
	}
}
