package household

import (
	"sort"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
)

// Group partitions persons into households. The input slice is not
// modified; every person appears in exactly one household.
func Group(persons []domain.Person) []domain.Household {
	households := make([]domain.Household, 0)
	if len(persons) == 0 {
		return households
	}

	sorted := make([]domain.Person, len(persons))
	copy(sorted, persons)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key().Less(sorted[j].Key())
	})

	var (
		buffer  domain.Household
		lastKey domain.HouseholdKey
	)
	for i := range sorted {
		key := sorted[i].Key()
		// A singleton buffer stays open across the boundary and absorbs
		// the next run.
		if key != lastKey && len(buffer) > 1 {
			households = append(households, buffer)
			buffer = nil
		}
		buffer = append(buffer, sorted[i])
		lastKey = key
	}

	if len(buffer) > 0 {
		households = append(households, buffer)
	}
	return households
}
