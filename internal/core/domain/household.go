package domain

import (
	"sort"
	"strings"
)

// Household is a group of persons inferred to share one dwelling.
// Members keep the order produced by the grouping sort.
type Household []Person

// Key returns the household key of the first member.
// An empty household has the zero key.
func (h Household) Key() HouseholdKey {
	if len(h) == 0 {
		return HouseholdKey{}
	}
	return h[0].Key()
}

// DisplayName returns the surname(s) of the household, e.g. "Müller" or
// "Müller / Schmidt" when the carry-over rule merged different surnames.
func (h Household) DisplayName() string {
	seen := make(map[string]bool)
	var names []string
	for i := range h {
		name := h[i].LastName
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return strings.Join(names, " / ")
}

// FirstNames returns the first names of all members in order.
func (h Household) FirstNames() []string {
	names := make([]string, 0, len(h))
	for i := range h {
		if h[i].FirstName != "" {
			names = append(names, h[i].FirstName)
		}
	}
	return names
}

// Phones returns the distinct phone numbers of the household.
func (h Household) Phones() []string {
	seen := make(map[string]bool)
	var phones []string
	for i := range h {
		for _, phone := range []string{h[i].PhonePrivate, h[i].Mobile} {
			if phone == "" || seen[phone] {
				continue
			}
			seen[phone] = true
			phones = append(phones, phone)
		}
	}
	sort.Strings(phones)
	return phones
}

// Phonebook is the result of grouping a filtered member list.
type Phonebook struct {
	Households  []Household
	PersonCount int
}
