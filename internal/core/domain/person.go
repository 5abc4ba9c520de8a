package domain

import (
	"fmt"
	"strings"
)

// Person is a member record as returned by the ChurchTools persons endpoint.
// Only City, Street and LastName take part in household grouping; the
// remaining fields are carried through untouched for rendering.
type Person struct {
	// ID is the ChurchTools person ID.
	ID int `json:"id"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Street includes the house number, e.g. "Musterstraße 34".
	Street string `json:"street"`
	Zip    string `json:"zip"`
	City   string `json:"city"`

	Email        string `json:"email"`
	PhonePrivate string `json:"phonePrivate"`
	Mobile       string `json:"mobile"`

	StatusID   int  `json:"statusId"`
	CampusID   int  `json:"campusId"`
	IsArchived bool `json:"isArchived"`
}

// HouseholdKey is the composite key persons are clustered by.
type HouseholdKey struct {
	City     string
	Street   string
	LastName string
}

// Key returns the household key of the person.
func (p *Person) Key() HouseholdKey {
	return HouseholdKey{City: p.City, Street: p.Street, LastName: p.LastName}
}

// Less orders keys by city, then street, then last name.
func (k HouseholdKey) Less(other HouseholdKey) bool {
	if k.City != other.City {
		return k.City < other.City
	}
	if k.Street != other.Street {
		return k.Street < other.Street
	}
	return k.LastName < other.LastName
}

// FullName returns "FirstName LastName" without stray spaces.
func (p *Person) FullName() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", p.FirstName, p.LastName))
}

// Phone returns the first non-empty phone number of the person.
func (p *Person) Phone() string {
	if p.PhonePrivate != "" {
		return p.PhonePrivate
	}
	return p.Mobile
}

// PersonFilter narrows a person listing.
// Empty ID slices mean "no restriction".
type PersonFilter struct {
	IDs             []int
	StatusIDs       []int
	CampusIDs       []int
	IncludeArchived bool
}

// Matches reports whether the person passes the filter.
func (f PersonFilter) Matches(p *Person) bool {
	if p.IsArchived && !f.IncludeArchived {
		return false
	}
	if len(f.IDs) > 0 && !containsInt(f.IDs, p.ID) {
		return false
	}
	if len(f.StatusIDs) > 0 && !containsInt(f.StatusIDs, p.StatusID) {
		return false
	}
	if len(f.CampusIDs) > 0 && !containsInt(f.CampusIDs, p.CampusID) {
		return false
	}
	return true
}

func containsInt(list []int, v int) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
