package domain

// ParsedAddress is the structured form of a free-text address.
// An empty field means the value could not be determined from the
// shape of the input; it is never an error.
type ParsedAddress struct {
	Name       string `json:"name,omitempty"`
	Street     string `json:"street,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	City       string `json:"city,omitempty"`
}

// IsEmpty reports whether no field could be determined.
func (a ParsedAddress) IsEmpty() bool {
	return a.Name == "" && a.Street == "" && a.PostalCode == "" && a.City == ""
}

// AppointmentAddress converts the parsed address into the address block
// of a calendar appointment. The name becomes the meeting place.
func (a ParsedAddress) AppointmentAddress() *AppointmentAddress {
	if a.IsEmpty() {
		return nil
	}
	return &AppointmentAddress{
		MeetingAt: a.Name,
		Street:    a.Street,
		Zip:       a.PostalCode,
		City:      a.City,
	}
}
