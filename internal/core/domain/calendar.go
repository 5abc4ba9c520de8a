package domain

import "time"

// Calendar is a ChurchTools calendar appointments can be created in.
type Calendar struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	NameTrans  string `json:"nameTranslated,omitempty"`
	Color      string `json:"color,omitempty"`
	IsPublic   bool   `json:"isPublic"`
	IsPrivate  bool   `json:"isPrivate"`
	CampusID   int    `json:"campusId,omitempty"`
	SortKey    int    `json:"sortKey,omitempty"`
	RandomURL  string `json:"randomUrl,omitempty"`
	IconFileID int    `json:"iconFileId,omitempty"`
}

// AppointmentAddress is the location block of an appointment.
type AppointmentAddress struct {
	MeetingAt string `json:"meetingAt,omitempty"`
	Street    string `json:"street,omitempty"`
	Zip       string `json:"zip,omitempty"`
	City      string `json:"city,omitempty"`
}

// Appointment is a calendar entry. ID is zero until the appointment
// has been created on the server.
type Appointment struct {
	ID          int                 `json:"id,omitempty"`
	CalendarID  int                 `json:"calendarId"`
	Title       string              `json:"title"`
	Subtitle    string              `json:"subtitle,omitempty"`
	Description string              `json:"description,omitempty"`
	Comment     string              `json:"comment,omitempty"`
	Link        string              `json:"link,omitempty"`
	StartDate   time.Time           `json:"startDate"`
	EndDate     time.Time           `json:"endDate"`
	AllDay      bool                `json:"allDay"`
	IsInternal  bool                `json:"isInternal"`
	RepeatID    int                 `json:"repeatId"`
	CampusID    int                 `json:"campusId,omitempty"`
	Address     *AppointmentAddress `json:"address,omitempty"`
}

// Event is a ChurchTools event (service plan entry).
type Event struct {
	ID          int       `json:"id"`
	GUID        string    `json:"guid,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	IsCanceled  bool      `json:"isCanceled"`
	CalendarID  int       `json:"calendarId,omitempty"`
}

// EventQuery selects events by time span. Zero times are omitted from
// the request, a zero Limit means "server default".
type EventQuery struct {
	From      time.Time
	To        time.Time
	Canceled  bool
	Direction string
	Limit     int
	Include   string
}

// Agenda is the order of service attached to an event.
type Agenda struct {
	ID       int          `json:"id"`
	Name     string       `json:"name"`
	Series   string       `json:"series,omitempty"`
	IsFinal  bool         `json:"isFinal"`
	EventIDs []int        `json:"eventIds,omitempty"`
	Items    []AgendaItem `json:"items,omitempty"`
}

// AgendaItem is one entry of an agenda.
type AgendaItem struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Position int    `json:"position"`
	Duration int    `json:"duration"`
}

// Group is a ChurchTools group.
type Group struct {
	ID   int    `json:"id"`
	GUID string `json:"guid,omitempty"`
	Name string `json:"name"`
}

// User is the authenticated account as reported by whoami.
type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
