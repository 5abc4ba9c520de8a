package churchtools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rh4001/ChurchToolsAPI/internal/core/domain"
)

// dateLayout is used for all-day appointments.
const dateLayout = "2006-01-02"

// ListCalendars returns all calendars visible to the account.
func (c *Client) ListCalendars(ctx context.Context) ([]domain.Calendar, error) {
	calendars, err := listAll[domain.Calendar](ctx, c, "/api/calendars", nil)
	if err != nil {
		return nil, fmt.Errorf("list calendars: %w", err)
	}
	return calendars, nil
}

// appointmentPayload is the request body of appointment create and update.
type appointmentPayload struct {
	Title       string                     `json:"title"`
	Subtitle    string                     `json:"subtitle,omitempty"`
	Description string                     `json:"description,omitempty"`
	Link        string                     `json:"link,omitempty"`
	StartDate   string                     `json:"startDate"`
	EndDate     string                     `json:"endDate"`
	AllDay      bool                       `json:"allDay"`
	IsInternal  bool                       `json:"isInternal"`
	RepeatID    int                        `json:"repeatId"`
	CampusID    int                        `json:"campusId,omitempty"`
	Comment     string                     `json:"comment,omitempty"`
	Address     *domain.AppointmentAddress `json:"address,omitempty"`
}

func newAppointmentPayload(a domain.Appointment) appointmentPayload {
	p := appointmentPayload{
		Title:       a.Title,
		Subtitle:    a.Subtitle,
		Description: a.Description,
		Link:        a.Link,
		AllDay:      a.AllDay,
		IsInternal:  a.IsInternal,
		RepeatID:    a.RepeatID,
		CampusID:    a.CampusID,
		Comment:     a.Comment,
		Address:     a.Address,
	}
	end := a.EndDate
	if end.IsZero() {
		end = a.StartDate
	}
	if a.AllDay {
		p.StartDate = a.StartDate.Format(dateLayout)
		p.EndDate = end.Format(dateLayout)
	} else {
		p.StartDate = a.StartDate.UTC().Format(time.RFC3339)
		p.EndDate = end.UTC().Format(time.RFC3339)
	}
	return p
}

// appointmentID extracts the ID from either the flat or the nested
// {"appointment": {"base": {...}}} response shape.
func appointmentID(raw json.RawMessage) (int, error) {
	var nested struct {
		ID          int `json:"id"`
		Appointment *struct {
			ID   int `json:"id"`
			Base *struct {
				ID int `json:"id"`
			} `json:"base"`
		} `json:"appointment"`
	}
	if err := json.Unmarshal(raw, &nested); err != nil {
		return 0, fmt.Errorf("%w: appointment: %v", ErrUnexpectedResponse, err)
	}
	switch {
	case nested.ID != 0:
		return nested.ID, nil
	case nested.Appointment != nil && nested.Appointment.Base != nil && nested.Appointment.Base.ID != 0:
		return nested.Appointment.Base.ID, nil
	case nested.Appointment != nil && nested.Appointment.ID != 0:
		return nested.Appointment.ID, nil
	}
	return 0, fmt.Errorf("%w: appointment response without id", ErrUnexpectedResponse)
}

// UpsertAppointment creates the appointment when its ID is zero and
// replaces it otherwise.
func (c *Client) UpsertAppointment(ctx context.Context, appointment domain.Appointment) (*domain.Appointment, error) {
	if appointment.CalendarID == 0 {
		return nil, fmt.Errorf("%w: appointment without calendar", domain.ErrInvalidInput)
	}

	method := http.MethodPost
	path := fmt.Sprintf("/api/calendars/%d/appointments", appointment.CalendarID)
	op := "create appointment"
	if appointment.ID != 0 {
		method = http.MethodPut
		path = fmt.Sprintf("%s/%d", path, appointment.ID)
		op = "update appointment"
	}

	var env envelope[json.RawMessage]
	if err := c.sendJSON(ctx, method, path, newAppointmentPayload(appointment), &env); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := appointment
	if len(env.Data) > 0 && string(env.Data) != "null" {
		id, err := appointmentID(env.Data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result.ID = id
	}
	if result.ID == 0 {
		return nil, fmt.Errorf("%s: %w: no id returned", op, ErrUnexpectedResponse)
	}
	return &result, nil
}
