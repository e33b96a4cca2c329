package calendar

import (
	"context"
	"time"

	"meetsync/models"
)

// Credentials are a calendar owner's OAuth tokens, as stored on the user.
type Credentials struct {
	AccessToken  string
	RefreshToken string
}

// EventDetails describes a calendar event to create.
type EventDetails struct {
	Title       string
	Description string
	Interval    models.TimeInterval
	Attendees   []string
}

// Event is a read-only snapshot of an existing calendar event.
type Event struct {
	ID       string              `json:"id"`
	Title    string              `json:"title"`
	Interval models.TimeInterval `json:"interval"`
	Status   string              `json:"status"`
}

// Service is the external calendar collaborator. Event creation is not
// idempotent: duplicate calls may create duplicate events, so callers own
// compensation.
type Service interface {
	// ListBusyIntervals returns the busy intervals for events between
	// rangeStart and rangeEnd.
	ListBusyIntervals(ctx context.Context, creds Credentials, rangeStart, rangeEnd time.Time, calendarID string) ([]models.TimeInterval, error)
	// ListEvents returns event snapshots in range, for dashboard views.
	ListEvents(ctx context.Context, creds Credentials, rangeStart, rangeEnd time.Time, calendarID string) ([]Event, error)
	// CheckAvailability reports whether the interval is free of events.
	CheckAvailability(ctx context.Context, creds Credentials, interval models.TimeInterval, calendarID string) (bool, error)
	// CreateEvent inserts an event and returns its opaque identifier.
	CreateEvent(ctx context.Context, creds Credentials, details EventDetails, calendarID string) (string, error)
	// DeleteEvent removes an event. A missing event is not an error.
	DeleteEvent(ctx context.Context, creds Credentials, eventID, calendarID string) error
}
