package models

import "time"

// Booking statuses. Bookings are never physically deleted; cancellation is a
// status transition.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Meeting types.
const (
	MeetingOnline  = "online"
	MeetingOffline = "offline"
)

// Attendee response statuses mirror the calendar provider's vocabulary.
const (
	ResponseNeedsAction = "needsAction"
	ResponseAccepted    = "accepted"
	ResponseDeclined    = "declined"
	ResponseTentative   = "tentative"
)

// Attendee is an invited meeting participant.
type Attendee struct {
	Email          string `bson:"email" json:"email" binding:"required,email"`
	Name           string `bson:"name,omitempty" json:"name,omitempty"`
	ResponseStatus string `bson:"responseStatus" json:"responseStatus"`
}

// Coordinates is a geographic point returned by the geocoder.
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Location describes where an in-person meeting takes place. Coordinates and
// MapsLink are filled in by geocoding; when the geocoder is unavailable the
// address fields are kept as submitted.
type Location struct {
	Address          string       `bson:"address" json:"address"`
	City             string       `bson:"city,omitempty" json:"city,omitempty"`
	State            string       `bson:"state,omitempty" json:"state,omitempty"`
	Country          string       `bson:"country,omitempty" json:"country,omitempty"`
	PostalCode       string       `bson:"postalCode,omitempty" json:"postalCode,omitempty"`
	Coordinates      *Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
	FormattedAddress string       `bson:"formattedAddress,omitempty" json:"formattedAddress,omitempty"`
	MapsLink         string       `bson:"mapsLink,omitempty" json:"mapsLink,omitempty"`
}

// Booking represents a confirmed meeting record.
type Booking struct {
	ID                   string       `bson:"id" json:"id"`                 // Unique booking identifier (UUID)
	UserID               string       `bson:"userId" json:"userId"`         // User who made the booking
	Interval             TimeInterval `bson:",inline" json:"interval"` // Half-open meeting window, flattened to startTime/endTime
	Title                string       `bson:"title" json:"title"`
	Description          string       `bson:"description,omitempty" json:"description,omitempty"`
	MeetingType          string       `bson:"meetingType" json:"meetingType"` // "online" or "offline"
	Attendees            []Attendee   `bson:"attendees" json:"attendees"`
	MeetingPlatform      string       `bson:"meetingPlatform,omitempty" json:"meetingPlatform,omitempty"`
	MeetingLink          string       `bson:"meetingLink,omitempty" json:"meetingLink,omitempty"`
	Location             *Location    `bson:"location,omitempty" json:"location,omitempty"`
	AdminCalendarEventID string       `bson:"adminCalendarEventId,omitempty" json:"adminCalendarEventId,omitempty"`
	UserCalendarEventID  string       `bson:"userCalendarEventId,omitempty" json:"userCalendarEventId,omitempty"`
	Status               string       `bson:"status" json:"status"`
	Notes                string       `bson:"notes,omitempty" json:"notes,omitempty"`
	EmailSent            bool         `bson:"emailSent" json:"emailSent"` // Whether invitation delivery succeeded
	CreatedAt            time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt            time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// ActiveStatuses are the statuses that occupy calendar time. Two bookings in
// these statuses must never overlap.
var ActiveStatuses = []string{StatusPending, StatusConfirmed}
