package bookingRepo

import (
	"time"

	"meetsync/models"
)

// ListFilter narrows admin booking queries.
type ListFilter struct {
	Status    string
	RangeFrom time.Time
	RangeTo   time.Time
}

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID. Returns nil without error
	// when no such booking exists.
	GetByID(id string) (*models.Booking, error)
	// GetByUser retrieves a user's bookings, ordered ascending by start time.
	GetByUser(userID string) ([]models.Booking, error)
	// List retrieves all bookings matching the filter, ordered ascending by
	// start time.
	List(filter ListFilter) ([]models.Booking, error)
	// FindOverlapping retrieves bookings in the given statuses whose interval
	// overlaps the candidate (half-open semantics).
	FindOverlapping(interval models.TimeInterval, statuses []string) ([]models.Booking, error)
	// Insert persists a new booking record.
	Insert(booking *models.Booking) error
	// UpdateStatus transitions a booking's status and returns the updated
	// record, or nil when the booking does not exist.
	UpdateStatus(id, status string) (*models.Booking, error)
	// SetEmailSent records whether invitation delivery succeeded.
	SetEmailSent(id string, sent bool) error
}
