package booking

import (
	"context"
	"fmt"
	"time"

	bookingRepo "meetsync/database/repository/booking"
	userRepo "meetsync/database/repository/user"
	"meetsync/models"
	"meetsync/services/availability"
	"meetsync/services/calendar"
	"meetsync/services/geocode"
	"meetsync/services/meeting"
	"meetsync/services/notification"
)

// CreateBookingRequest is the payload for booking a slot.
type CreateBookingRequest struct {
	Start           time.Time         `json:"startTime" binding:"required"`
	DurationMinutes int               `json:"duration"`
	Title           string            `json:"title" binding:"required"`
	Description     string            `json:"description"`
	MeetingType     string            `json:"meetingType" binding:"required,oneof=online offline"`
	Attendees       []models.Attendee `json:"attendees" binding:"required,min=1,dive"`
	MeetingPlatform string            `json:"meetingPlatform"`
	Location        *models.Location  `json:"location"`
	Notes           string            `json:"notes"`
}

// CreateResult bundles the persisted booking with per-recipient email
// delivery outcomes.
type CreateResult struct {
	Booking      *models.Booking           `json:"booking"`
	EmailResults []notification.SendResult `json:"emailResults"`
}

// BookingService coordinates slots, the shared calendar and invitations.
type BookingService interface {
	// AvailableSlots computes the free slots of a calendar day.
	AvailableSlots(ctx context.Context, req models.AvailabilityRequest) ([]models.FreeSlot, error)
	// CheckSlot reports whether an interval is currently bookable.
	CheckSlot(ctx context.Context, interval models.TimeInterval) (bool, error)
	// Create books a slot for the user, syncing both calendars and sending
	// invitations.
	Create(ctx context.Context, userID string, req CreateBookingRequest) (*CreateResult, error)
	// Cancel transitions a booking to cancelled and removes its calendar
	// events.
	Cancel(ctx context.Context, actor *models.User, bookingID string) (*models.Booking, error)
	// GetByID fetches a booking, enforcing ownership for non-admins.
	GetByID(ctx context.Context, actor *models.User, bookingID string) (*models.Booking, error)
	// ListForUser returns the user's bookings, soonest first.
	ListForUser(ctx context.Context, userID string) ([]models.Booking, error)
	// ListAll returns bookings matching the filter, for admins.
	ListAll(ctx context.Context, filter bookingRepo.ListFilter) ([]models.Booking, error)
	// UpdateStatus transitions a booking's status, for admins.
	UpdateStatus(ctx context.Context, bookingID, status string) (*models.Booking, error)
	// CalendarEvents lists the admin calendar's events in range.
	CalendarEvents(ctx context.Context, from, to time.Time) ([]calendar.Event, error)
}

// ReminderScheduler enqueues a pre-meeting reminder for a booking.
type ReminderScheduler interface {
	Schedule(booking *models.Booking) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	SlotLocks bookingRepo.SlotLockRepository
	Users     userRepo.UserRepository
	Calendar  calendar.Service
	Links     meeting.LinkGenerator
	Geocoder  geocode.Geocoder
	Mailer    notification.Mailer
	Reminders ReminderScheduler

	WorkStart       availability.TimeOfDay
	WorkEnd         availability.TimeOfDay
	Location        *time.Location
	AdminCalendarID string

	now   func() time.Time
	sleep func(time.Duration)
}

// NewDefaultBookingService wires the booking service. The work window and
// timezone come from configuration and apply to every user.
func NewDefaultBookingService(
	repo bookingRepo.BookingRepository,
	slotLocks bookingRepo.SlotLockRepository,
	users userRepo.UserRepository,
	cal calendar.Service,
	links meeting.LinkGenerator,
	geocoder geocode.Geocoder,
	mailer notification.Mailer,
	workStart, workEnd availability.TimeOfDay,
	loc *time.Location,
	adminCalendarID string,
) (*DefaultBookingService, error) {
	if repo == nil || slotLocks == nil || users == nil || cal == nil {
		return nil, fmt.Errorf("booking service initialization error: missing dependency")
	}
	if loc == nil {
		loc = time.UTC
	}
	if adminCalendarID == "" {
		adminCalendarID = "primary"
	}
	return &DefaultBookingService{
		Repo:            repo,
		SlotLocks:       slotLocks,
		Users:           users,
		Calendar:        cal,
		Links:           links,
		Geocoder:        geocoder,
		Mailer:          mailer,
		WorkStart:       workStart,
		WorkEnd:         workEnd,
		Location:        loc,
		AdminCalendarID: adminCalendarID,
		now:             time.Now,
		sleep:           time.Sleep,
	}, nil
}

func credsOf(u *models.User) calendar.Credentials {
	return calendar.Credentials{AccessToken: u.AccessToken, RefreshToken: u.RefreshToken}
}

func (s *DefaultBookingService) admin() (*models.User, error) {
	adminRec, err := s.Users.GetAdmin()
	if err != nil {
		return nil, externalFailure("failed to load administrator account", err)
	}
	if adminRec == nil {
		return nil, externalFailure("no administrator account is configured", nil)
	}
	return adminRec, nil
}
