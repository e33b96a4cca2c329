package booking

import (
	"context"
	"time"

	bookingRepo "meetsync/database/repository/booking"
	"meetsync/models"
	"meetsync/services/calendar"
	"meetsync/utils"

	"go.uber.org/zap"
)

// Cancel transitions a booking to cancelled. Calendar event removal is
// best-effort on each side independently: a calendar outage never blocks the
// cancellation itself.
func (s *DefaultBookingService) Cancel(ctx context.Context, actor *models.User, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, externalFailure("failed to load the booking", err)
	}
	if booking == nil {
		return nil, notFound("booking not found")
	}
	if booking.UserID != actor.ID && !actor.IsAdmin {
		return nil, forbidden("you can only cancel your own bookings")
	}
	if booking.Status == models.StatusCancelled {
		return nil, invalidRequest("booking is already cancelled")
	}

	s.removeCalendarEvents(ctx, booking)

	updated, err := s.Repo.UpdateStatus(bookingID, models.StatusCancelled)
	if err != nil {
		return nil, externalFailure("failed to cancel the booking", err)
	}
	if updated == nil {
		return nil, notFound("booking not found")
	}

	utils.GetLogger().Info("booking cancelled",
		zap.String("bookingId", bookingID), zap.String("actorId", actor.ID))

	if s.Mailer != nil && len(updated.Attendees) > 0 {
		owner, err := s.Users.GetByID(updated.UserID)
		organizer := ""
		if err == nil && owner != nil {
			organizer = owner.Name
		}
		s.Mailer.SendCancellation(ctx, updated, organizer)
	}
	return updated, nil
}

func (s *DefaultBookingService) removeCalendarEvents(ctx context.Context, booking *models.Booking) {
	if booking.AdminCalendarEventID != "" {
		if adminRec, svcErr := s.admin(); svcErr == nil {
			if err := s.Calendar.DeleteEvent(ctx, credsOf(adminRec), booking.AdminCalendarEventID, s.AdminCalendarID); err != nil {
				utils.GetLogger().Warn("failed to remove admin calendar event",
					zap.String("bookingId", booking.ID), zap.Error(err))
			}
		}
	}
	if booking.UserCalendarEventID != "" {
		owner, err := s.Users.GetByID(booking.UserID)
		if err != nil || owner == nil {
			return
		}
		if err := s.Calendar.DeleteEvent(ctx, credsOf(owner), booking.UserCalendarEventID, "primary"); err != nil {
			utils.GetLogger().Warn("failed to remove user calendar event",
				zap.String("bookingId", booking.ID), zap.Error(err))
		}
	}
}

// GetByID fetches a booking. Non-admins only see their own.
func (s *DefaultBookingService) GetByID(_ context.Context, actor *models.User, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, externalFailure("failed to load the booking", err)
	}
	if booking == nil {
		return nil, notFound("booking not found")
	}
	if booking.UserID != actor.ID && !actor.IsAdmin {
		return nil, forbidden("you can only view your own bookings")
	}
	return booking, nil
}

// ListForUser returns the user's bookings, soonest first.
func (s *DefaultBookingService) ListForUser(_ context.Context, userID string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByUser(userID)
	if err != nil {
		return nil, externalFailure("failed to list bookings", err)
	}
	return bookings, nil
}

// ListAll returns bookings matching the filter, for admin views.
func (s *DefaultBookingService) ListAll(_ context.Context, filter bookingRepo.ListFilter) ([]models.Booking, error) {
	bookings, err := s.Repo.List(filter)
	if err != nil {
		return nil, externalFailure("failed to list bookings", err)
	}
	return bookings, nil
}

// UpdateStatus transitions a booking's status. Cancelled bookings are final.
func (s *DefaultBookingService) UpdateStatus(_ context.Context, bookingID, status string) (*models.Booking, error) {
	switch status {
	case models.StatusPending, models.StatusConfirmed, models.StatusCancelled:
	default:
		return nil, invalidRequest("unknown status %q", status)
	}

	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, externalFailure("failed to load the booking", err)
	}
	if booking == nil {
		return nil, notFound("booking not found")
	}
	if booking.Status == models.StatusCancelled {
		return nil, invalidRequest("cancelled bookings cannot change status")
	}

	updated, err := s.Repo.UpdateStatus(bookingID, status)
	if err != nil {
		return nil, externalFailure("failed to update the booking", err)
	}
	return updated, nil
}

// CalendarEvents lists the admin calendar's events in range for dashboards.
func (s *DefaultBookingService) CalendarEvents(ctx context.Context, from, to time.Time) ([]calendar.Event, error) {
	if !from.Before(to) {
		return nil, invalidRequest("range start must be before range end")
	}
	adminRec, svcErr := s.admin()
	if svcErr != nil {
		return nil, svcErr
	}
	events, err := s.Calendar.ListEvents(ctx, credsOf(adminRec), from, to, s.AdminCalendarID)
	if err != nil {
		return nil, externalFailure("failed to list calendar events", err)
	}
	return events, nil
}

var _ BookingService = (*DefaultBookingService)(nil)
