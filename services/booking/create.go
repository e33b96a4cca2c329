package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "meetsync/database/repository/booking"
	"meetsync/models"
	"meetsync/services/availability"
	"meetsync/services/calendar"
	"meetsync/services/geocode"
	"meetsync/services/meeting"
	"meetsync/services/notification"
	"meetsync/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create books a slot. The flow holds an advisory lock over the interval's
// granules while it verifies the slot and writes both calendar events, so two
// requests racing for overlapping intervals cannot both succeed. Calendar
// writes that cannot be completed are compensated by deleting the events
// already created.
func (s *DefaultBookingService) Create(ctx context.Context, userID string, req CreateBookingRequest) (*CreateResult, error) {
	interval, svcErr := s.validateRequest(&req)
	if svcErr != nil {
		return nil, svcErr
	}

	userRec, err := s.Users.GetByID(userID)
	if err != nil || userRec == nil {
		return nil, externalFailure("failed to load user account", err)
	}
	adminRec, svcErr2 := s.admin()
	if svcErr2 != nil {
		return nil, svcErr2
	}

	release, err := s.SlotLocks.Acquire(ctx, interval)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotLocked) {
			return nil, slotUnavailable("this slot is being booked by someone else, please try another")
		}
		return nil, externalFailure("failed to reserve the slot", err)
	}
	defer release()

	if svcErr := s.verifySlotFree(ctx, adminRec, interval); svcErr != nil {
		return nil, svcErr
	}

	booking := &models.Booking{
		ID:          uuid.New().String(),
		UserID:      userRec.ID,
		Interval:    interval,
		Title:       req.Title,
		Description: req.Description,
		MeetingType: req.MeetingType,
		Attendees:   normalizeAttendees(req.Attendees),
		Status:      models.StatusConfirmed,
		Notes:       req.Notes,
		CreatedAt:   s.now(),
		UpdatedAt:   s.now(),
	}

	if svcErr := s.attachMeetingPlace(ctx, booking, &req); svcErr != nil {
		return nil, svcErr
	}

	if svcErr := s.syncCalendars(ctx, booking, userRec, adminRec); svcErr != nil {
		return nil, svcErr
	}

	if err := s.Repo.Insert(booking); err != nil {
		s.compensateEvents(ctx, booking, userRec, adminRec)
		return nil, externalFailure("failed to save the booking", err)
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("userId", userRec.ID),
		zap.Time("startTime", booking.Interval.Start))

	if s.Reminders != nil {
		if err := s.Reminders.Schedule(booking); err != nil {
			utils.GetLogger().Warn("failed to schedule reminder",
				zap.String("bookingId", booking.ID), zap.Error(err))
		}
	}

	results := s.sendInvitations(ctx, booking, userRec)
	return &CreateResult{Booking: booking, EmailResults: results}, nil
}

func (s *DefaultBookingService) validateRequest(req *CreateBookingRequest) (models.TimeInterval, *ServiceError) {
	duration, svcErr := normalizeDuration(req.DurationMinutes)
	if svcErr != nil {
		return models.TimeInterval{}, svcErr
	}
	req.DurationMinutes = duration

	start := req.Start.In(s.Location)
	if start.Minute()%30 != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		return models.TimeInterval{}, invalidRequest("slots start on 30-minute boundaries")
	}
	if !start.After(s.now().In(s.Location)) {
		return models.TimeInterval{}, invalidRequest("cannot book a slot in the past")
	}

	interval := models.TimeInterval{Start: start, End: start.Add(time.Duration(duration) * time.Minute)}
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, s.Location)
	if interval.Start.Before(s.WorkStart.On(day)) || interval.End.After(s.WorkEnd.On(day)) {
		return models.TimeInterval{}, invalidRequest("slot falls outside working hours")
	}

	switch req.MeetingType {
	case models.MeetingOnline:
		if !meeting.IsSupported(req.MeetingPlatform) {
			return models.TimeInterval{}, invalidRequest("unsupported meeting platform %q", req.MeetingPlatform)
		}
	case models.MeetingOffline:
		if req.Location == nil || req.Location.Address == "" {
			return models.TimeInterval{}, invalidRequest("offline meetings require a location address")
		}
	default:
		return models.TimeInterval{}, invalidRequest("meeting type must be online or offline")
	}

	return interval, nil
}

// verifySlotFree runs inside the slot lock. The store check catches bookings,
// the calendar check catches events created outside this application.
func (s *DefaultBookingService) verifySlotFree(ctx context.Context, adminRec *models.User, interval models.TimeInterval) *ServiceError {
	existing, err := s.Repo.FindOverlapping(interval, models.ActiveStatuses)
	if err != nil {
		return externalFailure("failed to check existing bookings", err)
	}
	if conflict := availability.CheckConflict(interval, existing); conflict != nil {
		return slotUnavailable("this slot was just booked, please pick another")
	}

	free, err := s.Calendar.CheckAvailability(ctx, credsOf(adminRec), interval, s.AdminCalendarID)
	if err != nil {
		return externalFailure("failed to check calendar availability", err)
	}
	if !free {
		return slotUnavailable("this slot is no longer available")
	}
	return nil
}

func (s *DefaultBookingService) attachMeetingPlace(ctx context.Context, booking *models.Booking, req *CreateBookingRequest) *ServiceError {
	if req.MeetingType == models.MeetingOnline {
		link, err := s.Links.Generate(ctx, req.MeetingPlatform, meeting.MeetingDetails{
			Title:     booking.Title,
			StartTime: booking.Interval.Start,
			EndTime:   booking.Interval.End,
			Attendees: attendeeEmails(booking.Attendees),
		})
		if err != nil {
			return externalFailure("failed to generate the meeting link", err)
		}
		booking.MeetingPlatform = link.Platform
		booking.MeetingLink = link.Link
		return nil
	}

	validated := geocode.ValidateLocation(ctx, s.Geocoder, *req.Location)
	booking.Location = &validated
	return nil
}

// syncCalendars creates the event on the admin calendar first, then mirrors
// it on the user's own calendar. A user-side failure deletes the admin event
// so neither calendar is left with an orphan.
func (s *DefaultBookingService) syncCalendars(ctx context.Context, booking *models.Booking, userRec, adminRec *models.User) *ServiceError {
	details := s.eventDetails(booking, userRec)

	adminEventID, err := s.createEventWithRetry(ctx, credsOf(adminRec), details, s.AdminCalendarID)
	if err != nil {
		return externalFailure("failed to create the calendar event", err)
	}
	booking.AdminCalendarEventID = adminEventID

	userEventID, err := s.createEventWithRetry(ctx, credsOf(userRec), details, "primary")
	if err != nil {
		s.compensateEvents(ctx, booking, userRec, adminRec)
		return externalFailure("failed to add the event to your calendar", err)
	}
	booking.UserCalendarEventID = userEventID
	return nil
}

func (s *DefaultBookingService) eventDetails(booking *models.Booking, userRec *models.User) calendar.EventDetails {
	description := booking.Description
	if booking.MeetingType == models.MeetingOnline && booking.MeetingLink != "" {
		description += "\n\nJoin: " + booking.MeetingLink
	} else if booking.Location != nil && booking.Location.FormattedAddress != "" {
		description += "\n\nLocation: " + booking.Location.FormattedAddress
		if booking.Location.MapsLink != "" {
			description += "\n" + booking.Location.MapsLink
		}
	}

	attendees := attendeeEmails(booking.Attendees)
	attendees = append(attendees, userRec.Email)

	return calendar.EventDetails{
		Title:       booking.Title,
		Description: description,
		Interval:    booking.Interval,
		Attendees:   attendees,
	}
}

// compensateEvents deletes whichever calendar events the failed flow managed
// to create. Deletion failures are logged and the lock TTL plus a missing
// booking record keep the slot recoverable.
func (s *DefaultBookingService) compensateEvents(ctx context.Context, booking *models.Booking, userRec, adminRec *models.User) {
	if booking.AdminCalendarEventID != "" {
		if err := s.Calendar.DeleteEvent(ctx, credsOf(adminRec), booking.AdminCalendarEventID, s.AdminCalendarID); err != nil {
			utils.GetLogger().Error("compensation failed for admin calendar event",
				zap.String("eventId", booking.AdminCalendarEventID), zap.Error(err))
		}
	}
	if booking.UserCalendarEventID != "" {
		if err := s.Calendar.DeleteEvent(ctx, credsOf(userRec), booking.UserCalendarEventID, "primary"); err != nil {
			utils.GetLogger().Error("compensation failed for user calendar event",
				zap.String("eventId", booking.UserCalendarEventID), zap.Error(err))
		}
	}
}

func (s *DefaultBookingService) sendInvitations(ctx context.Context, booking *models.Booking, userRec *models.User) []notification.SendResult {
	if s.Mailer == nil {
		return nil
	}
	results := s.Mailer.SendInvitations(ctx, booking, userRec.Name)
	booking.EmailSent = notification.AllSent(results)
	if err := s.Repo.SetEmailSent(booking.ID, booking.EmailSent); err != nil {
		utils.GetLogger().Warn("failed to record email delivery state",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
	return results
}

func normalizeAttendees(attendees []models.Attendee) []models.Attendee {
	out := make([]models.Attendee, 0, len(attendees))
	seen := map[string]bool{}
	for _, a := range attendees {
		if seen[a.Email] {
			continue
		}
		seen[a.Email] = true
		if a.ResponseStatus == "" {
			a.ResponseStatus = models.ResponseNeedsAction
		}
		out = append(out, a)
	}
	return out
}

func attendeeEmails(attendees []models.Attendee) []string {
	emails := make([]string, 0, len(attendees))
	for _, a := range attendees {
		emails = append(emails, a.Email)
	}
	return emails
}
