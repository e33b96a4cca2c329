package booking

import (
	"context"
	"time"

	"meetsync/models"
	"meetsync/services/availability"
	"meetsync/utils"

	"go.uber.org/zap"
)

// AvailableSlots computes the bookable slots for a calendar day. Busy time is
// the union of the admin calendar's events and active bookings on record, so a
// calendar outage or a sync gap can only shrink availability, never widen it.
func (s *DefaultBookingService) AvailableSlots(ctx context.Context, req models.AvailabilityRequest) ([]models.FreeSlot, error) {
	day, err := time.ParseInLocation("2006-01-02", req.Date, s.Location)
	if err != nil {
		return nil, invalidRequest("invalid date %q, expected YYYY-MM-DD", req.Date)
	}

	now := s.now().In(s.Location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.Location)
	if day.Before(today) {
		return nil, invalidRequest("cannot query availability for a past date")
	}

	duration, svcErr := normalizeDuration(req.DurationMinutes)
	if svcErr != nil {
		return nil, svcErr
	}

	busy, err := s.busyIntervals(ctx, day)
	if err != nil {
		return nil, err
	}

	slots := availability.ComputeFreeSlots(day, duration, busy, s.WorkStart, s.WorkEnd, now)
	if slots == nil {
		slots = []models.FreeSlot{}
	}
	return slots, nil
}

// CheckSlot reports whether the interval is currently bookable, consulting
// both the booking store and the admin calendar.
func (s *DefaultBookingService) CheckSlot(ctx context.Context, interval models.TimeInterval) (bool, error) {
	if !interval.Valid() {
		return false, invalidRequest("interval start must be before its end")
	}

	existing, err := s.Repo.FindOverlapping(interval, models.ActiveStatuses)
	if err != nil {
		return false, externalFailure("failed to check existing bookings", err)
	}
	if conflict := availability.CheckConflict(interval, existing); conflict != nil {
		return false, nil
	}

	adminRec, svcErr := s.admin()
	if svcErr != nil {
		return false, svcErr
	}
	free, err := s.Calendar.CheckAvailability(ctx, credsOf(adminRec), interval, s.AdminCalendarID)
	if err != nil {
		return false, externalFailure("failed to check calendar availability", err)
	}
	return free, nil
}

func (s *DefaultBookingService) busyIntervals(ctx context.Context, day time.Time) ([]models.TimeInterval, error) {
	windowStart := s.WorkStart.On(day)
	windowEnd := s.WorkEnd.On(day)

	adminRec, svcErr := s.admin()
	if svcErr != nil {
		return nil, svcErr
	}

	busy, err := s.Calendar.ListBusyIntervals(ctx, credsOf(adminRec), windowStart, windowEnd, s.AdminCalendarID)
	if err != nil {
		return nil, externalFailure("failed to read the calendar", err)
	}

	window := models.TimeInterval{Start: windowStart, End: windowEnd}
	stored, err := s.Repo.FindOverlapping(window, models.ActiveStatuses)
	if err != nil {
		utils.GetLogger().Warn("failed to merge stored bookings into busy set", zap.Error(err))
		return busy, nil
	}
	for _, b := range stored {
		busy = append(busy, b.Interval)
	}
	return busy, nil
}

func normalizeDuration(minutes int) (int, *ServiceError) {
	if minutes == 0 {
		return models.DefaultDurationMinutes, nil
	}
	if minutes < models.MinDurationMinutes || minutes > models.MaxDurationMinutes {
		return 0, invalidRequest("duration must be between %d and %d minutes",
			models.MinDurationMinutes, models.MaxDurationMinutes)
	}
	return minutes, nil
}
