package booking

import (
	"context"
	"time"

	"meetsync/services/calendar"
	"meetsync/utils"

	"go.uber.org/zap"
)

const (
	createEventAttempts = 3
	retryBaseDelay      = 500 * time.Millisecond
)

// createEventWithRetry retries transient calendar failures with doubling
// delays. Event creation is not idempotent, so only the error from the final
// attempt is surfaced and any success short-circuits immediately.
func (s *DefaultBookingService) createEventWithRetry(ctx context.Context, creds calendar.Credentials, details calendar.EventDetails, calendarID string) (string, error) {
	var lastErr error
	delay := retryBaseDelay
	for attempt := 1; attempt <= createEventAttempts; attempt++ {
		eventID, err := s.Calendar.CreateEvent(ctx, creds, details, calendarID)
		if err == nil {
			return eventID, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return "", lastErr
		}
		if attempt < createEventAttempts {
			utils.GetLogger().Warn("calendar event creation failed, retrying",
				zap.Int("attempt", attempt), zap.Error(err))
			s.sleep(delay)
			delay *= 2
		}
	}
	return "", lastErr
}
