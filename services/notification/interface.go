package notification

import (
	"context"

	"meetsync/models"
)

// SendResult records the outcome of delivery to a single recipient.
type SendResult struct {
	Email string `json:"email"`
	Sent  bool   `json:"sent"`
	Error string `json:"error,omitempty"`
}

// Mailer defines methods for sending booking emails. Delivery is best-effort:
// implementations report per-recipient outcomes and never fail the booking.
type Mailer interface {
	SendInvitations(ctx context.Context, booking *models.Booking, organizerName string) []SendResult
	SendCancellation(ctx context.Context, booking *models.Booking, organizerName string) []SendResult
	SendReminder(ctx context.Context, booking *models.Booking, organizerName string) []SendResult
}

// AllSent reports whether every recipient received the email.
func AllSent(results []SendResult) bool {
	if len(results) == 0 {
		return false
	}
	for _, r := range results {
		if !r.Sent {
			return false
		}
	}
	return true
}
