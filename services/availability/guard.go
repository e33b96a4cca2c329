package availability

import "meetsync/models"

// Conflict identifies the existing booking that blocks a candidate interval.
type Conflict struct {
	BookingID string
}

// CheckConflict tests a candidate interval against existing bookings and
// returns the first pending or confirmed booking it overlaps, or nil when the
// slot is free. Cancelled bookings vacate their interval.
//
// This is the last line of defense against two users racing for the same
// slot: callers must re-run it at commit time, inside the slot-lock critical
// section, because the free-slot list a user saw may be stale by the time
// they submit.
func CheckConflict(candidate models.TimeInterval, existing []models.Booking) *Conflict {
	for _, b := range existing {
		if !activeStatus(b.Status) {
			continue
		}
		if candidate.Overlaps(b.Interval) {
			return &Conflict{BookingID: b.ID}
		}
	}
	return nil
}

func activeStatus(status string) bool {
	return status == models.StatusPending || status == models.StatusConfirmed
}
