package models

import "time"

// TimeInterval is a half-open [Start, End) time range. The end instant itself
// does not count as occupied, so back-to-back meetings never conflict.
type TimeInterval struct {
	Start time.Time `bson:"startTime" json:"startTime"`
	End   time.Time `bson:"endTime" json:"endTime"`
}

// Valid reports whether the interval is well-formed (Start < End).
func (iv TimeInterval) Valid() bool {
	return iv.Start.Before(iv.End)
}

// Overlaps reports whether two half-open intervals intersect.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.Start.Before(other.End) && iv.End.After(other.Start)
}

// FreeSlot is a bookable interval with a display label. It is a derived view,
// recomputed on every request, and is never persisted.
type FreeSlot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Formatted string    `json:"formatted"` // "HH:MM - HH:MM", 24-hour clock
}

// AvailabilityRequest describes a free-slot query for a single calendar day.
type AvailabilityRequest struct {
	Date            string `form:"date" binding:"required"` // "2006-01-02"
	DurationMinutes int    `form:"duration"`
}

// Duration bounds accepted for a booking, in minutes.
const (
	MinDurationMinutes     = 15
	MaxDurationMinutes     = 120
	DefaultDurationMinutes = 30
)
