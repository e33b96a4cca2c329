package availability

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"meetsync/models"
)

// TimeOfDay is a wall-clock bound of the bookable work window.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses an "HH:MM" configuration value.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("invalid minute in %q", s)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// On anchors the time of day to the given calendar day, in that day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// slotGranularity is the fixed step at which candidate start times are
// generated, independent of the requested duration.
const slotGranularity = 30 * time.Minute

// NextSlotBoundary rounds now up to the next 30-minute wall-clock boundary,
// dropping seconds. A time already on a boundary keeps its minute.
func NextSlotBoundary(now time.Time) time.Time {
	boundary := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), 0, 0, now.Location())
	if rem := now.Minute() % 30; rem != 0 {
		boundary = boundary.Add(time.Duration(30-rem) * time.Minute)
	}
	return boundary
}

// ComputeFreeSlots returns the open slots of the given duration on day,
// ordered ascending by start time.
//
// Candidate start times step every 30 minutes through the work window; a
// candidate is kept only when [start, start+duration) fits inside the window
// and overlaps none of the busy intervals (half-open semantics, so a slot
// starting exactly when a meeting ends is free). When day is today, candidates
// before now are skipped by rounding now up to the next 30-minute boundary.
//
// The function is pure: day, busy and now must already be normalized to one
// timezone by the caller, and identical inputs always yield identical output.
func ComputeFreeSlots(
	day time.Time,
	durationMinutes int,
	busy []models.TimeInterval,
	workStart, workEnd TimeOfDay,
	now time.Time,
) []models.FreeSlot {
	windowStart := workStart.On(day)
	windowEnd := workEnd.On(day)
	duration := time.Duration(durationMinutes) * time.Minute

	effectiveStart := windowStart
	if sameDay(day, now) {
		if boundary := NextSlotBoundary(now); boundary.After(windowStart) {
			effectiveStart = boundary
		}
	}

	var slots []models.FreeSlot
	for t := effectiveStart; t.Before(windowEnd); t = t.Add(slotGranularity) {
		slotEnd := t.Add(duration)
		if slotEnd.After(windowEnd) {
			break
		}

		candidate := models.TimeInterval{Start: t, End: slotEnd}
		if overlapsAny(candidate, busy) {
			continue
		}

		slots = append(slots, models.FreeSlot{
			Start:     t,
			End:       slotEnd,
			Formatted: fmt.Sprintf("%s - %s", t.Format("15:04"), slotEnd.Format("15:04")),
		})
	}
	return slots
}

func overlapsAny(candidate models.TimeInterval, busy []models.TimeInterval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
