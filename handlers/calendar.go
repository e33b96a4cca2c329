package handlers

import (
	"net/http"
	"time"

	"meetsync/models"

	"github.com/gin-gonic/gin"
)

// AvailableSlotsHandler computes the free slots of a calendar day.
// GET /api/calendar/available-slots?date=2006-01-02&duration=30
func (h *HandlerBundle) AvailableSlotsHandler(c *gin.Context) {
	var req models.AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	slots, err := h.BookingSvc.AvailableSlots(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": req.Date, "slots": slots})
}

// CalendarEventsHandler lists the admin calendar's events in range, for the
// admin dashboard. Defaults to the coming week.
func (h *HandlerBundle) CalendarEventsHandler(c *gin.Context) {
	from, to, err := parseRange(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	events, svcErr := h.BookingSvc.CalendarEvents(c.Request.Context(), from, to)
	if svcErr != nil {
		respondServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func parseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	now := time.Now()
	from, to := now, now.AddDate(0, 0, 7)
	var err error
	if fromStr != "" {
		if from, err = time.Parse(time.RFC3339, fromStr); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if toStr != "" {
		if to, err = time.Parse(time.RFC3339, toStr); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return from, to, nil
}
