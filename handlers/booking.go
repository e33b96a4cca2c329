package handlers

import (
	"net/http"
	"time"

	"meetsync/middleware"
	"meetsync/models"
	"meetsync/services/booking"

	"github.com/gin-gonic/gin"
)

// CreateBookingHandler books a slot for the authenticated user.
func (h *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	userRec := middleware.CurrentUser(c)
	if userRec == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}

	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.BookingSvc.Create(c.Request.Context(), userRec.ID, req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// CancelBookingHandler cancels a booking owned by the caller (or any booking,
// for admins).
func (h *HandlerBundle) CancelBookingHandler(c *gin.Context) {
	userRec := middleware.CurrentUser(c)
	if userRec == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}

	updated, err := h.BookingSvc.Cancel(c.Request.Context(), userRec, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetBookingHandler fetches one booking.
func (h *HandlerBundle) GetBookingHandler(c *gin.Context) {
	userRec := middleware.CurrentUser(c)
	if userRec == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}

	b, err := h.BookingSvc.GetByID(c.Request.Context(), userRec, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListMyBookingsHandler returns the caller's bookings, soonest first.
func (h *HandlerBundle) ListMyBookingsHandler(c *gin.Context) {
	userRec := middleware.CurrentUser(c)
	if userRec == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}

	bookings, err := h.BookingSvc.ListForUser(c.Request.Context(), userRec.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// PlatformsHandler lists supported meeting platforms for client pickers.
func (h *HandlerBundle) PlatformsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"platforms": h.Links.Platforms()})
}

// CheckSlotHandler reports whether an interval is currently bookable.
func (h *HandlerBundle) CheckSlotHandler(c *gin.Context) {
	var req struct {
		Start time.Time `json:"startTime" binding:"required"`
		End   time.Time `json:"endTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	free, err := h.BookingSvc.CheckSlot(c.Request.Context(), models.TimeInterval{Start: req.Start, End: req.End})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": free})
}
