package handlers

import (
	"errors"
	"net/http"
	"time"

	bookingRepo "meetsync/database/repository/booking"
	"meetsync/middleware"
	"meetsync/services/user"

	"github.com/gin-gonic/gin"
)

// ListUsersHandler returns every user, stripped of calendar credentials.
func (h *HandlerBundle) ListUsersHandler(c *gin.Context) {
	profiles, err := h.UserSvc.GetAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": profiles})
}

type roleRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// SetAdminStatusHandler grants or revokes the admin role.
func (h *HandlerBundle) SetAdminStatusHandler(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.UserSvc.SetAdminStatus(actor.ID, c.Param("id"), *req.Enabled)
	if err != nil {
		respondRoleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated.Public())
}

// SetSuperAdminStatusHandler grants or revokes the super-admin role.
func (h *HandlerBundle) SetSuperAdminStatusHandler(c *gin.Context) {
	actor := middleware.CurrentUser(c)
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.UserSvc.SetSuperAdminStatus(actor.ID, c.Param("id"), *req.Enabled)
	if err != nil {
		respondRoleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated.Public())
}

func respondRoleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrSelfDemotion):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, user.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update role"})
	}
}

// StatsHandler returns user counts by role.
func (h *HandlerBundle) StatsHandler(c *gin.Context) {
	stats, err := h.UserSvc.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListAllBookingsHandler returns bookings matching the optional filters.
// GET /api/admin/bookings?status=confirmed&from=...&to=...
func (h *HandlerBundle) ListAllBookingsHandler(c *gin.Context) {
	filter := bookingRepo.ListFilter{Status: c.Query("status")}
	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from timestamp"})
			return
		}
		filter.RangeFrom = from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to timestamp"})
			return
		}
		filter.RangeTo = to
	}

	bookings, err := h.BookingSvc.ListAll(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBookingStatusHandler transitions a booking's status.
func (h *HandlerBundle) UpdateBookingStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.BookingSvc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
