package handlers

import (
	"errors"
	"net/http"

	"meetsync/services/geocode"

	"github.com/gin-gonic/gin"
)

// AutosuggestHandler returns address typeahead candidates.
// GET /api/maps/autosuggest?query=400+Broad
func (h *HandlerBundle) AutosuggestHandler(c *gin.Context) {
	query := c.Query("query")
	if len(query) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query must be at least 3 characters"})
		return
	}

	suggestions, err := h.Geocoder.Suggest(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, geocode.ErrGeocodeUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "address suggestions are temporarily unavailable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch suggestions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
