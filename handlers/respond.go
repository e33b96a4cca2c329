package handlers

import (
	"errors"
	"net/http"

	"meetsync/services/booking"
	"meetsync/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps booking service errors to HTTP responses. Anything
// outside the taxonomy is a 500 with a generic message.
func respondServiceError(c *gin.Context, err error) {
	var svcErr *booking.ServiceError
	if errors.As(err, &svcErr) {
		c.JSON(svcErr.HTTPStatus(), gin.H{"error": svcErr.Message, "code": svcErr.Code})
		return
	}
	utils.GetLogger().Error("unhandled service error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
