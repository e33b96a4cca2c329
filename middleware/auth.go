package middleware

import (
	"net/http"
	"strings"

	userRepo "meetsync/database/repository/user"
	"meetsync/models"
	"meetsync/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextUserIDKey = "userID"
	ContextUserKey   = "currentUser"
)

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": "Insufficient authorization",
	})
}

// JWTAuthMiddleware validates the bearer token against the session cache and
// loads the authenticated user into the request context.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c)
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			unauthorized(c)
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			unauthorized(c)
			return
		}

		// The cached hash is the revocation check: logout deletes it.
		cachedHash, err := utils.GetCachedAuthToken(userID)
		if err != nil || cachedHash != utils.HashToken(tokenString) {
			unauthorized(c)
			return
		}

		userRec, err := users.GetByID(userID)
		if err != nil || userRec == nil {
			unauthorized(c)
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Set(ContextUserKey, userRec)
		c.Next()
	}
}

// CurrentUser returns the authenticated user loaded by JWTAuthMiddleware.
func CurrentUser(c *gin.Context) *models.User {
	val, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	userRec, ok := val.(*models.User)
	if !ok {
		return nil
	}
	return userRec
}

// AdminOnly requires the authenticated user to hold the admin role. It must
// run after JWTAuthMiddleware.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRec := CurrentUser(c)
		if userRec == nil {
			unauthorized(c)
			return
		}
		if !userRec.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Admin access required",
			})
			return
		}
		c.Next()
	}
}

// SuperAdminOnly requires the super-admin role.
func SuperAdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRec := CurrentUser(c)
		if userRec == nil {
			unauthorized(c)
			return
		}
		if !userRec.IsSuperAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Super admin access required",
			})
			return
		}
		c.Next()
	}
}
