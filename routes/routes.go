package routes

import (
	"net/http"
	"time"

	"meetsync/config"
	"meetsync/handlers"
	"meetsync/middleware"
	"meetsync/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the Google sign-in endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.GET("/google/login", hb.GoogleLoginHandler)
		api.GET("/google/callback", hb.GoogleCallbackHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/me", hb.MeHandler)
	}
}

// RegisterBookingRoutes sets up the booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateBookingHandler)
		api.GET("", middleware.AdminOnly(), hb.ListAllBookingsHandler)
		api.GET("/my-bookings", hb.ListMyBookingsHandler)
		api.GET("/platforms", hb.PlatformsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.PATCH("/:id/status", middleware.AdminOnly(), hb.UpdateBookingStatusHandler)
		api.DELETE("/:id", hb.CancelBookingHandler)
	}
}

// RegisterCalendarRoutes sets up availability lookup endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/available-slots", hb.AvailableSlotsHandler)
		api.POST("/check-availability", hb.CheckSlotHandler)
		api.GET("/events", middleware.AdminOnly(), hb.CalendarEventsHandler)
	}
}

// RegisterMapsRoutes sets up address lookup endpoints.
func RegisterMapsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/maps")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/autosuggest", hb.AutosuggestHandler)
	}
}

// RegisterAdminRoutes sets up the super-admin role management endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	superGroup := r.Group("/api/superadmin")
	superGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.SuperAdminOnly())
	{
		superGroup.GET("/users", hb.ListUsersHandler)
		superGroup.PATCH("/users/:id/admin-status", hb.SetAdminStatusHandler)
		superGroup.PATCH("/users/:id/super-admin-status", hb.SetSuperAdminStatusHandler)
		superGroup.GET("/stats", hb.StatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterMapsRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
