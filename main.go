package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meetsync/config"
	"meetsync/cron"
	"meetsync/database"
	bookingRepoPkg "meetsync/database/repository/booking"
	userRepoPkg "meetsync/database/repository/user"
	"meetsync/handlers"
	"meetsync/routes"
	"meetsync/services/auth"
	"meetsync/services/availability"
	"meetsync/services/booking"
	"meetsync/services/calendar"
	"meetsync/services/geocode"
	"meetsync/services/meeting"
	"meetsync/services/notification"
	"meetsync/services/user"
	"meetsync/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	tz, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid timezone %q: %v", config.AppConfig.Timezone, err)
	}
	workStart, err := availability.ParseTimeOfDay(config.AppConfig.AvailableStartTime)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid AVAILABLE_START_TIME: %v", err)
	}
	workEnd, err := availability.ParseTimeOfDay(config.AppConfig.AvailableEndTime)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid AVAILABLE_END_TIME: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	slotLockRepo := bookingRepoPkg.NewMongoSlotLockRepo()

	// services.
	authService, err := auth.NewDefaultAuthService(userRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize auth service: %v", err)
	}
	userService := user.NewDefaultUserService(userRepo)
	calendarService := calendar.NewGoogleService()
	linkGenerator := meeting.NewDefaultLinkGenerator()
	geocoder := geocode.NewAzureMapsService(config.AppConfig.AzureMapsKey)

	var mailer notification.Mailer
	if smtpMailer, err := notification.NewSMTPMailer(tz); err != nil {
		logger.Sugar().Warnf("main: invitation emails disabled: %v", err)
	} else {
		mailer = smtpMailer
	}

	bookingService, err := booking.NewDefaultBookingService(
		bookingRepo, slotLockRepo, userRepo,
		calendarService, linkGenerator, geocoder, mailer,
		workStart, workEnd, tz,
		config.AppConfig.AdminCalendarID,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize booking service: %v", err)
	}

	if mailer != nil {
		bookingService.Reminders = cron.NewReminderScheduler()
		cron.InitReminderWorker(bookingRepo, userRepo, mailer)
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:   userRepo,
		AuthSvc:    authService,
		BookingSvc: bookingService,
		UserSvc:    userService,
		Links:      linkGenerator,
		Geocoder:   geocoder,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetAuthCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
