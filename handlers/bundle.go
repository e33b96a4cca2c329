package handlers

import (
	userRepoPkg "meetsync/database/repository/user"
	"meetsync/services/auth"
	"meetsync/services/booking"
	"meetsync/services/geocode"
	"meetsync/services/meeting"
	"meetsync/services/user"
)

// HandlerBundle groups the endpoint handlers' dependencies.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	AuthSvc    auth.AuthService
	BookingSvc booking.BookingService
	UserSvc    user.UserService
	Links      meeting.LinkGenerator
	Geocoder   geocode.Geocoder
}
