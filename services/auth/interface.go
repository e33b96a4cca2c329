package auth

import (
	"context"

	"meetsync/models"
)

// AuthResponse is returned after a successful Google sign-in.
type AuthResponse struct {
	Token string               `json:"token"`
	User  models.PublicProfile `json:"user"`
}

// AuthService handles the Google OAuth sign-in flow and session lifecycle.
type AuthService interface {
	// LoginURL builds the Google consent URL for the given CSRF state.
	LoginURL(state string) string
	// HandleCallback exchanges the authorization code, upserts the user and
	// issues a session token.
	HandleCallback(ctx context.Context, code string) (*AuthResponse, error)
	// Logout revokes the user's cached session token.
	Logout(ctx context.Context, userID string) error
}
