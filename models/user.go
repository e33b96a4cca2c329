package models

import "time"

// User represents an account established through Google sign-in. Access and
// refresh tokens are the user's calendar credentials and never leave the server.
type User struct {
	ID           string    `bson:"id" json:"id"`
	GoogleID     string    `bson:"googleId" json:"googleId"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name" json:"name"`
	Picture      string    `bson:"picture,omitempty" json:"picture,omitempty"`
	AccessToken  string    `bson:"accessToken" json:"-"`
	RefreshToken string    `bson:"refreshToken,omitempty" json:"-"`
	IsAdmin      bool      `bson:"isAdmin" json:"isAdmin"`
	IsSuperAdmin bool      `bson:"isSuperAdmin" json:"isSuperAdmin"`
	LastLogin    time.Time `bson:"lastLogin" json:"lastLogin"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// PublicProfile is the user view exposed to API consumers.
type PublicProfile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Picture      string `json:"picture,omitempty"`
	IsAdmin      bool   `json:"isAdmin"`
	IsSuperAdmin bool   `json:"isSuperAdmin"`
}

// Public returns the externally visible projection of the user.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Picture:      u.Picture,
		IsAdmin:      u.IsAdmin,
		IsSuperAdmin: u.IsSuperAdmin,
	}
}
