package userRepo

import (
	"meetsync/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByGoogleID retrieves a user by its Google account ID. Returns nil
	// without error when no such user exists.
	GetByGoogleID(googleID string) (*models.User, error)
	// GetByEmail retrieves a user by its email address. Returns nil without
	// error when no such user exists.
	GetByEmail(email string) (*models.User, error)
	// GetAdmin retrieves the administrator whose calendar is the shared
	// booking resource.
	GetAdmin() (*models.User, error)
	// GetAllWithProjection retrieves all users with an optional projection.
	GetAllWithProjection(projection bson.M) ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update replaces an existing user record.
	Update(user *models.User) error
	// SetAdminStatus flips the admin flag and returns the updated user.
	SetAdminStatus(id string, isAdmin bool) (*models.User, error)
	// SetSuperAdminStatus flips the super-admin flag and returns the updated
	// user. Promoting to super admin also grants admin.
	SetSuperAdminStatus(id string, isSuperAdmin bool) (*models.User, error)
	// RoleCounts returns total, admin and super-admin user counts.
	RoleCounts() (total, admins, superAdmins int64, err error)
}
