package user

import (
	userRepo "meetsync/database/repository/user"
	"meetsync/models"
)

// RoleStats summarizes user counts by role for the super-admin dashboard.
type RoleStats struct {
	TotalUsers  int64 `json:"totalUsers"`
	Admins      int64 `json:"admins"`
	SuperAdmins int64 `json:"superAdmins"`
}

// UserService defines user lookup and role management.
type UserService interface {
	GetUserByID(userID string) (*models.User, error)
	GetAllUsers() ([]models.PublicProfile, error)

	// Role management. Every mutation takes the acting super admin so the
	// self-demotion guard can be enforced.
	SetAdminStatus(actorID, targetID string, isAdmin bool) (*models.User, error)
	SetSuperAdminStatus(actorID, targetID string, isSuperAdmin bool) (*models.User, error)
	PromoteByEmail(email string) (*models.User, error)
	ListSuperAdmins() ([]models.PublicProfile, error)
	Stats() (*RoleStats, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// NewDefaultUserService builds the user service.
func NewDefaultUserService(repo userRepo.UserRepository) *DefaultUserService {
	return &DefaultUserService{Repo: repo}
}
