package user

import (
	"fmt"

	"meetsync/models"
	"meetsync/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ErrSelfDemotion is returned when a super admin tries to strip their own
// super-admin role. Another super admin has to do it.
var ErrSelfDemotion = fmt.Errorf("super admins cannot demote themselves")

// ErrUserNotFound is returned when the target user does not exist.
var ErrUserNotFound = fmt.Errorf("user not found")

// GetUserByID retrieves a user by ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if userRec == nil {
		return nil, ErrUserNotFound
	}
	return userRec, nil
}

// GetAllUsers lists every user, stripped of calendar credentials.
func (s *DefaultUserService) GetAllUsers() ([]models.PublicProfile, error) {
	users, err := s.Repo.GetAllWithProjection(bson.M{"accessToken": 0, "refreshToken": 0})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	profiles := make([]models.PublicProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Public())
	}
	return profiles, nil
}

// SetAdminStatus grants or revokes the admin role on the target user.
func (s *DefaultUserService) SetAdminStatus(actorID, targetID string, isAdmin bool) (*models.User, error) {
	if !isAdmin && actorID == targetID {
		return nil, ErrSelfDemotion
	}
	updated, err := s.Repo.SetAdminStatus(targetID, isAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to update admin status: %w", err)
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}
	utils.GetLogger().Info("admin status changed",
		zap.String("actorId", actorID),
		zap.String("targetId", targetID),
		zap.Bool("isAdmin", isAdmin))
	return updated, nil
}

// SetSuperAdminStatus grants or revokes the super-admin role. Demoting
// yourself is rejected so the system always keeps at least one super admin.
func (s *DefaultUserService) SetSuperAdminStatus(actorID, targetID string, isSuperAdmin bool) (*models.User, error) {
	if !isSuperAdmin && actorID == targetID {
		return nil, ErrSelfDemotion
	}
	updated, err := s.Repo.SetSuperAdminStatus(targetID, isSuperAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to update super admin status: %w", err)
	}
	if updated == nil {
		return nil, ErrUserNotFound
	}
	utils.GetLogger().Info("super admin status changed",
		zap.String("actorId", actorID),
		zap.String("targetId", targetID),
		zap.Bool("isSuperAdmin", isSuperAdmin))
	return updated, nil
}

// PromoteByEmail grants super admin to the user with the given email. Used by
// the operator CLI to bootstrap the first super admin.
func (s *DefaultUserService) PromoteByEmail(email string) (*models.User, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if userRec == nil {
		return nil, ErrUserNotFound
	}
	updated, err := s.Repo.SetSuperAdminStatus(userRec.ID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to promote user: %w", err)
	}
	return updated, nil
}

// ListSuperAdmins returns all super-admin users.
func (s *DefaultUserService) ListSuperAdmins() ([]models.PublicProfile, error) {
	profiles, err := s.GetAllUsers()
	if err != nil {
		return nil, err
	}
	supers := make([]models.PublicProfile, 0)
	for _, p := range profiles {
		if p.IsSuperAdmin {
			supers = append(supers, p)
		}
	}
	return supers, nil
}

// Stats returns user counts by role.
func (s *DefaultUserService) Stats() (*RoleStats, error) {
	total, admins, superAdmins, err := s.Repo.RoleCounts()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	return &RoleStats{TotalUsers: total, Admins: admins, SuperAdmins: superAdmins}, nil
}
