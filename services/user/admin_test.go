package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"meetsync/models"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func newStubUserRepo(users ...*models.User) *stubUserRepo {
	r := &stubUserRepo{users: map[string]*models.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) GetByID(id string) (*models.User, error) { return r.users[id], nil }
func (r *stubUserRepo) GetByGoogleID(string) (*models.User, error) {
	return nil, nil
}
func (r *stubUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *stubUserRepo) GetAdmin() (*models.User, error) { return nil, nil }
func (r *stubUserRepo) GetAllWithProjection(bson.M) ([]models.User, error) {
	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}
func (r *stubUserRepo) Create(u *models.User) error { r.users[u.ID] = u; return nil }
func (r *stubUserRepo) Update(u *models.User) error { r.users[u.ID] = u; return nil }

func (r *stubUserRepo) SetAdminStatus(id string, isAdmin bool) (*models.User, error) {
	u := r.users[id]
	if u == nil {
		return nil, nil
	}
	u.IsAdmin = isAdmin
	return u, nil
}

func (r *stubUserRepo) SetSuperAdminStatus(id string, isSuperAdmin bool) (*models.User, error) {
	u := r.users[id]
	if u == nil {
		return nil, nil
	}
	u.IsSuperAdmin = isSuperAdmin
	if isSuperAdmin {
		u.IsAdmin = true
	}
	return u, nil
}

func (r *stubUserRepo) RoleCounts() (int64, int64, int64, error) {
	var total, admins, supers int64
	for _, u := range r.users {
		total++
		if u.IsAdmin {
			admins++
		}
		if u.IsSuperAdmin {
			supers++
		}
	}
	return total, admins, supers, nil
}

func TestSetSuperAdminStatusRejectsSelfDemotion(t *testing.T) {
	repo := newStubUserRepo(&models.User{ID: "u-1", IsAdmin: true, IsSuperAdmin: true})
	svc := NewDefaultUserService(repo)

	_, err := svc.SetSuperAdminStatus("u-1", "u-1", false)
	assert.ErrorIs(t, err, ErrSelfDemotion)
	assert.True(t, repo.users["u-1"].IsSuperAdmin)
}

func TestSetSuperAdminStatusPromotesOther(t *testing.T) {
	repo := newStubUserRepo(
		&models.User{ID: "u-1", IsSuperAdmin: true},
		&models.User{ID: "u-2"},
	)
	svc := NewDefaultUserService(repo)

	updated, err := svc.SetSuperAdminStatus("u-1", "u-2", true)
	require.NoError(t, err)
	assert.True(t, updated.IsSuperAdmin)
	assert.True(t, updated.IsAdmin)
}

func TestSetAdminStatusUnknownTarget(t *testing.T) {
	svc := NewDefaultUserService(newStubUserRepo())

	_, err := svc.SetAdminStatus("u-1", "missing", true)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPromoteByEmail(t *testing.T) {
	repo := newStubUserRepo(&models.User{ID: "u-2", Email: "ann@example.com"})
	svc := NewDefaultUserService(repo)

	updated, err := svc.PromoteByEmail("ann@example.com")
	require.NoError(t, err)
	assert.True(t, updated.IsSuperAdmin)

	_, err = svc.PromoteByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStatsAndSuperAdminList(t *testing.T) {
	repo := newStubUserRepo(
		&models.User{ID: "u-1", IsAdmin: true, IsSuperAdmin: true},
		&models.User{ID: "u-2", IsAdmin: true},
		&models.User{ID: "u-3"},
	)
	svc := NewDefaultUserService(repo)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.TotalUsers)
	assert.Equal(t, int64(2), stats.Admins)
	assert.Equal(t, int64(1), stats.SuperAdmins)

	supers, err := svc.ListSuperAdmins()
	require.NoError(t, err)
	require.Len(t, supers, 1)
	assert.Equal(t, "u-1", supers[0].ID)
}
