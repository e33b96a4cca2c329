package auth

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/oauth2"

	"meetsync/models"
)

type fakeUserRepo struct {
	byGoogleID map[string]*models.User
	created    []*models.User
	updated    []*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byGoogleID: map[string]*models.User{}}
}

func (r *fakeUserRepo) GetByID(string) (*models.User, error)    { return nil, nil }
func (r *fakeUserRepo) GetByEmail(string) (*models.User, error) { return nil, nil }
func (r *fakeUserRepo) GetAdmin() (*models.User, error)         { return nil, nil }
func (r *fakeUserRepo) GetAllWithProjection(bson.M) ([]models.User, error) {
	return nil, nil
}
func (r *fakeUserRepo) SetAdminStatus(string, bool) (*models.User, error) {
	return nil, fmt.Errorf("not implemented")
}
func (r *fakeUserRepo) SetSuperAdminStatus(string, bool) (*models.User, error) {
	return nil, fmt.Errorf("not implemented")
}
func (r *fakeUserRepo) RoleCounts() (int64, int64, int64, error) { return 0, 0, 0, nil }

func (r *fakeUserRepo) GetByGoogleID(googleID string) (*models.User, error) {
	return r.byGoogleID[googleID], nil
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.byGoogleID[u.GoogleID] = u
	r.created = append(r.created, u)
	return nil
}

func (r *fakeUserRepo) Update(u *models.User) error {
	r.byGoogleID[u.GoogleID] = u
	r.updated = append(r.updated, u)
	return nil
}

func fixedClock() time.Time {
	return time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC)
}

func TestUpsertUserCreatesNewUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultAuthService{Repo: repo, now: fixedClock}

	info := &googleUserinfo{ID: "g-1", Email: "ann@example.com", Name: "Ann", Picture: "https://p/ann"}
	token := &oauth2.Token{AccessToken: "at-1", RefreshToken: "rt-1"}

	userRec, err := svc.upsertUser(info, token)
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Empty(t, repo.updated)
	assert.NotEmpty(t, userRec.ID)
	assert.Equal(t, "g-1", userRec.GoogleID)
	assert.Equal(t, "ann@example.com", userRec.Email)
	assert.Equal(t, "at-1", userRec.AccessToken)
	assert.Equal(t, "rt-1", userRec.RefreshToken)
	assert.False(t, userRec.IsAdmin)
	assert.Equal(t, fixedClock(), userRec.CreatedAt)
	assert.Equal(t, fixedClock(), userRec.LastLogin)
}

func TestUpsertUserUpdatesExistingAndKeepsRefreshToken(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byGoogleID["g-1"] = &models.User{
		ID:           "u-1",
		GoogleID:     "g-1",
		Email:        "old@example.com",
		RefreshToken: "rt-original",
		IsAdmin:      true,
		CreatedAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	svc := &DefaultAuthService{Repo: repo, now: fixedClock}

	info := &googleUserinfo{ID: "g-1", Email: "ann@example.com", Name: "Ann"}
	// Repeat consent: Google omits the refresh token.
	token := &oauth2.Token{AccessToken: "at-2"}

	userRec, err := svc.upsertUser(info, token)
	require.NoError(t, err)

	require.Len(t, repo.updated, 1)
	assert.Empty(t, repo.created)
	assert.Equal(t, "u-1", userRec.ID)
	assert.Equal(t, "ann@example.com", userRec.Email)
	assert.Equal(t, "at-2", userRec.AccessToken)
	assert.Equal(t, "rt-original", userRec.RefreshToken)
	assert.True(t, userRec.IsAdmin)
	assert.Equal(t, fixedClock(), userRec.LastLogin)
}

func TestLoginURLRequestsOfflineAccess(t *testing.T) {
	svc := &DefaultAuthService{
		conf: &oauth2.Config{
			ClientID:    "cid",
			RedirectURL: "https://app.example.com/callback",
			Scopes:      oauthScopes,
			Endpoint:    oauth2.Endpoint{AuthURL: "https://accounts.google.com/o/oauth2/auth"},
		},
	}

	url := svc.LoginURL("state-123")
	assert.Contains(t, url, "access_type=offline")
	assert.Contains(t, url, "prompt=consent")
	assert.Contains(t, url, "state=state-123")
	assert.Contains(t, url, "calendar.events")
}
