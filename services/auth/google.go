package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"meetsync/config"
	userRepo "meetsync/database/repository/user"
	"meetsync/models"
	"meetsync/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

var oauthScopes = []string{
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/calendar",
	"https://www.googleapis.com/auth/calendar.events",
}

// DefaultAuthService implements AuthService against Google OAuth.
type DefaultAuthService struct {
	Repo userRepo.UserRepository
	conf *oauth2.Config
	now  func() time.Time
}

// NewDefaultAuthService builds the auth service from the application config.
func NewDefaultAuthService(repo userRepo.UserRepository) (*DefaultAuthService, error) {
	cfg := config.AppConfig
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		return nil, fmt.Errorf("auth service initialization error: Google OAuth credentials not configured")
	}
	if repo == nil {
		return nil, fmt.Errorf("auth service initialization error: user repository is nil")
	}
	return &DefaultAuthService{
		Repo: repo,
		conf: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleCallbackURL,
			Scopes:       oauthScopes,
			Endpoint:     google.Endpoint,
		},
		now: time.Now,
	}, nil
}

// LoginURL builds the Google consent URL. Offline access is requested so the
// calendar integration keeps working after the access token expires.
func (s *DefaultAuthService) LoginURL(state string) string {
	return s.conf.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"))
}

type googleUserinfo struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

func (s *DefaultAuthService) fetchUserinfo(ctx context.Context, token *oauth2.Token) (*googleUserinfo, error) {
	resp, err := s.conf.Client(ctx, token).Get(userinfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch Google profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("failed to fetch Google profile: status %d", resp.StatusCode)
	}

	var info googleUserinfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode Google profile: %w", err)
	}
	if info.ID == "" || info.Email == "" {
		return nil, fmt.Errorf("Google profile is missing id or email")
	}
	return &info, nil
}

// HandleCallback exchanges the authorization code, upserts the user record
// with fresh OAuth tokens and issues a session JWT.
func (s *DefaultAuthService) HandleCallback(ctx context.Context, code string) (*AuthResponse, error) {
	token, err := s.conf.Exchange(ctx, code)
	if err != nil {
		utils.GetLogger().Error("OAuth code exchange failed", zap.Error(err))
		return nil, fmt.Errorf("sign-in failed, please try again")
	}

	info, err := s.fetchUserinfo(ctx, token)
	if err != nil {
		utils.GetLogger().Error("OAuth userinfo fetch failed", zap.Error(err))
		return nil, fmt.Errorf("sign-in failed, please try again")
	}

	userRec, err := s.upsertUser(info, token)
	if err != nil {
		return nil, err
	}

	jwtToken, err := utils.GenerateToken(userRec.ID, userRec.Email, utils.AuthCacheTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}
	if err := utils.CacheAuthToken(userRec.ID, utils.HashToken(jwtToken)); err != nil {
		return nil, fmt.Errorf("failed to register session: %w", err)
	}

	utils.GetLogger().Info("user signed in",
		zap.String("userId", userRec.ID), zap.String("email", userRec.Email))

	return &AuthResponse{Token: jwtToken, User: userRec.Public()}, nil
}

func (s *DefaultAuthService) upsertUser(info *googleUserinfo, token *oauth2.Token) (*models.User, error) {
	userRec, err := s.Repo.GetByGoogleID(info.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	now := s.now()
	isNew := userRec == nil
	if isNew {
		userRec = &models.User{
			ID:        uuid.New().String(),
			GoogleID:  info.ID,
			CreatedAt: now,
		}
	}

	userRec.Email = info.Email
	userRec.Name = info.Name
	userRec.Picture = info.Picture
	userRec.AccessToken = token.AccessToken
	// Google only returns a refresh token on the first consent; keep the
	// stored one when the new exchange omits it.
	if token.RefreshToken != "" {
		userRec.RefreshToken = token.RefreshToken
	}
	userRec.LastLogin = now

	if isNew {
		if err := s.Repo.Create(userRec); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return userRec, nil
	}
	if err := s.Repo.Update(userRec); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return userRec, nil
}

// Logout revokes the cached session token so the JWT stops validating.
func (s *DefaultAuthService) Logout(_ context.Context, userID string) error {
	if err := utils.RevokeAuthToken(userID); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}
