package user

import (
	"context"
	"errors"
	"fmt"

	"pot-portal/core/api"
	"pot-portal/core/state"
	"pot-portal/core/utils"
	playerModels "pot-portal/feature/player/models"
	"pot-portal/feature/user/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrNoToken is returned by Login when the backend accepted the request but issued no token.
var ErrNoToken = errors.New("login response did not include a token")

// TokenStore persists the bearer token.
type TokenStore interface {
	Token() string
	SetToken(token string) error
}

// Service handles user account operations.
type Service struct {
	client  api.Requester
	session TokenStore
	store   *state.Store[*models.User]
	logger  *zap.Logger
	group   singleflight.Group
}

// NewService creates a new user service. A nil store gets a fresh one.
func NewService(client api.Requester, session TokenStore, store *state.Store[*models.User], logger *zap.Logger) *Service {
	if store == nil {
		store = NewStore()
	}
	return &Service{
		client:  client,
		session: session,
		store:   store,
		logger:  logger,
	}
}

// NewStore returns an empty user store.
func NewStore() *state.Store[*models.User] {
	return state.New[*models.User](nil)
}

// Store returns the store publishing the current user.
func (s *Service) Store() *state.Store[*models.User] {
	return s.store
}

// GetProfile returns the logged-in user, or nil when there is no session.
// The profile is cached in the store; concurrent callers share one request.
// A failed fetch ends the session, unless ctx was canceled.
func (s *Service) GetProfile(ctx context.Context) (*models.User, error) {
	if s.session.Token() == "" {
		return nil, nil
	}
	if u := s.store.Get(); u != nil {
		return u, nil
	}

	v, err, _ := s.group.Do("profile", func() (any, error) {
		var u models.User
		if err := s.client.Get(ctx, "User/Profile", &u); err != nil {
			return nil, err
		}
		s.store.Set(&u)
		return &u, nil
	})
	if errors.Is(err, context.Canceled) {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if err != nil {
		s.logger.Warn("Profile fetch failed, clearing session", zap.Error(err))
		if clearErr := s.session.SetToken(""); clearErr != nil {
			s.logger.Error("Failed to clear session", zap.Error(clearErr))
		}
		s.store.Set(nil)
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return v.(*models.User), nil
}

// Login exchanges credentials for a token, stores it and loads the profile.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	var resp models.LoginResponse
	if err := s.client.Post(ctx, "", models.Credentials{Email: email, Password: password}, &resp); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if resp.Token == "" {
		return nil, ErrNoToken
	}
	return s.startSession(ctx, resp.Token)
}

// Signup creates an account. When the backend logs the new account in
// immediately, the session is stored and the profile returned; otherwise the
// returned user is nil.
func (s *Service) Signup(ctx context.Context, email, password, profileName string) (*models.User, error) {
	var resp models.LoginResponse
	req := models.SignupRequest{Email: email, Password: password, ProfileName: profileName}
	if err := s.client.Post(ctx, "User", req, &resp); err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}
	if resp.Token == "" {
		return nil, nil
	}
	return s.startSession(ctx, resp.Token)
}

// ForgotPassword requests a password reset mail.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	if err := s.client.Post(ctx, "RequestPasswordReset", models.PasswordResetRequest{Email: email}, nil); err != nil {
		return fmt.Errorf("password reset request failed: %w", err)
	}
	return nil
}

// ResetPassword sets a new password using the mailed token.
func (s *Service) ResetPassword(ctx context.Context, email, token, password string) error {
	req := models.PasswordReset{Token: token, Password: password, Email: email}
	if err := s.client.Post(ctx, "ResetPassword", req, nil); err != nil {
		return fmt.Errorf("password reset failed: %w", err)
	}
	return nil
}

// Signout forgets the token and the cached user.
func (s *Service) Signout() error {
	err := s.session.SetToken("")
	s.store.Set(nil)
	if err != nil {
		return fmt.Errorf("signout failed: %w", err)
	}
	return nil
}

// UpdateProfile renames the public profile and reloads it.
func (s *Service) UpdateProfile(ctx context.Context, profileName string) (*models.User, error) {
	if err := s.client.Patch(ctx, "User", models.ProfileUpdate{ProfileName: profileName}, nil); err != nil {
		return nil, fmt.Errorf("profile update failed: %w", err)
	}
	return s.refresh(ctx)
}

// UnlinkSteam detaches the Steam account and reloads the profile.
func (s *Service) UnlinkSteam(ctx context.Context) (*models.User, error) {
	if err := s.client.Delete(ctx, "User/UnlinkSteam", nil); err != nil {
		return nil, fmt.Errorf("steam unlink failed: %w", err)
	}
	return s.refresh(ctx)
}

// GetPlayers returns the characters owned by profileName.
func (s *Service) GetPlayers(ctx context.Context, profileName string) (playerModels.Players, error) {
	var players playerModels.Players
	if err := s.client.Get(ctx, "User/"+utils.PathSegment(profileName)+"/Players", &players); err != nil {
		return nil, fmt.Errorf("failed to load players of %s: %w", profileName, err)
	}
	if players == nil {
		players = playerModels.Players{}
	}
	return players, nil
}

func (s *Service) startSession(ctx context.Context, token string) (*models.User, error) {
	if err := s.session.SetToken(token); err != nil {
		return nil, err
	}
	s.store.Set(nil)
	return s.GetProfile(ctx)
}

// refresh drops the cached profile so the next read hits the backend.
func (s *Service) refresh(ctx context.Context) (*models.User, error) {
	s.store.Set(nil)
	return s.GetProfile(ctx)
}
