package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/workos/workos-go/v6/pkg/usermanagement"

	"tekimax.app/docs/common"
	"tekimax.app/docs/common/id"
	"tekimax.app/docs/core/config"
	"tekimax.app/docs/internal/model"
	"tekimax.app/docs/internal/store"
)

const SessionTTL = 7 * 24 * time.Hour

var (
	ErrInvalidCode    = errors.New("invalid authorization code")
	ErrSessionExpired = errors.New("session expired")
)

// ProviderUser is the identity returned by the sign-in provider.
type ProviderUser struct {
	ID         string
	Email      string
	FirstName  string
	LastName   string
	PictureURL string
}

// IdentityProvider runs the hosted sign-in flow.
type IdentityProvider interface {
	AuthorizationURL(state string) (string, error)
	Authenticate(ctx context.Context, code string) (*ProviderUser, error)
}

type workOSProvider struct {
	cfg config.WorkOSConfig
}

func NewWorkOSProvider(cfg config.WorkOSConfig) IdentityProvider {
	usermanagement.SetAPIKey(cfg.APIKey)
	return &workOSProvider{cfg: cfg}
}

func (p *workOSProvider) AuthorizationURL(state string) (string, error) {
	url, err := usermanagement.GetAuthorizationURL(usermanagement.GetAuthorizationURLOpts{
		ClientID:    p.cfg.ClientID,
		RedirectURI: p.cfg.RedirectURI,
		State:       state,
		Provider:    "authkit",
	})
	if err != nil {
		return "", err
	}
	return url.String(), nil
}

func (p *workOSProvider) Authenticate(ctx context.Context, code string) (*ProviderUser, error) {
	resp, err := usermanagement.AuthenticateWithCode(ctx, usermanagement.AuthenticateWithCodeOpts{
		ClientID: p.cfg.ClientID,
		Code:     code,
	})
	if err != nil {
		return nil, err
	}
	return &ProviderUser{
		ID:         resp.User.ID,
		Email:      resp.User.Email,
		FirstName:  resp.User.FirstName,
		LastName:   resp.User.LastName,
		PictureURL: resp.User.ProfilePictureURL,
	}, nil
}

type CallbackResult struct {
	User    *model.User
	Session *model.Session
}

type AuthService interface {
	GetAuthorizationURL(state string) (string, error)
	HandleCallback(ctx context.Context, code string) (*CallbackResult, error)
	ValidateSession(ctx context.Context, sessionID int64) (model.Identity, error)
	Logout(ctx context.Context, sessionID int64) error
	PurgeExpiredSessions(ctx context.Context) error
}

type authService struct {
	provider IdentityProvider
	stores   StoreProvider
	now      Clock
}

func NewAuthService(provider IdentityProvider, stores StoreProvider, now Clock) AuthService {
	if now == nil {
		now = time.Now
	}
	return &authService{
		provider: provider,
		stores:   stores,
		now:      now,
	}
}

func (s *authService) GetAuthorizationURL(state string) (string, error) {
	url, err := s.provider.AuthorizationURL(state)
	if err != nil {
		return "", fmt.Errorf("generating authorization URL: %w", err)
	}
	return url, nil
}

func (s *authService) HandleCallback(ctx context.Context, code string) (*CallbackResult, error) {
	pu, err := s.provider.Authenticate(ctx, code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to authenticate with code", "error", err)
		return nil, ErrInvalidCode
	}

	var avatarURL *string
	if pu.PictureURL != "" {
		avatarURL = &pu.PictureURL
	}

	user := &model.User{
		ID:        id.New(),
		Name:      buildUserName(pu),
		Email:     common.NormalizeEmail(pu.Email),
		AvatarURL: avatarURL,
		WorkOSID:  &pu.ID,
	}

	if err := s.stores.Users().UpsertFromProvider(ctx, user); err != nil {
		slog.ErrorContext(ctx, "failed to upsert user",
			"error", err,
			"workos_id", pu.ID,
		)
		return nil, fmt.Errorf("upserting user: %w", err)
	}

	session := &model.Session{
		ID:        id.New(),
		UserID:    user.ID,
		ExpiresAt: s.now().Add(SessionTTL),
	}

	if err := s.stores.Sessions().Create(ctx, session); err != nil {
		slog.ErrorContext(ctx, "failed to create session",
			"error", err,
			"user_id", user.ID,
		)
		return nil, fmt.Errorf("creating session: %w", err)
	}

	slog.InfoContext(ctx, "user authenticated",
		"user_id", user.ID,
		"session_id", session.ID,
	)

	return &CallbackResult{User: user, Session: session}, nil
}

func (s *authService) ValidateSession(ctx context.Context, sessionID int64) (model.Identity, error) {
	session, err := s.stores.Sessions().GetValid(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return model.Identity{}, ErrSessionExpired
		}
		return model.Identity{}, fmt.Errorf("getting session: %w", err)
	}

	user, err := loadUser(ctx, s.stores.Users(), session.UserID)
	if err != nil {
		return model.Identity{}, err
	}

	return model.Identity{
		UserID:     user.ID,
		Email:      user.Email,
		Name:       user.Name,
		PictureURL: user.AvatarURL,
	}, nil
}

func (s *authService) Logout(ctx context.Context, sessionID int64) error {
	if err := s.stores.Sessions().Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func (s *authService) PurgeExpiredSessions(ctx context.Context) error {
	if err := s.stores.Sessions().DeleteExpired(ctx); err != nil {
		return fmt.Errorf("purging expired sessions: %w", err)
	}
	return nil
}

func buildUserName(user *ProviderUser) string {
	if user.FirstName != "" && user.LastName != "" {
		return user.FirstName + " " + user.LastName
	}
	if user.FirstName != "" {
		return user.FirstName
	}
	if user.LastName != "" {
		return user.LastName
	}
	if local := common.EmailLocalPart(user.Email); local != "" {
		return local
	}
	return anonymousName
}
