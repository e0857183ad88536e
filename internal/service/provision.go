package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tekimax.app/docs/common"
	"tekimax.app/docs/common/id"
	"tekimax.app/docs/internal/model"
	"tekimax.app/docs/internal/store"
)

const anonymousName = "Anonymous"

// findOrCreateUser looks the user up by email and creates it when missing.
// A derived username that is already taken is dropped rather than failing.
func findOrCreateUser(ctx context.Context, users store.UserStore, email, name string, avatarURL *string) (*model.User, error) {
	email = common.NormalizeEmail(email)

	user, err := users.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}

	if name == "" {
		name = common.EmailLocalPart(email)
	}
	if name == "" {
		name = anonymousName
	}

	user = &model.User{
		ID:        id.New(),
		Name:      name,
		Email:     email,
		AvatarURL: avatarURL,
	}

	if username := common.UsernameFromEmail(email); username != "" {
		_, err := users.GetByUsername(ctx, username)
		switch {
		case errors.Is(err, store.ErrNotFound):
			user.Username = &username
		case err != nil:
			return nil, fmt.Errorf("checking username: %w", err)
		}
	}

	if err := users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	slog.InfoContext(ctx, "user provisioned", "user_id", user.ID)
	return user, nil
}

// ensureUser resolves the caller's user row, provisioning it from the
// identity's email, name and picture when the session user has gone missing.
func ensureUser(ctx context.Context, users store.UserStore, identity model.Identity) (*model.User, error) {
	if identity.UserID != 0 {
		user, err := users.GetByID(ctx, identity.UserID)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("getting user: %w", err)
		}
	}
	if identity.Email == "" {
		return nil, ErrUnauthenticated
	}
	return findOrCreateUser(ctx, users, identity.Email, identity.Name, identity.PictureURL)
}
