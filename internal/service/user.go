package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"tekimax.app/docs/common"
	"tekimax.app/docs/common/id"
	"tekimax.app/docs/common/logger"
	"tekimax.app/docs/internal/model"
	"tekimax.app/docs/internal/store"
)

var (
	ErrUsernameTaken       = errors.New("username is already taken")
	ErrOwnsSharedWorkspace = errors.New("account still owns shared workspaces")
	ErrImageKeyRequired    = errors.New("image key is required")
)

// Profile is a user as shown to themselves.
type Profile struct {
	User         model.User
	DisplayName  string
	Subscription *model.Subscription
}

type UpdateUserInput struct {
	Username  *string
	Name      *string
	AvatarURL *string
}

type UserService interface {
	Me(ctx context.Context, callerID int64) (*Profile, error)
	Update(ctx context.Context, callerID int64, in UpdateUserInput) (*model.User, error)
	SetImage(ctx context.Context, callerID int64, key string) (*model.User, error)
	RemoveImage(ctx context.Context, callerID int64) (*model.User, error)
	GenerateUploadURL(ctx context.Context, callerID int64) (*UploadURL, error)
	DeleteAccount(ctx context.Context, callerID int64) error
	ListByWorkspace(ctx context.Context, callerID, workspaceID int64) ([]model.User, error)
}

type userService struct {
	stores   StoreProvider
	txRunner TxRunner
	storage  ObjectStorage
}

func NewUserService(stores StoreProvider, txRunner TxRunner, storage ObjectStorage) UserService {
	return &userService{
		stores:   stores,
		txRunner: txRunner,
		storage:  storage,
	}
}

func (s *userService) Me(ctx context.Context, callerID int64) (*Profile, error) {
	user, err := loadUser(ctx, s.stores.Users(), callerID)
	if err != nil {
		return nil, err
	}
	s.decorate(ctx, user)

	profile := &Profile{User: *user, DisplayName: user.DisplayName()}

	sub, err := s.stores.Subscriptions().GetByUser(ctx, callerID)
	switch {
	case err == nil:
		profile.Subscription = sub
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("getting subscription: %w", err)
	}

	return profile, nil
}

func (s *userService) Update(ctx context.Context, callerID int64, in UpdateUserInput) (*model.User, error) {
	if in.Username != nil {
		if err := common.ValidateUsername(*in.Username); err != nil {
			return nil, err
		}
	}

	var user *model.User
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		var err error
		user, err = loadUser(ctx, stores.Users(), callerID)
		if err != nil {
			return err
		}

		if in.Username != nil {
			existing, err := stores.Users().GetByUsername(ctx, *in.Username)
			switch {
			case err == nil:
				if existing.ID != user.ID {
					return ErrUsernameTaken
				}
			case !errors.Is(err, store.ErrNotFound):
				return fmt.Errorf("checking username: %w", err)
			}
			user.Username = in.Username
		}
		if in.Name != nil {
			user.Name = strings.TrimSpace(*in.Name)
		}
		if in.AvatarURL != nil {
			user.AvatarURL = in.AvatarURL
		}

		if err := stores.Users().Update(ctx, user); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return ErrUsernameTaken
			}
			return fmt.Errorf("updating user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user updated", "user_id", user.ID)
	s.decorate(ctx, user)
	return user, nil
}

func (s *userService) SetImage(ctx context.Context, callerID int64, key string) (*model.User, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrImageKeyRequired
	}
	user, _, err := s.replaceImage(ctx, callerID, &key)
	return user, err
}

// RemoveImage clears both the uploaded image and any provider avatar.
func (s *userService) RemoveImage(ctx context.Context, callerID int64) (*model.User, error) {
	user, previous, err := s.replaceImage(ctx, callerID, nil)
	if err != nil {
		return nil, err
	}
	if s.storage != nil && previous != nil && *previous != "" {
		if err := s.storage.Remove(ctx, *previous); err != nil {
			slog.WarnContext(ctx, "failed to remove user image", "error", err, "key", *previous)
		}
	}
	return user, nil
}

func (s *userService) replaceImage(ctx context.Context, callerID int64, key *string) (*model.User, *string, error) {
	user, err := loadUser(ctx, s.stores.Users(), callerID)
	if err != nil {
		return nil, nil, err
	}

	previous := user.ImageKey
	user.ImageKey = key
	if key == nil {
		user.AvatarURL = nil
	}
	if err := s.stores.Users().Update(ctx, user); err != nil {
		return nil, nil, fmt.Errorf("updating user image: %w", err)
	}
	s.decorate(ctx, user)
	return user, previous, nil
}

func (s *userService) GenerateUploadURL(ctx context.Context, callerID int64) (*UploadURL, error) {
	if _, err := loadUser(ctx, s.stores.Users(), callerID); err != nil {
		return nil, err
	}
	return presign(ctx, s.storage, fmt.Sprintf("users/%d/avatar/%d", callerID, id.New()))
}

// DeleteAccount removes the subscription, sessions and personal workspace of
// the caller, then the user row itself.
func (s *userService) DeleteAccount(ctx context.Context, callerID int64) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: logger.Ptr(callerID)})

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		if _, err := loadUser(ctx, stores.Users(), callerID); err != nil {
			return err
		}

		sub, err := stores.Subscriptions().GetByUser(ctx, callerID)
		switch {
		case err == nil:
			if err := stores.Subscriptions().Delete(ctx, sub.ID); err != nil {
				return fmt.Errorf("deleting subscription: %w", err)
			}
		case errors.Is(err, store.ErrNotFound):
			slog.WarnContext(ctx, "no subscription found for deleted account")
		default:
			return fmt.Errorf("getting subscription: %w", err)
		}

		if err := stores.Sessions().DeleteByUser(ctx, callerID); err != nil {
			return fmt.Errorf("deleting sessions: %w", err)
		}

		owned, err := stores.Workspaces().ListOwnedBy(ctx, callerID)
		if err != nil {
			return fmt.Errorf("listing owned workspaces: %w", err)
		}
		for _, ws := range owned {
			if !ws.IsPersonal() {
				return ErrOwnsSharedWorkspace
			}
			if _, err := deleteWorkspaceInvites(ctx, stores.Invites(), ws.ID); err != nil {
				return err
			}
			if err := stores.Workspaces().Delete(ctx, ws.ID); err != nil {
				return fmt.Errorf("deleting personal workspace: %w", err)
			}
		}

		if err := stores.Users().Delete(ctx, callerID); err != nil {
			return fmt.Errorf("deleting user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "account deleted")
	return nil
}

// ListByWorkspace returns only the owner for personal workspaces and every
// member, sorted by display name, otherwise.
func (s *userService) ListByWorkspace(ctx context.Context, callerID, workspaceID int64) ([]model.User, error) {
	ws, err := loadWorkspace(ctx, s.stores.Workspaces(), workspaceID)
	if err != nil {
		return nil, err
	}
	if err := authorize(ws, callerID, ErrNotMember, anyRole...); err != nil {
		return nil, err
	}

	if ws.IsPersonal() {
		owner, err := s.stores.Users().GetByID(ctx, ws.OwnerID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return []model.User{}, nil
			}
			return nil, fmt.Errorf("getting owner: %w", err)
		}
		s.decorate(ctx, owner)
		return []model.User{*owner}, nil
	}

	users, err := s.stores.Users().ListByWorkspace(ctx, ws.ID)
	if err != nil {
		return nil, fmt.Errorf("listing workspace users: %w", err)
	}
	for i := range users {
		s.decorate(ctx, &users[i])
	}
	slices.SortStableFunc(users, func(a, b model.User) int {
		return cmp.Compare(a.DisplayName(), b.DisplayName())
	})
	return users, nil
}

// decorate resolves the uploaded image, which wins over a provider avatar.
func (s *userService) decorate(ctx context.Context, user *model.User) {
	if url := resolveURL(ctx, s.storage, user.ImageKey); url != nil {
		user.AvatarURL = url
	}
}
