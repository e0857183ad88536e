package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"tekimax.app/docs/internal/model"
	"tekimax.app/docs/internal/store"
)

var anyRole = []model.MemberRole{model.MemberRoleOwner, model.MemberRoleAdmin, model.MemberRoleMember}

// Clock is injected so expiry can be tested deterministically.
type Clock func() time.Time

// ObjectStorage issues presigned URLs for direct browser uploads.
type ObjectStorage interface {
	PresignUpload(ctx context.Context, key string) (*url.URL, time.Time, error)
	PresignDownload(ctx context.Context, key string) (*url.URL, error)
	Remove(ctx context.Context, key string) error
}

type UploadURL struct {
	URL       string    `json:"upload_url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}

func loadWorkspace(ctx context.Context, workspaces store.WorkspaceStore, id int64) (*model.Workspace, error) {
	ws, err := workspaces.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("getting workspace: %w", err)
	}
	return ws, nil
}

func loadUser(ctx context.Context, users store.UserStore, id int64) (*model.User, error) {
	user, err := users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

// authorize returns denied unless userID is a member of ws holding one of roles.
func authorize(ws *model.Workspace, userID int64, denied error, roles ...model.MemberRole) error {
	if !ws.HasRole(userID, roles...) {
		return denied
	}
	return nil
}

func presign(ctx context.Context, storage ObjectStorage, key string) (*UploadURL, error) {
	if storage == nil {
		return nil, ErrStorageDisabled
	}
	u, expiresAt, err := storage.PresignUpload(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("presigning upload: %w", err)
	}
	return &UploadURL{URL: u.String(), Key: key, ExpiresAt: expiresAt}, nil
}

// resolveURL turns a stored object key into a readable URL. Storage errors are
// not fatal for reads; the caller just gets no URL.
func resolveURL(ctx context.Context, storage ObjectStorage, key *string) *string {
	if storage == nil || key == nil || *key == "" {
		return nil
	}
	u, err := storage.PresignDownload(ctx, *key)
	if err != nil {
		return nil
	}
	s := u.String()
	return &s
}
