package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tekimax.app/docs/common/id"
	"tekimax.app/docs/common/logger"
	"tekimax.app/docs/internal/model"
	"tekimax.app/docs/internal/store"
)

var (
	ErrPersonalWorkspace       = errors.New("personal workspaces cannot be deleted")
	ErrPersonalWorkspaceExists = errors.New("a personal workspace already exists")
	ErrInvalidWorkspaceName    = errors.New("workspace name is required")
	ErrInvalidWorkspaceType    = errors.New("invalid workspace type")
)

type CreateWorkspaceInput struct {
	Name       string
	Type       model.WorkspaceType
	CustomType *string
	Settings   *model.WorkspaceSettings
}

// UpdateWorkspaceInput applies only the non-nil fields.
type UpdateWorkspaceInput struct {
	Name       *string
	Type       *model.WorkspaceType
	CustomType *string
	Settings   *model.WorkspaceSettings
}

type WorkspaceService interface {
	Create(ctx context.Context, identity model.Identity, in CreateWorkspaceInput) (*model.Workspace, error)
	Get(ctx context.Context, callerID, workspaceID int64) (*model.Workspace, error)
	List(ctx context.Context, callerID int64) ([]model.Workspace, error)
	Update(ctx context.Context, callerID, workspaceID int64, in UpdateWorkspaceInput) (*model.Workspace, error)
	Remove(ctx context.Context, callerID, workspaceID int64) error
	ResolveActive(ctx context.Context, callerID int64, preferredID *int64) (*model.Workspace, error)
	GenerateUploadURL(ctx context.Context, callerID int64, workspaceID *int64) (*UploadURL, error)
}

type workspaceService struct {
	stores   StoreProvider
	txRunner TxRunner
	storage  ObjectStorage
	now      Clock
}

// NewWorkspaceService accepts a nil storage; logo URLs are then left unresolved.
func NewWorkspaceService(stores StoreProvider, txRunner TxRunner, storage ObjectStorage, now Clock) WorkspaceService {
	if now == nil {
		now = time.Now
	}
	return &workspaceService{
		stores:   stores,
		txRunner: txRunner,
		storage:  storage,
		now:      now,
	}
}

func (s *workspaceService) Create(ctx context.Context, identity model.Identity, in CreateWorkspaceInput) (*model.Workspace, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrInvalidWorkspaceName
	}
	customType, err := normalizeType(in.Type, in.CustomType)
	if err != nil {
		return nil, err
	}

	var ws *model.Workspace
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		owner, err := ensureUser(ctx, stores.Users(), identity)
		if err != nil {
			return err
		}

		if in.Type == model.WorkspaceTypePersonal {
			_, err := stores.Workspaces().GetPersonal(ctx, owner.ID)
			switch {
			case err == nil:
				return ErrPersonalWorkspaceExists
			case !errors.Is(err, store.ErrNotFound):
				return fmt.Errorf("checking personal workspace: %w", err)
			}
		}

		ws = &model.Workspace{
			ID:         id.New(),
			Name:       name,
			Type:       in.Type,
			CustomType: customType,
			OwnerID:    owner.ID,
			Members: []model.Membership{{
				UserID:   owner.ID,
				Role:     model.MemberRoleOwner,
				JoinedAt: s.now(),
			}},
		}
		if in.Settings != nil {
			ws.Settings = *in.Settings
		}
		// Only the key is stored; presigned URLs are resolved on read.
		if ws.Settings.LogoKey != nil {
			ws.Settings.LogoURL = nil
		}

		if err := stores.Workspaces().Create(ctx, ws); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return ErrPersonalWorkspaceExists
			}
			return fmt.Errorf("creating workspace: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "workspace created",
		"workspace_id", ws.ID,
		"user_id", ws.OwnerID,
		"type", ws.Type,
	)

	s.decorate(ctx, ws)
	return ws, nil
}

// Get requires an authenticated caller but not membership.
func (s *workspaceService) Get(ctx context.Context, callerID, workspaceID int64) (*model.Workspace, error) {
	if callerID == 0 {
		return nil, ErrUnauthenticated
	}
	ws, err := loadWorkspace(ctx, s.stores.Workspaces(), workspaceID)
	if err != nil {
		return nil, err
	}
	s.decorate(ctx, ws)
	return ws, nil
}

func (s *workspaceService) List(ctx context.Context, callerID int64) ([]model.Workspace, error) {
	workspaces, err := s.stores.Workspaces().ListForUser(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("listing workspaces: %w", err)
	}
	for i := range workspaces {
		s.decorate(ctx, &workspaces[i])
	}
	return workspaces, nil
}

func (s *workspaceService) Update(ctx context.Context, callerID, workspaceID int64, in UpdateWorkspaceInput) (*model.Workspace, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:      logger.Ptr(callerID),
		WorkspaceID: logger.Ptr(workspaceID),
	})

	var ws *model.Workspace
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		var err error
		ws, err = loadWorkspace(ctx, stores.Workspaces(), workspaceID)
		if err != nil {
			return err
		}
		if err := authorize(ws, callerID, ErrForbidden, model.AdminRoles...); err != nil {
			return err
		}

		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return ErrInvalidWorkspaceName
			}
			ws.Name = name
		}

		if in.Type != nil || in.CustomType != nil {
			nextType := ws.Type
			if in.Type != nil {
				nextType = *in.Type
			}
			// Personal is fixed at creation in both directions.
			if (nextType == model.WorkspaceTypePersonal) != ws.IsPersonal() {
				return ErrInvalidWorkspaceType
			}
			customType := in.CustomType
			if customType == nil && nextType == ws.Type {
				customType = ws.CustomType
			}
			normalized, err := normalizeType(nextType, customType)
			if err != nil {
				return err
			}
			ws.Type = nextType
			ws.CustomType = normalized
		}

		if in.Settings != nil {
			if in.Settings.LogoKey != nil {
				ws.Settings.LogoKey = in.Settings.LogoKey
				ws.Settings.LogoURL = nil
			}
			if in.Settings.Color != nil {
				ws.Settings.Color = in.Settings.Color
			}
		}

		if err := stores.Workspaces().Update(ctx, ws); err != nil {
			return fmt.Errorf("updating workspace: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "workspace updated")
	s.decorate(ctx, ws)
	return ws, nil
}

// Remove deletes a non-personal workspace together with its invites,
// custom types and memberships. Only the owner role may do this.
func (s *workspaceService) Remove(ctx context.Context, callerID, workspaceID int64) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:      logger.Ptr(callerID),
		WorkspaceID: logger.Ptr(workspaceID),
	})

	var logoKey *string
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		ws, err := loadWorkspace(ctx, stores.Workspaces(), workspaceID)
		if err != nil {
			return err
		}
		if ws.IsPersonal() {
			return ErrPersonalWorkspace
		}
		if err := authorize(ws, callerID, ErrOwnerOnly, model.MemberRoleOwner); err != nil {
			return err
		}

		if _, err := deleteWorkspaceInvites(ctx, stores.Invites(), ws.ID); err != nil {
			return err
		}
		if err := stores.Workspaces().Delete(ctx, ws.ID); err != nil {
			return fmt.Errorf("deleting workspace: %w", err)
		}
		logoKey = ws.Settings.LogoKey
		return nil
	})
	if err != nil {
		return err
	}

	if s.storage != nil && logoKey != nil && *logoKey != "" {
		if err := s.storage.Remove(ctx, *logoKey); err != nil {
			slog.WarnContext(ctx, "failed to remove workspace logo", "error", err, "key", *logoKey)
		}
	}

	slog.InfoContext(ctx, "workspace removed")
	return nil
}

// ResolveActive picks the workspace the client should open: the preferred
// one when the caller can see it, else the personal workspace, else the
// first listed.
func (s *workspaceService) ResolveActive(ctx context.Context, callerID int64, preferredID *int64) (*model.Workspace, error) {
	workspaces, err := s.List(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if len(workspaces) == 0 {
		return nil, ErrNoWorkspace
	}

	if preferredID != nil {
		for i := range workspaces {
			if workspaces[i].ID == *preferredID {
				return &workspaces[i], nil
			}
		}
	}

	for i := range workspaces {
		if workspaces[i].IsPersonal() && workspaces[i].OwnerID == callerID {
			return &workspaces[i], nil
		}
	}

	return &workspaces[0], nil
}

func (s *workspaceService) GenerateUploadURL(ctx context.Context, callerID int64, workspaceID *int64) (*UploadURL, error) {
	key := fmt.Sprintf("users/%d/uploads/%d", callerID, id.New())
	if workspaceID != nil {
		ws, err := loadWorkspace(ctx, s.stores.Workspaces(), *workspaceID)
		if err != nil {
			return nil, err
		}
		if err := authorize(ws, callerID, ErrForbidden, model.AdminRoles...); err != nil {
			return nil, err
		}
		key = fmt.Sprintf("workspaces/%d/logo/%d", ws.ID, id.New())
	}
	return presign(ctx, s.storage, key)
}

func (s *workspaceService) logoURL(ctx context.Context, settings model.WorkspaceSettings) *string {
	if url := resolveURL(ctx, s.storage, settings.LogoKey); url != nil {
		return url
	}
	return settings.LogoURL
}

// decorate refreshes presigned logo URLs, which expire.
func (s *workspaceService) decorate(ctx context.Context, ws *model.Workspace) {
	ws.Settings.LogoURL = s.logoURL(ctx, ws.Settings)
}

func normalizeType(t model.WorkspaceType, customType *string) (*string, error) {
	if !t.Valid() {
		return nil, ErrInvalidWorkspaceType
	}
	if t != model.WorkspaceTypeCustom {
		return nil, nil
	}
	if customType == nil || strings.TrimSpace(*customType) == "" {
		return nil, ErrInvalidWorkspaceType
	}
	name := strings.TrimSpace(*customType)
	return &name, nil
}
