package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tekimax.app/docs/common/id"
	"tekimax.app/docs/internal/model"
	"tekimax.app/docs/internal/store"
)

var (
	ErrWorkspaceTypeNotFound    = errors.New("workspace type not found")
	ErrWorkspaceTypeExists      = errors.New("a workspace type with this name already exists")
	ErrWorkspaceTypeInUse       = errors.New("cannot delete a workspace type that is currently in use")
	ErrInvalidWorkspaceTypeName = errors.New("workspace type name is required")
)

type WorkspaceTypeList struct {
	DefaultTypes []model.WorkspaceTypeOption
	CustomTypes  []model.WorkspaceTypeOption
}

type WorkspaceTypeService interface {
	List(ctx context.Context, workspaceID *int64) (*WorkspaceTypeList, error)
	Create(ctx context.Context, callerID, workspaceID int64, name string, description *string) (*model.WorkspaceTypeDef, error)
	Remove(ctx context.Context, callerID, typeID int64) error
}

type workspaceTypeService struct {
	stores   StoreProvider
	txRunner TxRunner
}

func NewWorkspaceTypeService(stores StoreProvider, txRunner TxRunner) WorkspaceTypeService {
	return &workspaceTypeService{stores: stores, txRunner: txRunner}
}

func (s *workspaceTypeService) List(ctx context.Context, workspaceID *int64) (*WorkspaceTypeList, error) {
	list := &WorkspaceTypeList{
		DefaultTypes: model.DefaultWorkspaceTypes,
		CustomTypes:  []model.WorkspaceTypeOption{},
	}
	if workspaceID == nil {
		return list, nil
	}

	defs, err := s.stores.WorkspaceTypes().ListByWorkspace(ctx, *workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing workspace types: %w", err)
	}
	for _, def := range defs {
		list.CustomTypes = append(list.CustomTypes, def.Option())
	}
	return list, nil
}

func (s *workspaceTypeService) Create(ctx context.Context, callerID, workspaceID int64, name string, description *string) (*model.WorkspaceTypeDef, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidWorkspaceTypeName
	}
	if description != nil {
		trimmed := strings.TrimSpace(*description)
		description = &trimmed
	}

	var def *model.WorkspaceTypeDef
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		ws, err := loadWorkspace(ctx, stores.Workspaces(), workspaceID)
		if err != nil {
			return err
		}
		if err := authorize(ws, callerID, ErrForbidden, model.AdminRoles...); err != nil {
			return err
		}

		_, err = stores.WorkspaceTypes().GetByName(ctx, name)
		switch {
		case err == nil:
			return ErrWorkspaceTypeExists
		case !errors.Is(err, store.ErrNotFound):
			return fmt.Errorf("checking workspace type name: %w", err)
		}

		def = &model.WorkspaceTypeDef{
			ID:          id.New(),
			Name:        name,
			Description: description,
			WorkspaceID: ws.ID,
			CreatedBy:   &callerID,
		}
		if err := stores.WorkspaceTypes().Create(ctx, def); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return ErrWorkspaceTypeExists
			}
			return fmt.Errorf("creating workspace type: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "workspace type created",
		"workspace_type_id", def.ID,
		"workspace_id", def.WorkspaceID,
		"name", def.Name,
	)
	return def, nil
}

// Remove is refused while any custom workspace still carries the type's name.
func (s *workspaceTypeService) Remove(ctx context.Context, callerID, typeID int64) error {
	return s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		def, err := stores.WorkspaceTypes().GetByID(ctx, typeID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrWorkspaceTypeNotFound
			}
			return fmt.Errorf("getting workspace type: %w", err)
		}

		ws, err := loadWorkspace(ctx, stores.Workspaces(), def.WorkspaceID)
		if err != nil {
			return err
		}
		if err := authorize(ws, callerID, ErrForbidden, model.AdminRoles...); err != nil {
			return err
		}

		inUse, err := stores.Workspaces().CountByCustomType(ctx, def.Name)
		if err != nil {
			return fmt.Errorf("counting workspaces by type: %w", err)
		}
		if inUse > 0 {
			return ErrWorkspaceTypeInUse
		}

		if err := stores.WorkspaceTypes().Delete(ctx, def.ID); err != nil {
			return fmt.Errorf("deleting workspace type: %w", err)
		}

		slog.InfoContext(ctx, "workspace type removed", "workspace_type_id", def.ID)
		return nil
	})
}
