package store

import (
	"context"

	"tekimax.app/docs/core/db/sqlc"
	"tekimax.app/docs/internal/model"
)

type workspaceTypeStore struct {
	queries *sqlc.Queries
}

func newWorkspaceTypeStore(queries *sqlc.Queries) WorkspaceTypeStore {
	return &workspaceTypeStore{queries: queries}
}

func (s *workspaceTypeStore) GetByID(ctx context.Context, id int64) (*model.WorkspaceTypeDef, error) {
	row, err := s.queries.GetWorkspaceType(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return toWorkspaceTypeModel(row), nil
}

func (s *workspaceTypeStore) GetByName(ctx context.Context, name string) (*model.WorkspaceTypeDef, error) {
	row, err := s.queries.GetWorkspaceTypeByName(ctx, name)
	if err != nil {
		return nil, mapErr(err)
	}
	return toWorkspaceTypeModel(row), nil
}

func (s *workspaceTypeStore) Create(ctx context.Context, def *model.WorkspaceTypeDef) error {
	row, err := s.queries.CreateWorkspaceType(ctx, sqlc.CreateWorkspaceTypeParams{
		ID:          def.ID,
		Name:        def.Name,
		Description: def.Description,
		WorkspaceID: def.WorkspaceID,
		CreatedBy:   def.CreatedBy,
	})
	if err != nil {
		return mapErr(err)
	}
	*def = *toWorkspaceTypeModel(row)
	return nil
}

func (s *workspaceTypeStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.WorkspaceTypeDef, error) {
	rows, err := s.queries.ListWorkspaceTypesByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	defs := make([]model.WorkspaceTypeDef, len(rows))
	for i, row := range rows {
		defs[i] = *toWorkspaceTypeModel(row)
	}
	return defs, nil
}

func (s *workspaceTypeStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteWorkspaceType(ctx, id)
}

func toWorkspaceTypeModel(row sqlc.WorkspaceType) *model.WorkspaceTypeDef {
	return &model.WorkspaceTypeDef{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		WorkspaceID: row.WorkspaceID,
		CreatedBy:   row.CreatedBy,
		CreatedAt:   row.CreatedAt.Time,
	}
}
