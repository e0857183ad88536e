package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"tekimax.app/docs/core/db/sqlc"
	"tekimax.app/docs/internal/model"
)

type workspaceStore struct {
	queries *sqlc.Queries
}

func newWorkspaceStore(queries *sqlc.Queries) WorkspaceStore {
	return &workspaceStore{queries: queries}
}

func (s *workspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	row, err := s.queries.GetWorkspace(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return s.withMembers(ctx, row)
}

func (s *workspaceStore) GetPersonal(ctx context.Context, ownerID int64) (*model.Workspace, error) {
	row, err := s.queries.GetPersonalWorkspace(ctx, ownerID)
	if err != nil {
		return nil, mapErr(err)
	}
	return s.withMembers(ctx, row)
}

// Create inserts the workspace row and every entry of ws.Members.
func (s *workspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	row, err := s.queries.CreateWorkspace(ctx, sqlc.CreateWorkspaceParams{
		ID:         ws.ID,
		Name:       ws.Name,
		Type:       string(ws.Type),
		CustomType: ws.CustomType,
		OwnerID:    ws.OwnerID,
		LogoKey:    ws.Settings.LogoKey,
		LogoUrl:    ws.Settings.LogoURL,
		Color:      ws.Settings.Color,
	})
	if err != nil {
		return mapErr(err)
	}

	for _, m := range ws.Members {
		if _, err := s.AddMember(ctx, row.ID, m); err != nil {
			return err
		}
	}

	created, err := s.withMembers(ctx, row)
	if err != nil {
		return err
	}
	*ws = *created
	return nil
}

func (s *workspaceStore) Update(ctx context.Context, ws *model.Workspace) error {
	row, err := s.queries.UpdateWorkspace(ctx, sqlc.UpdateWorkspaceParams{
		ID:         ws.ID,
		Name:       ws.Name,
		Type:       string(ws.Type),
		CustomType: ws.CustomType,
		LogoKey:    ws.Settings.LogoKey,
		LogoUrl:    ws.Settings.LogoURL,
		Color:      ws.Settings.Color,
	})
	if err != nil {
		return mapErr(err)
	}
	updated, err := s.withMembers(ctx, row)
	if err != nil {
		return err
	}
	*ws = *updated
	return nil
}

func (s *workspaceStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteWorkspace(ctx, id)
}

func (s *workspaceStore) ListForUser(ctx context.Context, userID int64) ([]model.Workspace, error) {
	rows, err := s.queries.ListWorkspacesForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.listWithMembers(ctx, rows)
}

func (s *workspaceStore) ListOwnedBy(ctx context.Context, ownerID int64) ([]model.Workspace, error) {
	rows, err := s.queries.ListWorkspacesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.listWithMembers(ctx, rows)
}

func (s *workspaceStore) CountByCustomType(ctx context.Context, name string) (int64, error) {
	return s.queries.CountWorkspacesByCustomType(ctx, &name)
}

func (s *workspaceStore) AddMember(ctx context.Context, workspaceID int64, m model.Membership) (bool, error) {
	joinedAt := m.JoinedAt
	if joinedAt.IsZero() {
		joinedAt = time.Now()
	}
	n, err := s.queries.AddWorkspaceMember(ctx, sqlc.AddWorkspaceMemberParams{
		WorkspaceID: workspaceID,
		UserID:      m.UserID,
		Role:        string(m.Role),
		JoinedAt:    pgtype.Timestamptz{Time: joinedAt, Valid: true},
	})
	if err != nil {
		return false, mapErr(err)
	}
	return n > 0, nil
}

func (s *workspaceStore) withMembers(ctx context.Context, row sqlc.Workspace) (*model.Workspace, error) {
	members, err := s.queries.ListWorkspaceMembers(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	ws := toWorkspaceModel(row)
	ws.Members = toMemberships(members)
	return ws, nil
}

// listWithMembers loads memberships for all rows in one query.
func (s *workspaceStore) listWithMembers(ctx context.Context, rows []sqlc.Workspace) ([]model.Workspace, error) {
	if len(rows) == 0 {
		return []model.Workspace{}, nil
	}

	ids := make([]int64, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	members, err := s.queries.ListMembersForWorkspaces(ctx, ids)
	if err != nil {
		return nil, err
	}

	byWorkspace := make(map[int64][]sqlc.WorkspaceMember, len(rows))
	for _, m := range members {
		byWorkspace[m.WorkspaceID] = append(byWorkspace[m.WorkspaceID], m)
	}

	result := make([]model.Workspace, len(rows))
	for i, row := range rows {
		ws := toWorkspaceModel(row)
		ws.Members = toMemberships(byWorkspace[row.ID])
		result[i] = *ws
	}
	return result, nil
}

func toWorkspaceModel(row sqlc.Workspace) *model.Workspace {
	return &model.Workspace{
		ID:         row.ID,
		Name:       row.Name,
		Type:       model.WorkspaceType(row.Type),
		CustomType: row.CustomType,
		OwnerID:    row.OwnerID,
		Settings: model.WorkspaceSettings{
			LogoKey: row.LogoKey,
			LogoURL: row.LogoUrl,
			Color:   row.Color,
		},
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}

func toMemberships(rows []sqlc.WorkspaceMember) []model.Membership {
	members := make([]model.Membership, len(rows))
	for i, row := range rows {
		members[i] = model.Membership{
			UserID:   row.UserID,
			Role:     model.MemberRole(row.Role),
			JoinedAt: row.JoinedAt.Time,
		}
	}
	return members
}
