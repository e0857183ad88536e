package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"tekimax.app/docs/core/db/sqlc"
	"tekimax.app/docs/internal/model"
)

type inviteStore struct {
	queries *sqlc.Queries
}

func newInviteStore(queries *sqlc.Queries) InviteStore {
	return &inviteStore{queries: queries}
}

func (s *inviteStore) Create(ctx context.Context, inv *model.Invitation) error {
	row, err := s.queries.CreateInvite(ctx, sqlc.CreateInviteParams{
		ID:          inv.ID,
		Email:       inv.Email,
		Name:        inv.Name,
		Role:        string(inv.Role),
		WorkspaceID: inv.WorkspaceID,
		Status:      string(inv.Status),
		Token:       inv.Token,
		ExpiresAt:   pgtype.Timestamptz{Time: inv.ExpiresAt, Valid: true},
		CreatedBy:   inv.CreatedBy,
	})
	if err != nil {
		return mapErr(err)
	}
	*inv = *toInvitationModel(row)
	return nil
}

func (s *inviteStore) GetByID(ctx context.Context, id int64) (*model.Invitation, error) {
	row, err := s.queries.GetInvite(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return toInvitationModel(row), nil
}

func (s *inviteStore) GetPendingByEmail(ctx context.Context, workspaceID int64, email string) (*model.Invitation, error) {
	row, err := s.queries.GetPendingInviteByEmail(ctx, sqlc.GetPendingInviteByEmailParams{
		Email:       email,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return toInvitationModel(row), nil
}

func (s *inviteStore) ListByWorkspace(ctx context.Context, workspaceID int64, status model.InvitationStatus) ([]model.Invitation, error) {
	rows, err := s.queries.ListInvitesByWorkspaceAndStatus(ctx, sqlc.ListInvitesByWorkspaceAndStatusParams{
		WorkspaceID: workspaceID,
		Status:      string(status),
	})
	if err != nil {
		return nil, err
	}
	return toInvitationModels(rows), nil
}

func (s *inviteStore) Accept(ctx context.Context, id int64, userID int64) (*model.Invitation, error) {
	row, err := s.queries.AcceptInvite(ctx, sqlc.AcceptInviteParams{
		ID:         id,
		AcceptedBy: &userID,
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return toInvitationModel(row), nil
}

func (s *inviteStore) Expire(ctx context.Context, id int64) (*model.Invitation, error) {
	row, err := s.queries.ExpireInvite(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return toInvitationModel(row), nil
}

func (s *inviteStore) RefreshToken(ctx context.Context, id int64, token string, expiresAt time.Time) (*model.Invitation, error) {
	row, err := s.queries.RefreshInviteToken(ctx, sqlc.RefreshInviteTokenParams{
		ID:        id,
		Token:     token,
		ExpiresAt: pgtype.Timestamptz{Time: expiresAt, Valid: true},
	})
	if err != nil {
		return nil, mapErr(err)
	}
	return toInvitationModel(row), nil
}

func (s *inviteStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteInvite(ctx, id)
}

func (s *inviteStore) DeleteByWorkspace(ctx context.Context, workspaceID int64) (int64, error) {
	return s.queries.DeleteInvitesByWorkspace(ctx, workspaceID)
}

func toInvitationModel(row sqlc.Invite) *model.Invitation {
	return &model.Invitation{
		ID:          row.ID,
		Email:       row.Email,
		Name:        row.Name,
		Role:        model.InviteRole(row.Role),
		WorkspaceID: row.WorkspaceID,
		Status:      model.InvitationStatus(row.Status),
		Token:       row.Token,
		ExpiresAt:   row.ExpiresAt.Time,
		CreatedBy:   row.CreatedBy,
		AcceptedBy:  row.AcceptedBy,
		AcceptedAt:  timePtr(row.AcceptedAt),
		CreatedAt:   row.CreatedAt.Time,
	}
}

func toInvitationModels(rows []sqlc.Invite) []model.Invitation {
	result := make([]model.Invitation, len(rows))
	for i, row := range rows {
		result[i] = *toInvitationModel(row)
	}
	return result
}
