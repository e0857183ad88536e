package store

import (
	"context"

	"tekimax.app/docs/core/db/sqlc"
	"tekimax.app/docs/internal/model"
)

type userStore struct {
	queries *sqlc.Queries
}

func newUserStore(queries *sqlc.Queries) UserStore {
	return &userStore{queries: queries}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.GetUser(ctx, id)
	if err != nil {
		return nil, mapErr(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, mapErr(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	row, err := s.queries.GetUserByUsername(ctx, &username)
	if err != nil {
		return nil, mapErr(err)
	}
	return toUserModel(row), nil
}

func (s *userStore) Create(ctx context.Context, user *model.User) error {
	row, err := s.queries.CreateUser(ctx, sqlc.CreateUserParams{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Username:  user.Username,
		AvatarUrl: user.AvatarURL,
		WorkosID:  user.WorkOSID,
	})
	if err != nil {
		return mapErr(err)
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) UpsertFromProvider(ctx context.Context, user *model.User) error {
	row, err := s.queries.UpsertUserByWorkOSID(ctx, sqlc.UpsertUserByWorkOSIDParams{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		AvatarUrl: user.AvatarURL,
		WorkosID:  user.WorkOSID,
	})
	if err != nil {
		return mapErr(err)
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) Update(ctx context.Context, user *model.User) error {
	row, err := s.queries.UpdateUser(ctx, sqlc.UpdateUserParams{
		ID:        user.ID,
		Name:      user.Name,
		Username:  user.Username,
		AvatarUrl: user.AvatarURL,
		ImageKey:  user.ImageKey,
	})
	if err != nil {
		return mapErr(err)
	}
	*user = *toUserModel(row)
	return nil
}

func (s *userStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteUser(ctx, id)
}

func (s *userStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.User, error) {
	rows, err := s.queries.ListWorkspaceUsers(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	users := make([]model.User, len(rows))
	for i, row := range rows {
		users[i] = *toUserModel(row)
	}
	return users, nil
}

func toUserModel(row sqlc.User) *model.User {
	return &model.User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Username:  row.Username,
		AvatarURL: row.AvatarUrl,
		ImageKey:  row.ImageKey,
		WorkOSID:  row.WorkosID,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
