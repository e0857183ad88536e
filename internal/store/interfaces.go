package store

import (
	"context"
	"errors"
	"time"

	"tekimax.app/docs/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write violates a unique constraint.
var ErrConflict = errors.New("conflict")

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	// UpsertFromProvider links a provider identity to the user with the same email,
	// creating the user when none exists.
	UpsertFromProvider(ctx context.Context, user *model.User) error
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.User, error)
}

type SessionStore interface {
	GetByID(ctx context.Context, id int64) (*model.Session, error)
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteByUser(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context) error
}

// WorkspaceStore returns workspaces with Members populated.
type WorkspaceStore interface {
	GetByID(ctx context.Context, id int64) (*model.Workspace, error)
	GetPersonal(ctx context.Context, ownerID int64) (*model.Workspace, error)
	Create(ctx context.Context, ws *model.Workspace) error
	Update(ctx context.Context, ws *model.Workspace) error
	Delete(ctx context.Context, id int64) error
	ListForUser(ctx context.Context, userID int64) ([]model.Workspace, error)
	ListOwnedBy(ctx context.Context, ownerID int64) ([]model.Workspace, error)
	CountByCustomType(ctx context.Context, name string) (int64, error)
	// AddMember is a no-op returning false when the user is already a member.
	AddMember(ctx context.Context, workspaceID int64, m model.Membership) (bool, error)
}

type InviteStore interface {
	GetByID(ctx context.Context, id int64) (*model.Invitation, error)
	GetPendingByEmail(ctx context.Context, workspaceID int64, email string) (*model.Invitation, error)
	Create(ctx context.Context, inv *model.Invitation) error
	ListByWorkspace(ctx context.Context, workspaceID int64, status model.InvitationStatus) ([]model.Invitation, error)
	// Accept, Expire and RefreshToken only touch pending invites; otherwise ErrNotFound.
	Accept(ctx context.Context, id int64, userID int64) (*model.Invitation, error)
	Expire(ctx context.Context, id int64) (*model.Invitation, error)
	RefreshToken(ctx context.Context, id int64, token string, expiresAt time.Time) (*model.Invitation, error)
	Delete(ctx context.Context, id int64) error
	DeleteByWorkspace(ctx context.Context, workspaceID int64) (int64, error)
}

type WorkspaceTypeStore interface {
	GetByID(ctx context.Context, id int64) (*model.WorkspaceTypeDef, error)
	GetByName(ctx context.Context, name string) (*model.WorkspaceTypeDef, error)
	Create(ctx context.Context, def *model.WorkspaceTypeDef) error
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.WorkspaceTypeDef, error)
	Delete(ctx context.Context, id int64) error
}

type SubscriptionStore interface {
	GetByUser(ctx context.Context, userID int64) (*model.Subscription, error)
	Delete(ctx context.Context, id int64) error
}
