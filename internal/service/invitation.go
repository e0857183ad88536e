package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tekimax.app/docs/common"
	"tekimax.app/docs/common/id"
	"tekimax.app/docs/common/logger"
	"tekimax.app/docs/internal/model"
	"tekimax.app/docs/internal/queue"
	"tekimax.app/docs/internal/store"
)

const (
	InviteTokenLength = 32
	DefaultInviteTTL  = 15 * time.Minute
)

var (
	ErrInviteNotFound      = errors.New("invite not found")
	ErrInviteNoLongerValid = errors.New("invite is no longer valid")
	ErrInviteExpired       = errors.New("invite has expired")
	ErrInvalidToken        = errors.New("invalid verification token")
	ErrInvitePendingExists = errors.New("user already invited")
	ErrAlreadyMember       = errors.New("user is already a member of this workspace")
	ErrInvalidInviteRole   = errors.New("invalid invite role")
	ErrInvalidEmail        = errors.New("invalid email")
)

// TaskEnqueuer hands background work to the worker. queue.Producer satisfies it.
type TaskEnqueuer interface {
	Enqueue(ctx context.Context, task queue.Task) error
}

type CreateInviteInput struct {
	Email       string
	Name        string
	Role        model.InviteRole
	WorkspaceID int64
}

type InvitationService interface {
	Create(ctx context.Context, callerID int64, in CreateInviteInput) (*model.Invitation, error)
	Verify(ctx context.Context, inviteID int64, token string) (*model.Invitation, error)
	Resend(ctx context.Context, callerID, inviteID int64) (*model.Invitation, error)
	Remove(ctx context.Context, callerID, inviteID int64) (*model.Invitation, error)
	ListPending(ctx context.Context, callerID, workspaceID int64) ([]model.Invitation, error)
	DeleteByWorkspace(ctx context.Context, workspaceID int64) (int64, error)
}

type invitationService struct {
	stores   StoreProvider
	txRunner TxRunner
	enqueuer TaskEnqueuer
	ttl      time.Duration
	now      Clock
}

func NewInvitationService(stores StoreProvider, txRunner TxRunner, enqueuer TaskEnqueuer, ttl time.Duration, now Clock) InvitationService {
	if ttl <= 0 {
		ttl = DefaultInviteTTL
	}
	if now == nil {
		now = time.Now
	}
	return &invitationService{
		stores:   stores,
		txRunner: txRunner,
		enqueuer: enqueuer,
		ttl:      ttl,
		now:      now,
	}
}

func (s *invitationService) Create(ctx context.Context, callerID int64, in CreateInviteInput) (*model.Invitation, error) {
	email := common.NormalizeEmail(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if !in.Role.Valid() {
		return nil, ErrInvalidInviteRole
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:      logger.Ptr(callerID),
		WorkspaceID: logger.Ptr(in.WorkspaceID),
	})

	var inv *model.Invitation
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		ws, err := loadWorkspace(ctx, stores.Workspaces(), in.WorkspaceID)
		if err != nil {
			return err
		}
		if err := authorize(ws, callerID, ErrInvitePermission, model.AdminRoles...); err != nil {
			return err
		}

		invited, err := stores.Users().GetByEmail(ctx, email)
		switch {
		case err == nil:
			if ws.IsMember(invited.ID) {
				return ErrAlreadyMember
			}
		case !errors.Is(err, store.ErrNotFound):
			return fmt.Errorf("getting invited user: %w", err)
		}

		_, err = stores.Invites().GetPendingByEmail(ctx, ws.ID, email)
		switch {
		case err == nil:
			return ErrInvitePendingExists
		case !errors.Is(err, store.ErrNotFound):
			return fmt.Errorf("checking pending invite: %w", err)
		}

		token, err := generateSecureToken(InviteTokenLength)
		if err != nil {
			return fmt.Errorf("generating token: %w", err)
		}

		inv = &model.Invitation{
			ID:          id.New(),
			Email:       email,
			Name:        strings.TrimSpace(in.Name),
			Role:        in.Role,
			WorkspaceID: ws.ID,
			Status:      model.InvitationStatusPending,
			Token:       token,
			ExpiresAt:   s.now().Add(s.ttl),
			CreatedBy:   &callerID,
		}
		if err := stores.Invites().Create(ctx, inv); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return ErrInvitePendingExists
			}
			return fmt.Errorf("creating invite: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The task is published only once the row is visible to the worker. An
	// invite whose email never reached the queue is removed again.
	if err := s.enqueueEmail(ctx, inv); err != nil {
		if delErr := s.stores.Invites().Delete(ctx, inv.ID); delErr != nil {
			slog.ErrorContext(ctx, "failed to remove unsent invite",
				"error", delErr,
				"invite_id", inv.ID,
			)
		}
		return nil, err
	}

	slog.InfoContext(ctx, "invite created",
		"invite_id", inv.ID,
		"role", inv.Role,
		"expires_at", inv.ExpiresAt,
	)

	return inv, nil
}

// Verify accepts an invite. An expired invite is marked expired and that
// write is committed before ErrInviteExpired is returned.
func (s *invitationService) Verify(ctx context.Context, inviteID int64, token string) (*model.Invitation, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{InviteID: logger.Ptr(inviteID)})

	var (
		accepted *model.Invitation
		expired  bool
	)
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		inv, err := stores.Invites().GetByID(ctx, inviteID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteNotFound
			}
			return fmt.Errorf("getting invite: %w", err)
		}

		if !inv.IsPending() {
			return ErrInviteNoLongerValid
		}

		if inv.IsExpired(s.now()) {
			if _, err := stores.Invites().Expire(ctx, inv.ID); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return ErrInviteNoLongerValid
				}
				return fmt.Errorf("expiring invite: %w", err)
			}
			expired = true
			return nil
		}

		if !tokensEqual(inv.Token, token) {
			return ErrInvalidToken
		}

		user, err := findOrCreateUser(ctx, stores.Users(), inv.Email, inv.Name, nil)
		if err != nil {
			return err
		}

		ws, err := loadWorkspace(ctx, stores.Workspaces(), inv.WorkspaceID)
		if err != nil {
			return err
		}

		added, err := stores.Workspaces().AddMember(ctx, ws.ID, model.Membership{
			UserID:   user.ID,
			Role:     inv.Role.MemberRole(),
			JoinedAt: s.now(),
		})
		if err != nil {
			return fmt.Errorf("adding member: %w", err)
		}

		accepted, err = stores.Invites().Accept(ctx, inv.ID, user.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteNoLongerValid
			}
			return fmt.Errorf("accepting invite: %w", err)
		}

		slog.InfoContext(ctx, "invite accepted",
			"user_id", user.ID,
			"workspace_id", ws.ID,
			"role", inv.Role.MemberRole(),
			"member_added", added,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if expired {
		slog.InfoContext(ctx, "invite expired on verification")
		return nil, ErrInviteExpired
	}

	return accepted, nil
}

// Resend rotates the token and expiry of a pending invite and mails it again.
func (s *invitationService) Resend(ctx context.Context, callerID, inviteID int64) (*model.Invitation, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:   logger.Ptr(callerID),
		InviteID: logger.Ptr(inviteID),
	})

	var refreshed *model.Invitation
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		inv, err := s.loadForMember(ctx, stores, callerID, inviteID)
		if err != nil {
			return err
		}
		if !inv.IsPending() {
			return ErrInviteNoLongerValid
		}

		token, err := generateSecureToken(InviteTokenLength)
		if err != nil {
			return fmt.Errorf("generating token: %w", err)
		}

		refreshed, err = stores.Invites().RefreshToken(ctx, inv.ID, token, s.now().Add(s.ttl))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInviteNoLongerValid
			}
			return fmt.Errorf("refreshing invite token: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The rotated token is committed; on failure the invite stays pending and
	// can be resent again.
	if err := s.enqueueEmail(ctx, refreshed); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "invite resent", "expires_at", refreshed.ExpiresAt)
	return refreshed, nil
}

func (s *invitationService) Remove(ctx context.Context, callerID, inviteID int64) (*model.Invitation, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		UserID:   logger.Ptr(callerID),
		InviteID: logger.Ptr(inviteID),
	})

	var removed *model.Invitation
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		inv, err := s.loadForMember(ctx, stores, callerID, inviteID)
		if err != nil {
			return err
		}
		if err := stores.Invites().Delete(ctx, inv.ID); err != nil {
			return fmt.Errorf("deleting invite: %w", err)
		}
		removed = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "invite removed", "status", removed.Status)
	return removed, nil
}

func (s *invitationService) ListPending(ctx context.Context, callerID, workspaceID int64) ([]model.Invitation, error) {
	ws, err := loadWorkspace(ctx, s.stores.Workspaces(), workspaceID)
	if err != nil {
		return nil, err
	}
	if err := authorize(ws, callerID, ErrNotMember, anyRole...); err != nil {
		return nil, err
	}

	invites, err := s.stores.Invites().ListByWorkspace(ctx, ws.ID, model.InvitationStatusPending)
	if err != nil {
		return nil, fmt.Errorf("listing pending invites: %w", err)
	}
	return invites, nil
}

func (s *invitationService) DeleteByWorkspace(ctx context.Context, workspaceID int64) (int64, error) {
	var deleted int64
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		var err error
		deleted, err = deleteWorkspaceInvites(ctx, stores.Invites(), workspaceID)
		return err
	})
	return deleted, err
}

// loadForMember fetches the invite and checks the caller belongs to its workspace.
func (s *invitationService) loadForMember(ctx context.Context, stores StoreProvider, callerID, inviteID int64) (*model.Invitation, error) {
	inv, err := stores.Invites().GetByID(ctx, inviteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, fmt.Errorf("getting invite: %w", err)
	}

	ws, err := loadWorkspace(ctx, stores.Workspaces(), inv.WorkspaceID)
	if err != nil {
		return nil, err
	}
	if err := authorize(ws, callerID, ErrNotMember, anyRole...); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *invitationService) enqueueEmail(ctx context.Context, inv *model.Invitation) error {
	task := queue.InviteEmailTask(inv.ID, inv.WorkspaceID, logger.TraceID(ctx))
	if err := s.enqueuer.Enqueue(ctx, task); err != nil {
		return fmt.Errorf("enqueueing invite email: %w", err)
	}
	return nil
}

// deleteWorkspaceInvites removes every invite of a workspace regardless of
// status. Memberships are left alone.
func deleteWorkspaceInvites(ctx context.Context, invites store.InviteStore, workspaceID int64) (int64, error) {
	deleted, err := invites.DeleteByWorkspace(ctx, workspaceID)
	if err != nil {
		return 0, fmt.Errorf("deleting workspace invites: %w", err)
	}
	slog.InfoContext(ctx, "workspace invites deleted",
		"workspace_id", workspaceID,
		"deleted_invites", deleted,
	)
	return deleted, nil
}

func tokensEqual(want, got string) bool {
	return subtle.ConstantTimeCompare([]byte(want), []byte(got)) == 1
}

func generateSecureToken(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
