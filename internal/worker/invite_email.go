package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tekimax.app/docs/internal/mailer"
	"tekimax.app/docs/internal/queue"
	"tekimax.app/docs/internal/store"
)

var ErrUnknownTaskType = errors.New("unknown task type")

type InviteEmailConfig struct {
	From    string
	AppName string
	SiteURL string
	TTL     time.Duration
}

// InviteEmailProcessor delivers invitation emails. Invites that were removed,
// accepted or already expired by the time the task runs are skipped.
type InviteEmailProcessor struct {
	stores StoreProvider
	sender mailer.Sender
	cfg    InviteEmailConfig
	now    func() time.Time
}

func NewInviteEmailProcessor(stores StoreProvider, sender mailer.Sender, cfg InviteEmailConfig, now func() time.Time) *InviteEmailProcessor {
	if now == nil {
		now = time.Now
	}
	return &InviteEmailProcessor{
		stores: stores,
		sender: sender,
		cfg:    cfg,
		now:    now,
	}
}

func (p *InviteEmailProcessor) Handle(ctx context.Context, task queue.Task) error {
	if task.TaskType != queue.TaskTypeInviteEmail {
		return fmt.Errorf("%w: %s", ErrUnknownTaskType, task.TaskType)
	}

	inv, err := p.stores.Invites().GetByID(ctx, task.InviteID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.InfoContext(ctx, "invite no longer exists, skipping email")
			return nil
		}
		return fmt.Errorf("loading invite: %w", err)
	}
	if !inv.IsPending() || inv.IsExpired(p.now()) {
		slog.InfoContext(ctx, "invite no longer pending, skipping email",
			"status", inv.Status,
			"expires_at", inv.ExpiresAt)
		return nil
	}

	ws, err := p.stores.Workspaces().GetByID(ctx, inv.WorkspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			slog.InfoContext(ctx, "workspace no longer exists, skipping email")
			return nil
		}
		return fmt.Errorf("loading workspace: %w", err)
	}

	msg, err := mailer.InviteMessage(p.cfg.From, mailer.Invite{
		InviteID:      inv.ID,
		Token:         inv.Token,
		Email:         inv.Email,
		WorkspaceName: ws.Name,
		AppName:       p.cfg.AppName,
		SiteURL:       p.cfg.SiteURL,
		TTL:           p.cfg.TTL,
	})
	if err != nil {
		return err
	}

	if err := p.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("sending invite email: %w", err)
	}

	slog.InfoContext(ctx, "invite email sent", "workspace_name", ws.Name)
	return nil
}
