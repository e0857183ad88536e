package worker

import (
	"context"

	"tekimax.app/docs/internal/queue"
	"tekimax.app/docs/internal/store"
)

// Consumer abstracts the message queue for testability.
type Consumer interface {
	Read(ctx context.Context) ([]queue.Message, error)
	Ack(ctx context.Context, msg queue.Message) error
	Requeue(ctx context.Context, msg queue.Message, errMsg string) error
	SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error
}

// TaskHandler performs one task. A nil return acknowledges the message.
type TaskHandler interface {
	Handle(ctx context.Context, task queue.Task) error
}

// StoreProvider is the read side the worker needs. *store.Stores satisfies it.
type StoreProvider interface {
	Invites() store.InviteStore
	Workspaces() store.WorkspaceStore
}
