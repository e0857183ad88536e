package service

import (
	"context"

	"tekimax.app/docs/core/db"
	"tekimax.app/docs/core/db/sqlc"
	"tekimax.app/docs/internal/store"
)

// StoreProvider exposes the stores used by service operations. *store.Stores
// satisfies it both inside and outside a transaction.
type StoreProvider interface {
	Users() store.UserStore
	Sessions() store.SessionStore
	Workspaces() store.WorkspaceStore
	Invites() store.InviteStore
	WorkspaceTypes() store.WorkspaceTypeStore
	Subscriptions() store.SubscriptionStore
}

// TxRunner runs functions within a transaction and provides stores bound to that transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type dbTxRunner struct {
	db *db.DB
}

func NewTxRunner(db *db.DB) TxRunner {
	return &dbTxRunner{db: db}
}

func (r *dbTxRunner) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithTx(ctx, func(q *sqlc.Queries) error {
		return fn(store.NewStores(q))
	})
}
