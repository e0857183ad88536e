package store

import (
	"context"

	"tekimax.app/docs/core/db/sqlc"
	"tekimax.app/docs/internal/model"
)

type subscriptionStore struct {
	queries *sqlc.Queries
}

func newSubscriptionStore(queries *sqlc.Queries) SubscriptionStore {
	return &subscriptionStore{queries: queries}
}

func (s *subscriptionStore) GetByUser(ctx context.Context, userID int64) (*model.Subscription, error) {
	row, err := s.queries.GetSubscriptionByUser(ctx, userID)
	if err != nil {
		return nil, mapErr(err)
	}
	return &model.Subscription{
		ID:                 row.ID,
		UserID:             row.UserID,
		WorkspaceID:        row.WorkspaceID,
		PlanKey:            row.PlanKey,
		ProviderID:         row.ProviderID,
		Status:             row.Status,
		Currency:           row.Currency,
		Interval:           row.BillingInterval,
		CurrentPeriodStart: timePtr(row.CurrentPeriodStart),
		CurrentPeriodEnd:   timePtr(row.CurrentPeriodEnd),
		CancelAtPeriodEnd:  row.CancelAtPeriodEnd,
		CreatedAt:          row.CreatedAt.Time,
	}, nil
}

func (s *subscriptionStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteSubscription(ctx, id)
}
