package model

import "time"

type Subscription struct {
	ID                 int64      `json:"id"`
	UserID             int64      `json:"user_id"`
	WorkspaceID        *int64     `json:"workspace_id,omitempty"`
	PlanKey            string     `json:"plan_key"`
	ProviderID         string     `json:"provider_id"`
	Status             string     `json:"status"`
	Currency           string     `json:"currency"`
	Interval           string     `json:"interval"`
	CurrentPeriodStart *time.Time `json:"current_period_start,omitempty"`
	CurrentPeriodEnd   *time.Time `json:"current_period_end,omitempty"`
	CancelAtPeriodEnd  bool       `json:"cancel_at_period_end"`
	CreatedAt          time.Time  `json:"created_at"`
}
