package dto

import (
	"time"

	"tekimax.app/docs/internal/model"
	"tekimax.app/docs/internal/service"
)

type UpdateUserRequest struct {
	Username  *string `json:"username,omitempty" binding:"omitempty,username"`
	Name      *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	AvatarURL *string `json:"avatar_url,omitempty" binding:"omitempty,url,max=2048"`
}

type SetImageRequest struct {
	Key string `json:"key" binding:"required,max=1024"`
}

type UserResponse struct {
	ID        int64     `json:"id,string"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Username  *string   `json:"username,omitempty"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ToUserResponses(users []model.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out
}

type SubscriptionResponse struct {
	ID                int64      `json:"id,string"`
	PlanKey           string     `json:"plan_key"`
	Status            string     `json:"status"`
	Currency          string     `json:"currency"`
	Interval          string     `json:"interval"`
	CurrentPeriodEnd  *time.Time `json:"current_period_end,omitempty"`
	CancelAtPeriodEnd bool       `json:"cancel_at_period_end"`
}

type ProfileResponse struct {
	User         *UserResponse         `json:"user"`
	DisplayName  string                `json:"display_name"`
	Subscription *SubscriptionResponse `json:"subscription"`
}

func ToProfileResponse(p *service.Profile) *ProfileResponse {
	resp := &ProfileResponse{
		User:        ToUserResponse(&p.User),
		DisplayName: p.DisplayName,
	}
	if s := p.Subscription; s != nil {
		resp.Subscription = &SubscriptionResponse{
			ID:                s.ID,
			PlanKey:           s.PlanKey,
			Status:            s.Status,
			Currency:          s.Currency,
			Interval:          s.Interval,
			CurrentPeriodEnd:  s.CurrentPeriodEnd,
			CancelAtPeriodEnd: s.CancelAtPeriodEnd,
		}
	}
	return resp
}
