package dto

import (
	"time"

	"tekimax.app/docs/internal/model"
)

type CreateInviteRequest struct {
	Email       string           `json:"email" binding:"required,email,max=255"`
	Name        string           `json:"name" binding:"max=255"`
	Role        model.InviteRole `json:"role" binding:"required,oneof=read write owner"`
	WorkspaceID int64            `json:"workspace_id,string" binding:"required"`
}

type VerifyInviteRequest struct {
	Token string `json:"token" binding:"required"`
}

type InviteResponse struct {
	ID          int64                  `json:"id,string"`
	Email       string                 `json:"email"`
	Name        string                 `json:"name"`
	Role        model.InviteRole       `json:"role"`
	WorkspaceID int64                  `json:"workspace_id,string"`
	Status      model.InvitationStatus `json:"status"`
	ExpiresAt   time.Time              `json:"expires_at"`
	AcceptedAt  *time.Time             `json:"accepted_at,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

func ToInviteResponse(inv *model.Invitation) *InviteResponse {
	return &InviteResponse{
		ID:          inv.ID,
		Email:       inv.Email,
		Name:        inv.Name,
		Role:        inv.Role,
		WorkspaceID: inv.WorkspaceID,
		Status:      inv.Status,
		ExpiresAt:   inv.ExpiresAt,
		AcceptedAt:  inv.AcceptedAt,
		CreatedAt:   inv.CreatedAt,
	}
}

func ToInviteResponses(invites []model.Invitation) []*InviteResponse {
	out := make([]*InviteResponse, 0, len(invites))
	for i := range invites {
		out = append(out, ToInviteResponse(&invites[i]))
	}
	return out
}
