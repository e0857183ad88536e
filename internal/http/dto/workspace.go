package dto

import (
	"time"

	"tekimax.app/docs/internal/model"
)

type WorkspaceSettingsRequest struct {
	LogoKey *string `json:"logo_key,omitempty" binding:"omitempty,max=1024"`
	Color   *string `json:"color,omitempty" binding:"omitempty,max=32"`
}

func (r *WorkspaceSettingsRequest) ToModel() *model.WorkspaceSettings {
	if r == nil {
		return nil
	}
	return &model.WorkspaceSettings{LogoKey: r.LogoKey, Color: r.Color}
}

type CreateWorkspaceRequest struct {
	Name       string                    `json:"name" binding:"required,min=1,max=255"`
	Type       model.WorkspaceType       `json:"type" binding:"required,oneof=personal team marketing custom"`
	CustomType *string                   `json:"custom_type,omitempty" binding:"omitempty,max=255"`
	Settings   *WorkspaceSettingsRequest `json:"settings,omitempty"`
}

type UpdateWorkspaceRequest struct {
	Name       *string                   `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Type       *model.WorkspaceType      `json:"type,omitempty" binding:"omitempty,oneof=personal team marketing custom"`
	CustomType *string                   `json:"custom_type,omitempty" binding:"omitempty,max=255"`
	Settings   *WorkspaceSettingsRequest `json:"settings,omitempty"`
}

type UploadURLRequest struct {
	WorkspaceID *string `json:"workspace_id,omitempty" binding:"omitempty,numeric"`
}

type MemberResponse struct {
	UserID   int64            `json:"user_id,string"`
	Role     model.MemberRole `json:"role"`
	JoinedAt time.Time        `json:"joined_at"`
}

type WorkspaceResponse struct {
	ID         int64                   `json:"id,string"`
	Name       string                  `json:"name"`
	Type       model.WorkspaceType     `json:"type"`
	CustomType *string                 `json:"custom_type,omitempty"`
	OwnerID    int64                   `json:"owner_id,string"`
	Settings   model.WorkspaceSettings `json:"settings"`
	Members    []MemberResponse        `json:"members"`
	CreatedAt  time.Time               `json:"created_at"`
	UpdatedAt  time.Time               `json:"updated_at"`
}

func ToWorkspaceResponse(ws *model.Workspace) *WorkspaceResponse {
	members := make([]MemberResponse, 0, len(ws.Members))
	for _, m := range ws.Members {
		members = append(members, MemberResponse{UserID: m.UserID, Role: m.Role, JoinedAt: m.JoinedAt})
	}
	return &WorkspaceResponse{
		ID:         ws.ID,
		Name:       ws.Name,
		Type:       ws.Type,
		CustomType: ws.CustomType,
		OwnerID:    ws.OwnerID,
		Settings:   ws.Settings,
		Members:    members,
		CreatedAt:  ws.CreatedAt,
		UpdatedAt:  ws.UpdatedAt,
	}
}

func ToWorkspaceResponses(workspaces []model.Workspace) []*WorkspaceResponse {
	out := make([]*WorkspaceResponse, 0, len(workspaces))
	for i := range workspaces {
		out = append(out, ToWorkspaceResponse(&workspaces[i]))
	}
	return out
}
