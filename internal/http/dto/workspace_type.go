package dto

import (
	"tekimax.app/docs/internal/model"
	"tekimax.app/docs/internal/service"
)

type CreateWorkspaceTypeRequest struct {
	WorkspaceID int64   `json:"workspace_id,string" binding:"required"`
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=500"`
}

type WorkspaceTypeListResponse struct {
	DefaultTypes []model.WorkspaceTypeOption `json:"default_types"`
	CustomTypes  []model.WorkspaceTypeOption `json:"custom_types"`
}

func ToWorkspaceTypeListResponse(l *service.WorkspaceTypeList) *WorkspaceTypeListResponse {
	return &WorkspaceTypeListResponse{DefaultTypes: l.DefaultTypes, CustomTypes: l.CustomTypes}
}

type WorkspaceTypeResponse struct {
	ID          int64   `json:"id,string"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	WorkspaceID int64   `json:"workspace_id,string"`
}

func ToWorkspaceTypeResponse(d *model.WorkspaceTypeDef) *WorkspaceTypeResponse {
	return &WorkspaceTypeResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		WorkspaceID: d.WorkspaceID,
	}
}
