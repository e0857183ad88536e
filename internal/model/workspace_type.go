package model

import "time"

// WorkspaceTypeDef is a custom workspace type stored per workspace.
type WorkspaceTypeDef struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	WorkspaceID int64     `json:"workspace_id"`
	CreatedBy   *int64    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// WorkspaceTypeOption is one entry of the type picker.
type WorkspaceTypeOption struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func strPtr(s string) *string { return &s }

var DefaultWorkspaceTypes = []WorkspaceTypeOption{
	{ID: string(WorkspaceTypePersonal), Name: "Personal Workspace", Description: strPtr("For individual use and personal projects")},
	{ID: string(WorkspaceTypeTeam), Name: "Team Workspace", Description: strPtr("For team collaboration and shared projects")},
	{ID: string(WorkspaceTypeMarketing), Name: "Marketing Workspace", Description: strPtr("For marketing teams and campaigns")},
}

// Option renders a custom type the way the picker expects ("custom:<name>").
func (d WorkspaceTypeDef) Option() WorkspaceTypeOption {
	return WorkspaceTypeOption{
		ID:          string(WorkspaceTypeCustom) + ":" + d.Name,
		Name:        d.Name,
		Description: d.Description,
	}
}
