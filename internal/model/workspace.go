package model

import (
	"slices"
	"time"
)

type WorkspaceType string

const (
	WorkspaceTypePersonal  WorkspaceType = "personal"
	WorkspaceTypeTeam      WorkspaceType = "team"
	WorkspaceTypeMarketing WorkspaceType = "marketing"
	WorkspaceTypeCustom    WorkspaceType = "custom"
)

func (t WorkspaceType) Valid() bool {
	switch t {
	case WorkspaceTypePersonal, WorkspaceTypeTeam, WorkspaceTypeMarketing, WorkspaceTypeCustom:
		return true
	}
	return false
}

type MemberRole string

const (
	MemberRoleOwner  MemberRole = "owner"
	MemberRoleAdmin  MemberRole = "admin"
	MemberRoleMember MemberRole = "member"
)

func (r MemberRole) Valid() bool {
	switch r {
	case MemberRoleOwner, MemberRoleAdmin, MemberRoleMember:
		return true
	}
	return false
}

// Roles allowed to administer a workspace (rename, logo, invites, uploads).
var AdminRoles = []MemberRole{MemberRoleOwner, MemberRoleAdmin}

type Membership struct {
	UserID   int64      `json:"user_id"`
	Role     MemberRole `json:"role"`
	JoinedAt time.Time  `json:"joined_at"`
}

type WorkspaceSettings struct {
	LogoKey *string `json:"logo_key,omitempty"`
	LogoURL *string `json:"logo_url,omitempty"`
	Color   *string `json:"color,omitempty"`
}

type Workspace struct {
	ID         int64             `json:"id"`
	Name       string            `json:"name"`
	Type       WorkspaceType     `json:"type"`
	CustomType *string           `json:"custom_type,omitempty"`
	OwnerID    int64             `json:"owner_id"`
	Settings   WorkspaceSettings `json:"settings"`
	Members    []Membership      `json:"members"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

func (w *Workspace) IsPersonal() bool {
	return w.Type == WorkspaceTypePersonal
}

// Member scans the membership list for userID.
func (w *Workspace) Member(userID int64) (Membership, bool) {
	for _, m := range w.Members {
		if m.UserID == userID {
			return m, true
		}
	}
	return Membership{}, false
}

func (w *Workspace) IsMember(userID int64) bool {
	_, ok := w.Member(userID)
	return ok
}

// HasRole reports whether userID is a member holding one of roles.
// A non-member never has a role.
func (w *Workspace) HasRole(userID int64, roles ...MemberRole) bool {
	m, ok := w.Member(userID)
	if !ok {
		return false
	}
	return slices.Contains(roles, m.Role)
}
