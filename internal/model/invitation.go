package model

import "time"

// InviteRole is the permission offered by an invite. It is a separate
// vocabulary from MemberRole; use MemberRole() to translate.
type InviteRole string

const (
	InviteRoleRead  InviteRole = "read"
	InviteRoleWrite InviteRole = "write"
	InviteRoleOwner InviteRole = "owner"
)

func (r InviteRole) Valid() bool {
	switch r {
	case InviteRoleRead, InviteRoleWrite, InviteRoleOwner:
		return true
	}
	return false
}

// MemberRole maps owner→owner, write→admin, read→member.
func (r InviteRole) MemberRole() MemberRole {
	switch r {
	case InviteRoleOwner:
		return MemberRoleOwner
	case InviteRoleWrite:
		return MemberRoleAdmin
	default:
		return MemberRoleMember
	}
}

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusExpired  InvitationStatus = "expired"
)

type Invitation struct {
	ID          int64            `json:"id"`
	Email       string           `json:"email"`
	Name        string           `json:"name"`
	Role        InviteRole       `json:"role"`
	WorkspaceID int64            `json:"workspace_id"`
	Status      InvitationStatus `json:"status"`
	Token       string           `json:"-"`
	ExpiresAt   time.Time        `json:"expires_at"`
	CreatedBy   *int64           `json:"created_by,omitempty"`
	AcceptedBy  *int64           `json:"accepted_by,omitempty"`
	AcceptedAt  *time.Time       `json:"accepted_at,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

func (i *Invitation) IsPending() bool {
	return i.Status == InvitationStatusPending
}

// IsExpired is strict: an invite verified exactly at ExpiresAt is still valid.
func (i *Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
