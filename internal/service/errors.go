package service

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden is wrapped by every authorization failure. Non-members and
	// members with an insufficient role get the same error.
	ErrForbidden        = errors.New("forbidden")
	ErrNotMember        = fmt.Errorf("%w: not a member of workspace", ErrForbidden)
	ErrInvitePermission = fmt.Errorf("%w: no permission to invite users", ErrForbidden)
	ErrOwnerOnly        = fmt.Errorf("%w: only workspace owners can delete workspaces", ErrForbidden)

	ErrUserNotFound      = errors.New("user not found")
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrNoWorkspace       = errors.New("no workspace available")

	ErrStorageDisabled = errors.New("object storage is not configured")
)
