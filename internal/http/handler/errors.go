package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tekimax.app/docs/common"
	"tekimax.app/docs/internal/service"
)

type errorMapping struct {
	err     error
	status  int
	message string
}

// Specific errors come before the generic ones they wrap.
var errorMappings = []errorMapping{
	{service.ErrUnauthenticated, http.StatusUnauthorized, "Unauthorized"},
	{service.ErrSessionExpired, http.StatusUnauthorized, "Unauthorized"},
	{service.ErrInvalidCode, http.StatusBadRequest, "Invalid authorization code"},

	{service.ErrInvitePermission, http.StatusForbidden, "You don't have permission to invite users"},
	{service.ErrNotMember, http.StatusForbidden, "Not a member of workspace"},
	{service.ErrOwnerOnly, http.StatusForbidden, "Only workspace owners can delete workspaces"},
	{service.ErrForbidden, http.StatusForbidden, "Forbidden"},

	{service.ErrInviteNotFound, http.StatusNotFound, "Invite not found"},
	{service.ErrInviteNoLongerValid, http.StatusGone, "Invite is no longer valid"},
	{service.ErrInviteExpired, http.StatusGone, "Invite has expired"},
	{service.ErrInvalidToken, http.StatusBadRequest, "Invalid verification token"},
	{service.ErrInvitePendingExists, http.StatusConflict, "User already invited"},
	{service.ErrAlreadyMember, http.StatusConflict, "User is already a member of this workspace"},
	{service.ErrInvalidInviteRole, http.StatusBadRequest, "Invalid invite role"},
	{service.ErrInvalidEmail, http.StatusBadRequest, "Invalid email"},

	{service.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{service.ErrUsernameTaken, http.StatusConflict, "Username is already taken"},
	{common.ErrUsernameTooShort, http.StatusBadRequest, "Username must be at least 3 characters"},
	{common.ErrUsernameInvalidChar, http.StatusBadRequest, "Username can only contain letters, numbers, underscores, and hyphens"},
	{service.ErrOwnsSharedWorkspace, http.StatusConflict, "Transfer or delete your shared workspaces before deleting your account"},
	{service.ErrImageKeyRequired, http.StatusBadRequest, "Image key is required"},

	{service.ErrWorkspaceNotFound, http.StatusNotFound, "Workspace not found"},
	{service.ErrNoWorkspace, http.StatusNotFound, "No workspace available"},
	{service.ErrPersonalWorkspace, http.StatusBadRequest, "Cannot delete personal workspace"},
	{service.ErrPersonalWorkspaceExists, http.StatusConflict, "A personal workspace already exists"},
	{service.ErrInvalidWorkspaceName, http.StatusBadRequest, "Workspace name is required"},
	{service.ErrInvalidWorkspaceType, http.StatusBadRequest, "Invalid workspace type"},

	{service.ErrWorkspaceTypeNotFound, http.StatusNotFound, "Workspace type not found"},
	{service.ErrWorkspaceTypeExists, http.StatusConflict, "A workspace type with this name already exists"},
	{service.ErrWorkspaceTypeInUse, http.StatusConflict, "Cannot delete a workspace type that is currently in use"},
	{service.ErrInvalidWorkspaceTypeName, http.StatusBadRequest, "Workspace type name is required"},

	{service.ErrStorageDisabled, http.StatusServiceUnavailable, "File uploads are not configured"},
}

// respondError writes the JSON error for err. Unmapped errors are logged
// and reported as a generic 500.
func respondError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			c.JSON(m.status, gin.H{"error": m.message})
			return
		}
	}

	slog.ErrorContext(c.Request.Context(), "request failed", "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func respondBindingError(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "invalid request body", "error", err)
	c.JSON(http.StatusBadRequest, gin.H{"error": bindingMessage(err)})
}
