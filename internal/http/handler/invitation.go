package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tekimax.app/docs/internal/http/dto"
	"tekimax.app/docs/internal/service"
)

type InvitationHandler struct {
	invService service.InvitationService
}

func NewInvitationHandler(invService service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invService: invService}
}

func (h *InvitationHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	inv, err := h.invService.Create(ctx, identityFrom(c).UserID, service.CreateInviteInput{
		Email:       req.Email,
		Name:        req.Name,
		Role:        req.Role,
		WorkspaceID: req.WorkspaceID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	slog.InfoContext(ctx, "invitation created", "invite_id", inv.ID, "workspace_id", inv.WorkspaceID)
	c.JSON(http.StatusCreated, dto.ToInviteResponse(inv))
}

// Verify is public: the invite id and token from the emailed link are the credential.
func (h *InvitationHandler) Verify(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.VerifyInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	inv, err := h.invService.Verify(c.Request.Context(), id, req.Token)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInviteResponse(inv))
}

func (h *InvitationHandler) Resend(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	inv, err := h.invService.Resend(c.Request.Context(), identityFrom(c).UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInviteResponse(inv))
}

func (h *InvitationHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	inv, err := h.invService.Remove(c.Request.Context(), identityFrom(c).UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInviteResponse(inv))
}

func (h *InvitationHandler) ListPending(c *gin.Context) {
	workspaceID, ok := paramID(c, "id")
	if !ok {
		return
	}

	invites, err := h.invService.ListPending(c.Request.Context(), identityFrom(c).UserID, workspaceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"invites": dto.ToInviteResponses(invites)})
}
