package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tekimax.app/docs/internal/http/dto"
	"tekimax.app/docs/internal/service"
)

type WorkspaceHandler struct {
	workspaceService service.WorkspaceService
}

func NewWorkspaceHandler(workspaceService service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	ws, err := h.workspaceService.Create(c.Request.Context(), identityFrom(c), service.CreateWorkspaceInput{
		Name:       req.Name,
		Type:       req.Type,
		CustomType: req.CustomType,
		Settings:   req.Settings.ToModel(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) List(c *gin.Context) {
	workspaces, err := h.workspaceService.List(c.Request.Context(), identityFrom(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"workspaces": dto.ToWorkspaceResponses(workspaces)})
}

func (h *WorkspaceHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ws, err := h.workspaceService.Get(c.Request.Context(), identityFrom(c).UserID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

// Active resolves the workspace the client should open, honouring ?preferred=.
func (h *WorkspaceHandler) Active(c *gin.Context) {
	preferred, err := optionalID(c.Query("preferred"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preferred"})
		return
	}

	ws, err := h.workspaceService.ResolveActive(c.Request.Context(), identityFrom(c).UserID, preferred)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	ws, err := h.workspaceService.Update(c.Request.Context(), identityFrom(c).UserID, id, service.UpdateWorkspaceInput{
		Name:       req.Name,
		Type:       req.Type,
		CustomType: req.CustomType,
		Settings:   req.Settings.ToModel(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.workspaceService.Remove(c.Request.Context(), identityFrom(c).UserID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkspaceHandler) GenerateUploadURL(c *gin.Context) {
	var req dto.UploadURLRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindingError(c, err)
			return
		}
	}

	var workspaceID *int64
	if req.WorkspaceID != nil {
		id, err := optionalID(*req.WorkspaceID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace_id"})
			return
		}
		workspaceID = id
	}

	upload, err := h.workspaceService.GenerateUploadURL(c.Request.Context(), identityFrom(c).UserID, workspaceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, upload)
}
