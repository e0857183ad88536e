package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tekimax.app/docs/internal/http/dto"
	"tekimax.app/docs/internal/service"
)

type WorkspaceTypeHandler struct {
	typeService service.WorkspaceTypeService
}

func NewWorkspaceTypeHandler(typeService service.WorkspaceTypeService) *WorkspaceTypeHandler {
	return &WorkspaceTypeHandler{typeService: typeService}
}

func (h *WorkspaceTypeHandler) List(c *gin.Context) {
	workspaceID, err := optionalID(c.Query("workspace_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace_id"})
		return
	}

	list, err := h.typeService.List(c.Request.Context(), workspaceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceTypeListResponse(list))
}

func (h *WorkspaceTypeHandler) Create(c *gin.Context) {
	var req dto.CreateWorkspaceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	def, err := h.typeService.Create(c.Request.Context(), identityFrom(c).UserID, req.WorkspaceID, req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToWorkspaceTypeResponse(def))
}

func (h *WorkspaceTypeHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.typeService.Remove(c.Request.Context(), identityFrom(c).UserID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
