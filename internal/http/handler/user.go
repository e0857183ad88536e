package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tekimax.app/docs/internal/http/dto"
	"tekimax.app/docs/internal/service"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Me(c *gin.Context) {
	profile, err := h.userService.Me(c.Request.Context(), identityFrom(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.Update(c.Request.Context(), identityFrom(c).UserID, service.UpdateUserInput{
		Username:  req.Username,
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userService.DeleteAccount(c.Request.Context(), identityFrom(c).UserID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) GenerateUploadURL(c *gin.Context) {
	upload, err := h.userService.GenerateUploadURL(c.Request.Context(), identityFrom(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, upload)
}

func (h *UserHandler) SetImage(c *gin.Context) {
	var req dto.SetImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.SetImage(c.Request.Context(), identityFrom(c).UserID, req.Key)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) RemoveImage(c *gin.Context) {
	user, err := h.userService.RemoveImage(c.Request.Context(), identityFrom(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) ListByWorkspace(c *gin.Context) {
	workspaceID, ok := paramID(c, "id")
	if !ok {
		return
	}

	users, err := h.userService.ListByWorkspace(c.Request.Context(), identityFrom(c).UserID, workspaceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": dto.ToUserResponses(users)})
}
