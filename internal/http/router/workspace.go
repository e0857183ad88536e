package router

import (
	"github.com/gin-gonic/gin"

	"tekimax.app/docs/internal/http/handler"
)

func WorkspaceRouter(rg *gin.RouterGroup, h *handler.WorkspaceHandler, users *handler.UserHandler, invites *handler.InvitationHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/active", h.Active)
	rg.POST("/upload-url", h.GenerateUploadURL)
	rg.GET("/:id", h.Get)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.GET("/:id/members", users.ListByWorkspace)
	rg.GET("/:id/invites", invites.ListPending)
}

func WorkspaceTypeRouter(rg *gin.RouterGroup, h *handler.WorkspaceTypeHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.DELETE("/:id", h.Delete)
}
