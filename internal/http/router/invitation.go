package router

import (
	"github.com/gin-gonic/gin"

	"tekimax.app/docs/internal/http/handler"
)

// PublicInvitationRouter serves the emailed verification link; no session.
func PublicInvitationRouter(rg *gin.RouterGroup, h *handler.InvitationHandler) {
	rg.POST("/:id/verify", h.Verify)
}

func InvitationRouter(rg *gin.RouterGroup, h *handler.InvitationHandler) {
	rg.POST("", h.Create)
	rg.POST("/:id/resend", h.Resend)
	rg.DELETE("/:id", h.Delete)
}
