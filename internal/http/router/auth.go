package router

import (
	"github.com/gin-gonic/gin"

	"tekimax.app/docs/internal/http/handler"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler) {
	rg.GET("/login", h.Login)
	rg.GET("/callback", h.Callback)
	rg.GET("/url", h.GetAuthURL)
	rg.POST("/exchange", h.Exchange)
	rg.GET("/validate", h.ValidateSession)
	rg.POST("/logout", h.Logout)
}
