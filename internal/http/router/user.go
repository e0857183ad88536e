package router

import (
	"github.com/gin-gonic/gin"

	"tekimax.app/docs/internal/http/handler"
)

func UserRouter(rg *gin.RouterGroup, h *handler.UserHandler) {
	rg.GET("/me", h.Me)
	rg.PATCH("/me", h.Update)
	rg.DELETE("/me", h.Delete)
	rg.POST("/me/image/upload-url", h.GenerateUploadURL)
	rg.PUT("/me/image", h.SetImage)
	rg.DELETE("/me/image", h.RemoveImage)
}
