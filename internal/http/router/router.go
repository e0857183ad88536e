package router

import (
	"github.com/gin-gonic/gin"

	"tekimax.app/docs/internal/http/handler"
	"tekimax.app/docs/internal/service"
)

type RouterConfig struct {
	DashboardURL string
	IsProduction bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authHandler := handler.NewAuthHandler(services.Auth(), cfg.DashboardURL, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler)

	invitationHandler := handler.NewInvitationHandler(services.Invitations())

	v1 := router.Group("/api/v1")
	PublicInvitationRouter(v1.Group("/invites"), invitationHandler)

	authed := v1.Group("")
	authed.Use(handler.RequireSession(services.Auth()))
	{
		userHandler := handler.NewUserHandler(services.Users())
		UserRouter(authed.Group("/users"), userHandler)

		workspaceHandler := handler.NewWorkspaceHandler(services.Workspaces())
		WorkspaceRouter(authed.Group("/workspaces"), workspaceHandler, userHandler, invitationHandler)

		InvitationRouter(authed.Group("/invites"), invitationHandler)

		typeHandler := handler.NewWorkspaceTypeHandler(services.WorkspaceTypes())
		WorkspaceTypeRouter(authed.Group("/workspace-types"), typeHandler)
	}
}
