package routes

import (
	"github.com/gin-gonic/gin"

	"kennel_backend/internal/handlers"
	"kennel_backend/internal/middleware"
)

// RegisterRoutes mounts the public marketing API and the authenticated
// admin API.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	// Public marketing-site endpoints
	public := ginRouter.Group("/api/v1/public")
	{
		appHandlers.MemberHandler.RegisterPublicRoutes(public)
		appHandlers.PuppyHandler.RegisterPublicRoutes(public)
		appHandlers.EnvironmentHandler.RegisterPublicRoutes(public)
		appHandlers.PostHandler.RegisterPublicRoutes(public)
	}

	// Admin console endpoints
	admin := ginRouter.Group("/api/v1")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		appHandlers.MemberHandler.RegisterRoutes(admin)
		appHandlers.PuppyHandler.RegisterRoutes(admin)
		appHandlers.EnvironmentHandler.RegisterRoutes(admin)
		appHandlers.PostHandler.RegisterRoutes(admin)
	}
}
