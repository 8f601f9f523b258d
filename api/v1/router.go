package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/solarplanner-api/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, auth *AuthController, projects *ProjectController, design *DesignController) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/logout", auth.Logout)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), auth.GetCurrentUser)
	}

	// Project endpoints - protected by AuthMiddleware
	projectGroup := router.Group("/projects")
	projectGroup.Use(middleware.AuthMiddleware())
	{
		projectGroup.GET("", projects.ListProjects)
		projectGroup.POST("", projects.CreateProject)
		projectGroup.GET("/:id", projects.GetProject)
		projectGroup.PUT("/:id", projects.UpdateProject)
		projectGroup.DELETE("/:id", projects.DeleteProject)

		// Design resources scoped to a project
		projectGroup.GET("/:id/terrace", design.GetTerrace)
		projectGroup.PUT("/:id/terrace", design.UpdateTerrace)
		projectGroup.GET("/:id/structure", design.GetStructure)
		projectGroup.PUT("/:id/structure", design.UpdateStructure)
		projectGroup.GET("/:id/panels", design.ListPanels)
		projectGroup.POST("/:id/panels", design.AddPanel)
		projectGroup.GET("/:id/layout", design.GetLayout)
		projectGroup.POST("/:id/layout", design.SaveLayout)
	}
}
