package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/solarplanner-api/api/v1"
	"github.com/solarplanner-api/config"
	"github.com/solarplanner-api/database"
	"github.com/solarplanner-api/middleware"
	"github.com/solarplanner-api/repositories"
	"github.com/solarplanner-api/services"
)

func main() {
	// Load environment
	config.LoadEnv()

	// Connect to database
	db, err := database.NewConnection(config.DatabaseURL())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Request logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	terraceRepo := repositories.NewTerraceRepository(db)
	structureRepo := repositories.NewStructureRepository(db)
	panelRepo := repositories.NewPanelRepository(db)
	layoutRepo := repositories.NewLayoutRepository(db)

	// Services
	authService := services.NewAuthService(userRepo)
	projectService := services.NewProjectService(projectRepo)
	designService := services.NewDesignService(projectRepo, terraceRepo, structureRepo, panelRepo, layoutRepo)

	// Controllers
	authController := v1.NewAuthController(authService)
	projectController := v1.NewProjectController(projectService)
	designController := v1.NewDesignController(designService)

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))

	// Register API routes
	apiV1 := router.Group("/api/v1")
	v1.RegisterRoutes(apiV1, authController, projectController, designController)

	// Start server
	port := config.Port()
	log.Printf("🚀 Solar Planner API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
