package app

import (
	"context"
	"fmt"
	"time"

	"contentcraft_backend/internal/auth"
	"contentcraft_backend/internal/config"
	"contentcraft_backend/internal/database"
	"contentcraft_backend/internal/generation"
	"contentcraft_backend/internal/handlers"
	"contentcraft_backend/internal/logger"
	"contentcraft_backend/internal/middleware"
	"contentcraft_backend/internal/repositories"
	"contentcraft_backend/internal/routes"
	"contentcraft_backend/internal/services"
	"contentcraft_backend/internal/validator"
	"contentcraft_backend/internal/workers"
	"contentcraft_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(cfg.Server.Env == "development")

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Migrations applied")

	worker := workers.NewMaintenanceWorker(gormDB, repositories.NewSessionRepository())
	worker.Start(context.Background())

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, serviceContainer.AuthService)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Hour)
	provider := newGenerationProvider(cfg)

	return services.NewServiceContainer(tokens, provider, cfg.Generation.TextModel, cfg.Generation.ImageModel)
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	base := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(base, sc.AuthService),
		WorkspaceHandler: handlers.NewWorkspaceHandler(base, sc.WorkspaceService),
		ProjectHandler:   handlers.NewProjectHandler(base, sc.ProjectService),
		UsageHandler:     handlers.NewUsageHandler(base, sc.UsageService),
		ContentHandler:   handlers.NewContentHandler(base, sc.ContentService),
	}
}

func initializeGinRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ginRouter := gin.New()
	ginRouter.Use(gin.Recovery())
	ginRouter.Use(middleware.RequestIDMiddleware())
	ginRouter.Use(middleware.LoggingMiddleware())
	ginRouter.Use(middleware.CORSMiddleware())
	ginRouter.Use(middleware.DBMiddleware(gormDB))

	return ginRouter
}

// newGenerationProvider выбирает провайдера по конфигурации:
// без API ключа работаем на моке
func newGenerationProvider(cfg *config.Config) generation.Provider {
	if cfg.Generation.Provider == "openai" && cfg.Generation.APIKey != "" {
		logger.Info("Using OpenAI generation provider", "text_model", cfg.Generation.TextModel)
		return generation.NewOpenAIProvider(cfg.Generation.APIKey)
	}

	logger.Warn("Using mock generation provider")
	return generation.NewMockProvider()
}
