package routes

import (
	"net/http"

	"contentcraft_backend/internal/handlers"
	"contentcraft_backend/internal/middleware"
	"contentcraft_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты приложения
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	authService services.AuthService,
) {
	ginRouter.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := ginRouter.Group("/api/v1")

	// Публичные маршруты: регистрация и вход
	appHandlers.AuthHandler.RegisterRoutes(api)

	// Все остальное за проверкой токена и сессии
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		appHandlers.AuthHandler.RegisterProtectedRoutes(protected)
		appHandlers.WorkspaceHandler.RegisterRoutes(protected)
		appHandlers.ProjectHandler.RegisterRoutes(protected)
		appHandlers.UsageHandler.RegisterRoutes(protected)
		appHandlers.ContentHandler.RegisterRoutes(protected)
	}
}
