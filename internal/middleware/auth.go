package middleware

import (
	"errors"
	"strings"

	"contentcraft_backend/internal/logger"
	"contentcraft_backend/internal/services"
	"contentcraft_backend/pkg/apperrors"
	"contentcraft_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware проверяет Bearer токен через AuthService:
// подпись JWT, живую сессию и существование пользователя.
// Ставится после DBMiddleware.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		db, ok := c.Get(string(contextkeys.DBContextKey))
		if !ok {
			apperrors.HandleError(c, apperrors.InternalError(errors.New("db not found in context")))
			c.Abort()
			return
		}

		user, err := authService.Authenticate(db.(*gorm.DB), token)
		if err != nil {
			apperrors.HandleError(c, err)
			c.Abort()
			return
		}

		c.Set("userID", user.ID)
		c.Set("userPlan", string(user.SubscriptionPlan))

		// user_id попадает во все последующие строки лога запроса
		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
