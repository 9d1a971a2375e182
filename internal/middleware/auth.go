package middleware

import (
	"net/http"
	"strings"

	"github.com/shivharejitendra/visora/internal/auth"
	"github.com/shivharejitendra/visora/internal/config"
	"github.com/shivharejitendra/visora/internal/logger"
	"github.com/shivharejitendra/visora/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const userIDContextKey = "userID"

// AuthMiddleware - middleware проверки JWT.
// Без побочных эффектов: только проверяет токен и кладет id пользователя
// в контекст запроса до того, как хендлер тронет хранилище.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Success: false,
				Message: "Not authorized. Login again.",
				Code:    apperrors.CodeUnauthorized,
			})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr, config.GetConfig().JWT.Secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Success: false,
				Message: "Not authorized. Please log in again.",
				Code:    apperrors.CodeInvalidToken,
			})
			return
		}

		// Сохраняем id в gin-контекст и в request context (для логов)
		c.Set(userIDContextKey, claims.UserID)
		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(userIDContextKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
