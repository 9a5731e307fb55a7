package middleware

import (
	"net/http"
	"strings"

	"stylebook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthMiddleware verifies the bearer token and stores the caller's ID and role.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RequestLogger(c).Debug("token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Invalid token"})
			return
		}

		c.Set(utils.UserIDContextKey, claims.Subject)
		c.Set(utils.RoleContextKey, claims.Role)
		if l, ok := c.Get(utils.LoggerContextKey); ok {
			if logger, ok := l.(*zap.Logger); ok {
				c.Set(utils.LoggerContextKey, logger.With(zap.String("userID", claims.Subject)))
			}
		}
		c.Next()
	}
}
