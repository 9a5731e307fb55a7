package middleware

import (
	"net/http"

	"stylebook/utils"

	"github.com/gin-gonic/gin"
)

// RequireRole lets through callers whose token role is one of roles. It must run after
// JWTAuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(utils.RoleContextKey)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{Message: "Insufficient permissions"})
	}
}
