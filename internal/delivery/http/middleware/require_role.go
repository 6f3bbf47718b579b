package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobseeker-backend/internal/delivery/http/response"
	"go-jobseeker-backend/pkg/rbac"
)

// RequireRole gates a route group to the configured role set. Must run
// after AuthMiddleware.
func RequireRole(allowed []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rbac.Allowed(ActorRole(c), allowed) {
			response.Error(c, http.StatusForbidden, rbac.DenialMessage(allowed))
			c.Abort()
			return
		}
		c.Next()
	}
}
