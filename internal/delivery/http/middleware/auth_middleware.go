package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-jobseeker-backend/internal/delivery/http/response"
	"go-jobseeker-backend/internal/domain"
	"go-jobseeker-backend/pkg/auth"
)

// AuthMiddleware resolves the acting identity and stores it in the
// request context. A missing credential is 401; a credential that fails
// verification is 403.
func AuthMiddleware(resolver auth.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))

		actor, err := resolver.Resolve(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrNoCredential) {
				response.Error(c, http.StatusUnauthorized, "Access token required")
			} else {
				response.Error(c, http.StatusForbidden, "Invalid or expired token")
			}
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), actor.ID)
		c.Set(string(domain.KeyUserRole), actor.Role)
		c.Set(string(domain.KeyUserEmail), actor.Email)

		c.Next()
	}
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// ActorID reads the authenticated user id set by AuthMiddleware.
func ActorID(c *gin.Context) int64 {
	id, _ := c.Get(string(domain.KeyUserID))
	v, _ := id.(int64)
	return v
}

// ActorRole reads the authenticated role set by AuthMiddleware.
func ActorRole(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserRole))
}
