package web

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"go-jobseeker-backend/internal/domain"
	"go-jobseeker-backend/pkg/auth"
	"go-jobseeker-backend/pkg/rbac"
)

// authRequired resolves the acting identity and stores it in Locals.
// Missing credential is 401; failed verification is 403.
func authRequired(resolver auth.Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := strings.TrimSpace(strings.TrimPrefix(c.Get("Authorization"), "Bearer "))

		actor, err := resolver.Resolve(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrNoCredential) {
				return fail(c, fiber.StatusUnauthorized, "Access token required")
			}
			return fail(c, fiber.StatusForbidden, "Invalid or expired token")
		}

		c.Locals(string(domain.KeyUserID), actor.ID)
		c.Locals(string(domain.KeyUserRole), actor.Role)
		c.Locals(string(domain.KeyUserEmail), actor.Email)

		return c.Next()
	}
}

// requireWriter gates note mutations to the configured role set.
func (h *handlers) requireWriter(c *fiber.Ctx) error {
	role, _ := c.Locals(string(domain.KeyUserRole)).(string)
	if !rbac.Allowed(role, h.writerRoles) {
		return fail(c, fiber.StatusForbidden, rbac.DenialMessage(h.writerRoles))
	}
	return c.Next()
}

func actorID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(string(domain.KeyUserID)).(int64)
	return id
}
