package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/decideforme/internal/types"
)

// AuthAdmin requires the admin session flag of the request's profile
func AuthAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := Session(c)
		if s == nil || !s.Auth.IsAdminAuthenticated(c.UserContext()) {
			return types.Forbidden("Admin session required", "data.authorization.admin")
		}
		return c.Next()
	}
}

// AuthUser requires the user session flag of the request's profile
func AuthUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := Session(c)
		if s == nil || !s.Auth.IsAuthenticated(c.UserContext()) {
			return types.Forbidden("Sign in required", "data.authorization.user")
		}
		return c.Next()
	}
}
