package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/localnerve/decideforme/internal/services"
)

// ProfileCookie names the cookie that identifies a client profile
const ProfileCookie = "dfm_profile"

const sessionLocal = "session"

// Profile resolves the client profile from its cookie, issuing a new UUIDv7 profile when the
// cookie is missing or malformed, and stores the profile's services in the request locals.
func Profile(registry *services.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		profileID := c.Cookies(ProfileCookie)
		if _, err := uuid.Parse(profileID); err != nil {
			profileID = uuid.Must(uuid.NewV7()).String()
			c.Cookie(&fiber.Cookie{
				Name:     ProfileCookie,
				Value:    profileID,
				Path:     "/",
				Expires:  time.Now().AddDate(1, 0, 0),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}

		c.Locals(sessionLocal, registry.For(profileID))
		return c.Next()
	}
}

// Session returns the services of the request's profile, nil outside the Profile middleware
func Session(c *fiber.Ctx) *services.Session {
	s, _ := c.Locals(sessionLocal).(*services.Session)
	return s
}
