package middleware

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
)

// HeaderUserID is the trusted header carrying the caller's numeric identity.
// This stands in for real authentication; a production deployment would
// replace it with a session or token mechanism.
const HeaderUserID = "X-User-Id"

const localsUserID = "user_id"

// RequireUser rejects requests without a positive integer X-User-Id header
// and stores the parsed ID for handlers.
func RequireUser() fiber.Handler {
	return func(c fiber.Ctx) error {
		raw := c.Get(HeaderUserID)
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing " + HeaderUserID + " header",
			})
		}

		userID, err := strconv.Atoi(raw)
		if err != nil || userID <= 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": HeaderUserID + " must be a positive integer",
			})
		}

		c.Locals(localsUserID, userID)
		return c.Next()
	}
}

// UserID returns the authenticated user ID stored by RequireUser.
func UserID(c fiber.Ctx) (int, bool) {
	id, ok := c.Locals(localsUserID).(int)
	return id, ok
}
