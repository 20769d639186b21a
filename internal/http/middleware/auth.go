package middleware

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"matchapi/internal/repository"
	"matchapi/internal/token"
)

const (
	// UserIDLocalKey is the key used to store the authenticated user id in Fiber's context locals.
	UserIDLocalKey = "user_id"
	// TokenLocalKey is the key used to store the raw bearer token for logout.
	TokenLocalKey = "session_token"
)

// RequireAuth verifies the Bearer token and rejects revoked or invalid
// sessions. The token subject must still exist as an account; a valid
// token for a deleted account is rejected. On success the user id and raw
// token are stored in context locals for downstream handlers.
func RequireAuth(tokens *token.Manager, denylist token.Denylist, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		if raw == "" || raw == c.Get(fiber.HeaderAuthorization) {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		claims, err := tokens.Verify(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid session token")
		}

		revoked, err := denylist.IsRevoked(c.UserContext(), claims.ID)
		if err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "session check unavailable")
		}
		if revoked {
			return fiber.NewError(fiber.StatusUnauthorized, "session revoked")
		}

		if _, err := users.FindByID(c.UserContext(), claims.Subject); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fiber.NewError(fiber.StatusUnauthorized, "account no longer exists")
			}
			return fiber.NewError(fiber.StatusServiceUnavailable, "session check unavailable")
		}

		c.Locals(UserIDLocalKey, claims.Subject)
		c.Locals(TokenLocalKey, raw)
		return c.Next()
	}
}

// UserIDFromCtx extracts the authenticated user id set by RequireAuth.
func UserIDFromCtx(c *fiber.Ctx) string {
	if v, ok := c.Locals(UserIDLocalKey).(string); ok {
		return v
	}
	return ""
}
