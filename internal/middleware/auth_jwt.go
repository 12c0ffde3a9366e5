package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Amitgupta170804/BlogEase/internal/auth"
)

const (
	localUserID = "user_id"

	msgNoToken      = "No token, authorization denied"
	msgInvalidToken = "Token is not valid"
)

// tokenFrom reads "Authorization: Bearer <token>", falling back to the
// x-auth-token header.
func tokenFrom(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return strings.TrimSpace(c.Get("x-auth-token"))
}

// JWTUidOnly verifies a token when one is sent and stores its uid in
// Locals. Requests without a token pass through; RequireAuth rejects them
// where a user is needed.
func JWTUidOnly(signer *auth.Signer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := tokenFrom(c)
		if tokenStr == "" {
			return c.Next()
		}

		uid, err := signer.Parse(tokenStr)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, msgInvalidToken)
		}

		c.Locals(localUserID, uid.Hex())
		return c.Next()
	}
}

// RequireAuth checks if request has a user_id in Locals.
// If not -> return 401 Unauthorized.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if uid, ok := c.Locals(localUserID).(string); !ok || strings.TrimSpace(uid) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, msgNoToken)
		}
		return c.Next()
	}
}

// Protected is the handler chain for routes that need a signed-in user.
func Protected(signer *auth.Signer) []fiber.Handler {
	return []fiber.Handler{JWTUidOnly(signer), RequireAuth()}
}
