package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SessionGuard validates bearer tokens and stores user_id in locals.
// No handler behind it touches the store before this check passes.
func SessionGuard(secret string) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		token := bearerFromHeader(c.Get("Authorization"))
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		parsed, err := parseGuardClaimsFn(token, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
			return secretBytes, nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		claims, ok := parsed.Claims.(*Claims)
		if !ok || !parsed.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		c.Locals("user_id", claims.UserID)
		return c.Next()
	}
}

var parseGuardClaimsFn = jwt.ParseWithClaims

// CallerID returns the authenticated user id set by SessionGuard.
func CallerID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

func bearerFromHeader(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
