package middleware

import (
	"net/http"
	"strings"

	"github.com/jobeejobaa/mini-social-jotai-pwa/internal/token"
	"github.com/labstack/echo/v4"
)

// UserIDKey is the echo context key under which the authenticated user id
// is stored.
const UserIDKey = "userID"

// JWTAuthMiddleware checks for a valid bearer token and stores the
// authenticated user id in the request context. The wrapped handler never
// runs without a verified token. The middleware does not check that the user
// still exists; handlers that need a live record re-resolve the id.
func JWTAuthMiddleware(tokens *token.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
			}

			// Expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set(UserIDKey, userID)

			return next(c)
		}
	}
}
