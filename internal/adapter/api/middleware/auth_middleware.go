package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"skillio/internal/infrastructure/token"
)

type AuthMiddleware struct {
	verifier token.Verifier
}

func NewAuthMiddleware(verifier token.Verifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func setIdentity(c echo.Context, id *token.Identity) {
	c.Set("uid", id.UID)
	c.Set("name", id.Name)
	c.Set("email", id.Email)
	c.Set("kind", string(id.Kind))
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}

		raw, ok := bearerToken(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}

		id, err := m.verifier.VerifyToken(c.Request().Context(), raw)
		if err != nil || id.Kind != token.KindUser {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		setIdentity(c, id)
		return next(c)
	}
}

// Optional identifies the caller when a valid token is present and lets anonymous
// requests through otherwise.
func (m *AuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw, ok := bearerToken(c)
		if !ok {
			return next(c)
		}
		if id, err := m.verifier.VerifyToken(c.Request().Context(), raw); err == nil && id.Kind == token.KindUser {
			setIdentity(c, id)
		}
		return next(c)
	}
}
