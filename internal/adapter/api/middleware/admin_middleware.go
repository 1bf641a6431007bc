package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/service"
	"skillio/internal/infrastructure/token"
)

type AdminLookup interface {
	GetAdmin(ctx context.Context, id string) (*entity.AdminAccount, error)
}

// AdminMiddleware guards the back office. Sessions are local tokens, and the role is
// re-read from the account on every request.
type AdminMiddleware struct {
	verifier token.Verifier
	admins   AdminLookup
}

func NewAdminMiddleware(verifier token.Verifier, admins AdminLookup) *AdminMiddleware {
	return &AdminMiddleware{
		verifier: verifier,
		admins:   admins,
	}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw, ok := bearerToken(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
		}

		id, err := m.verifier.VerifyToken(c.Request().Context(), raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}
		if id.Kind != token.KindAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		admin, err := m.admins.GetAdmin(c.Request().Context(), id.UID)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Admin account no longer exists")
		}

		setIdentity(c, id)
		c.Set("name", admin.Username)
		c.Set("admin_role", string(admin.Role))
		return next(c)
	}
}

// RequireCapability must run after AdminOnly.
func (m *AdminMiddleware) RequireCapability(capability service.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("admin_role").(string)
			if !service.RoleHas(entity.AdminRole(role), capability) {
				return echo.NewHTTPError(http.StatusForbidden, "Your role does not allow "+string(capability))
			}
			return next(c)
		}
	}
}
