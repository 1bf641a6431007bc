package handler

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/domain/entity"
	"skillio/internal/usecase"
)

func getUserIDFromContext(c echo.Context) string {
	if uid, ok := c.Get("uid").(string); ok {
		return uid
	}
	return ""
}

func getStringFromContext(c echo.Context, key string) string {
	v, _ := c.Get(key).(string)
	return v
}

// actorFromContext describes the caller for permission checks and the activity log.
func actorFromContext(c echo.Context) usecase.Actor {
	actor := usecase.Actor{
		ID:   getUserIDFromContext(c),
		Name: getStringFromContext(c, "name"),
	}
	if role := getStringFromContext(c, "admin_role"); role != "" {
		actor.Admin = true
		actor.Role = entity.AdminRole(role)
	}
	return actor
}

func isAdminRequest(c echo.Context) bool {
	return getStringFromContext(c, "admin_role") != ""
}
