package router

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/adapter/api/handler"
)

func SetupDevRouter(e *echo.Echo, environment string) {
	if environment != "development" {
		return
	}
	devTokenHandler := handler.GetDevTokenHandler()

	e.POST("/_dev/token/user", devTokenHandler.GenerateUserToken)
}
