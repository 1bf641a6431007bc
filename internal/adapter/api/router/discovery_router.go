package router

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/adapter/api/handler"
)

func SetupDiscoveryRouter(e *echo.Echo) {
	discoveryHandler := handler.GetDiscoveryHandler()

	e.GET("/v1/categories/:category/taskers", discoveryHandler.TaskersByCategory)
	e.GET("/v1/taskers/:id", discoveryHandler.PublicProfile)
}
