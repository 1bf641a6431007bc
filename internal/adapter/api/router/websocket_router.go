package router

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/adapter/api/handler"
)

// The websocket handler authenticates itself since browsers cannot send headers on upgrade.
func SetupWebSocketRouter(e *echo.Echo) {
	e.GET("/v1/ws", handler.GetWebSocketHandler().HandleWebSocket)
}
