package router

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/adapter/api/handler"
	"skillio/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	me := e.Group("/v1/users/me")
	me.Use(authMiddleware.Authenticate)

	me.GET("", userHandler.GetMe)
	me.PUT("", userHandler.UpdateMe)
	me.PUT("/tasker-settings", userHandler.UpdateTaskerSettings)
	me.POST("/tasker-settings/submit", userHandler.SubmitTaskerSettings)
}
