package router

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/adapter/api/handler"
	"skillio/internal/adapter/api/middleware"
)

func SetupApplicationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	applicationHandler := handler.GetApplicationHandler()

	applications := e.Group("/v1/applications")
	applications.Use(authMiddleware.Authenticate)

	applications.POST("", applicationHandler.Submit)
	applications.GET("/mine", applicationHandler.Mine)
}
