package router

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/adapter/api/handler"
)

func SetupCatalogRouter(e *echo.Echo) {
	catalogHandler := handler.GetCatalogHandler()

	e.GET("/v1/categories", catalogHandler.ListCategories)

	services := e.Group("/v1/services")
	services.GET("", catalogHandler.ListServices)
	services.GET("/:id", catalogHandler.GetService)
}
