package router

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/adapter/api/handler"
	"skillio/internal/adapter/api/middleware"
)

func SetupBookRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	bookHandler := handler.GetBookHandler()

	books := e.Group("/v1/books")
	books.Use(authMiddleware.Authenticate)

	books.POST("", bookHandler.Request)
	books.GET("/mine", bookHandler.Mine)
}
