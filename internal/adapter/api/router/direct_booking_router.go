package router

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/adapter/api/handler"
	"skillio/internal/adapter/api/middleware"
)

func SetupDirectBookingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	directHandler := handler.GetDirectBookingHandler()

	direct := e.Group("/v1/direct")
	direct.GET("/catalog", directHandler.GetCatalog)
	direct.POST("/quote", directHandler.Quote)
	direct.GET("/slots", directHandler.AvailableSlots)
	direct.POST("/bookings", directHandler.CreateBooking, authMiddleware.Authenticate)
}
