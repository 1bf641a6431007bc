package router

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/adapter/api/handler"
	"skillio/internal/adapter/api/middleware"
)

func SetupBookingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	bookingHandler := handler.GetBookingHandler()

	bookings := e.Group("/v1/bookings")
	bookings.Use(authMiddleware.Authenticate)

	bookings.POST("", bookingHandler.CreateBooking)
	bookings.GET("/mine", bookingHandler.ListMine)
	bookings.GET("/assigned", bookingHandler.ListAssigned)
	bookings.GET("/earnings", bookingHandler.Earnings)
	bookings.GET("/:id", bookingHandler.GetBooking)
	bookings.PATCH("/:id/status", bookingHandler.UpdateStatus)
}
