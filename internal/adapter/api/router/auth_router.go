package router

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/adapter/api/handler"
	"skillio/internal/adapter/api/middleware"
	"skillio/internal/infrastructure/ratelimit"
)

func SetupAuthRouter(e *echo.Echo, limiter *ratelimit.RateLimiter) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.Use(middleware.RateLimit(limiter))
	auth.POST("/register", authHandler.Register)
}
