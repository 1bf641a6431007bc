package router

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/adapter/api/middleware"
	"skillio/internal/infrastructure/ratelimit"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, loginLimiter *ratelimit.RateLimiter) {
	SetupHealthRouter(e)
	SetupAuthRouter(e, loginLimiter)
	SetupCatalogRouter(e)
	SetupDiscoveryRouter(e)
	SetupReviewRouter(e, authMiddleware)
	SetupDirectBookingRouter(e, authMiddleware)
	SetupBookingRouter(e, authMiddleware)
	SetupApplicationRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupBookRouter(e, authMiddleware)
	SetupAssistantRouter(e, authMiddleware)
	SetupFileRouter(e, authMiddleware)
	SetupWebSocketRouter(e)
	SetupAdminRouter(e, adminMiddleware, loginLimiter)
}
