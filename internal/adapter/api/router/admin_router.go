package router

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/adapter/api/handler"
	"skillio/internal/adapter/api/middleware"
	"skillio/internal/domain/service"
	"skillio/internal/infrastructure/ratelimit"
)

func SetupAdminRouter(e *echo.Echo, adminMiddleware *middleware.AdminMiddleware, loginLimiter *ratelimit.RateLimiter) {
	adminHandler := handler.GetAdminHandler()
	catalogHandler := handler.GetCatalogHandler()
	bookingHandler := handler.GetBookingHandler()
	treasuryHandler := handler.GetTreasuryHandler()
	applicationHandler := handler.GetApplicationHandler()
	portfolioHandler := handler.GetPortfolioHandler()
	reviewHandler := handler.GetReviewHandler()
	bookHandler := handler.GetBookHandler()
	userHandler := handler.GetUserHandler()

	e.POST("/v1/admin/login", adminHandler.Login, middleware.RateLimit(loginLimiter))

	admin := e.Group("/v1/admin")
	admin.Use(adminMiddleware.AdminOnly)
	can := adminMiddleware.RequireCapability

	admin.GET("/me", adminHandler.Me)

	services := admin.Group("/services", can(service.CapManageServices))
	services.GET("", catalogHandler.ListServices)
	services.POST("", catalogHandler.CreateService)
	services.PUT("/:id", catalogHandler.UpdateService)
	services.PATCH("/:id/active", catalogHandler.SetActive)
	services.POST("/:id/providers", catalogHandler.AssignProvider)

	bookings := admin.Group("/bookings")
	bookings.GET("", bookingHandler.AdminList, can(service.CapManageBookings))
	bookings.PATCH("/:id/status", bookingHandler.UpdateStatus, can(service.CapManageBookings))
	bookings.POST("/:id/release", treasuryHandler.ReleasePayout, can(service.CapReleasePayouts))
	bookings.POST("/:id/refund", treasuryHandler.Refund, can(service.CapReleasePayouts))

	treasury := admin.Group("/treasury", can(service.CapViewTreasury))
	treasury.GET("", treasuryHandler.Summary)
	treasury.GET("/payouts", treasuryHandler.PayoutQueue)

	applications := admin.Group("/applications", can(service.CapReviewApplications))
	applications.GET("", applicationHandler.List)
	applications.PATCH("/:id/status", applicationHandler.SetStatus)

	portfolios := admin.Group("/portfolios", can(service.CapReviewPortfolios))
	portfolios.GET("", portfolioHandler.ListSubmitted)
	portfolios.POST("/:userId/approve", portfolioHandler.Approve)
	portfolios.POST("/:userId/request-changes", portfolioHandler.RequestChanges)

	admin.PATCH("/reviews/:id", reviewHandler.SetFlags, can(service.CapModerateReviews))

	books := admin.Group("/books", can(service.CapManageBooks))
	books.GET("", bookHandler.List)
	books.PATCH("/:id/status", bookHandler.Advance)

	admin.GET("/activity", adminHandler.ListActivity, can(service.CapViewActivity))

	users := admin.Group("/users", can(service.CapManageUsers))
	users.GET("", userHandler.ListUsers)
	users.GET("/:id", userHandler.GetUser)
	users.PATCH("/:id/suspension", userHandler.SetSuspended)

	admins := admin.Group("/admins", can(service.CapManageAdmins))
	admins.GET("", adminHandler.ListAdmins)
	admins.POST("", adminHandler.CreateAdmin)
}
