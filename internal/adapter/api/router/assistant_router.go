package router

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/adapter/api/handler"
	"skillio/internal/adapter/api/middleware"
)

// Rate limiting happens inside the assistant use case, keyed by caller.
func SetupAssistantRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	assistantHandler := handler.GetAssistantHandler()

	assistant := e.Group("/v1/assistant")
	assistant.POST("/support", assistantHandler.SupportChat, authMiddleware.Optional)

	authenticated := assistant.Group("")
	authenticated.Use(authMiddleware.Authenticate)
	authenticated.POST("/service-description", assistantHandler.ServiceDescription)
	authenticated.POST("/business-advice", assistantHandler.BusinessAdvice)
	authenticated.POST("/review-insights", assistantHandler.ReviewInsights)
}
