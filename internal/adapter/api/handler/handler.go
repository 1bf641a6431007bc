package handler

import (
	"skillio/internal/domain/service"
	"skillio/internal/infrastructure/token"
	ws "skillio/internal/infrastructure/websocket"
	"skillio/internal/usecase"
)

// Dependencies is everything the HTTP handlers are built from.
type Dependencies struct {
	Auth        *usecase.AuthUseCase
	AdminAuth   *usecase.AdminAuthUseCase
	User        *usecase.UserUseCase
	Catalog     *usecase.CatalogUseCase
	Discovery   *usecase.DiscoveryUseCase
	Review      *usecase.ReviewUseCase
	Booking     *usecase.BookingUseCase
	Direct      *usecase.DirectBookingUseCase
	Treasury    *usecase.TreasuryUseCase
	Application *usecase.ApplicationUseCase
	Portfolio   *usecase.PortfolioUseCase
	Book        *usecase.BookUseCase
	Assistant   *usecase.AssistantUseCase
	Activity    *usecase.ActivityUseCase

	Images         service.ImageStore
	WSManager      *ws.Manager
	UserVerifier   token.Verifier
	AdminVerifier  token.Verifier
	StorageBackend string
	HealthCheck    HealthCheck
}

var (
	authHandler          *AuthHandler
	devTokenHandler      *DevTokenHandler
	userHandler          *UserHandler
	catalogHandler       *CatalogHandler
	discoveryHandler     *DiscoveryHandler
	reviewHandler        *ReviewHandler
	bookingHandler       *BookingHandler
	directBookingHandler *DirectBookingHandler
	treasuryHandler      *TreasuryHandler
	applicationHandler   *ApplicationHandler
	portfolioHandler     *PortfolioHandler
	bookHandler          *BookHandler
	assistantHandler     *AssistantHandler
	adminHandler         *AdminHandler
	fileHandler          *FileHandler
	healthHandler        *HealthHandler
	webSocketHandler     *WebSocketHandler
)

func Setup(deps Dependencies) {
	authHandler = NewAuthHandler(deps.Auth)
	devTokenHandler = NewDevTokenHandler(deps.Auth)
	userHandler = NewUserHandler(deps.User, deps.Portfolio)
	catalogHandler = NewCatalogHandler(deps.Catalog)
	discoveryHandler = NewDiscoveryHandler(deps.Discovery)
	reviewHandler = NewReviewHandler(deps.Review)
	bookingHandler = NewBookingHandler(deps.Booking)
	directBookingHandler = NewDirectBookingHandler(deps.Direct)
	treasuryHandler = NewTreasuryHandler(deps.Treasury)
	applicationHandler = NewApplicationHandler(deps.Application)
	portfolioHandler = NewPortfolioHandler(deps.Portfolio)
	bookHandler = NewBookHandler(deps.Book)
	assistantHandler = NewAssistantHandler(deps.Assistant)
	adminHandler = NewAdminHandler(deps.AdminAuth, deps.Activity)
	fileHandler = NewFileHandler(deps.Images)
	healthHandler = NewHealthHandler(deps.StorageBackend, deps.HealthCheck)
	webSocketHandler = NewWebSocketHandler(deps.WSManager, deps.UserVerifier, deps.AdminVerifier)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetDevTokenHandler() *DevTokenHandler {
	return devTokenHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetDiscoveryHandler() *DiscoveryHandler {
	return discoveryHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetBookingHandler() *BookingHandler {
	return bookingHandler
}

func GetDirectBookingHandler() *DirectBookingHandler {
	return directBookingHandler
}

func GetTreasuryHandler() *TreasuryHandler {
	return treasuryHandler
}

func GetApplicationHandler() *ApplicationHandler {
	return applicationHandler
}

func GetPortfolioHandler() *PortfolioHandler {
	return portfolioHandler
}

func GetBookHandler() *BookHandler {
	return bookHandler
}

func GetAssistantHandler() *AssistantHandler {
	return assistantHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func GetWebSocketHandler() *WebSocketHandler {
	return webSocketHandler
}
