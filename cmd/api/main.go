package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"skillio/internal/adapter/api"
	"skillio/internal/adapter/api/handler"
	apimiddleware "skillio/internal/adapter/api/middleware"
	"skillio/internal/adapter/api/router"
	"skillio/internal/domain/service"
	"skillio/internal/infrastructure/catalog"
	"skillio/internal/infrastructure/firebase"
	"skillio/internal/infrastructure/genai"
	"skillio/internal/infrastructure/metrics"
	"skillio/internal/infrastructure/ratelimit"
	"skillio/internal/infrastructure/scheduler"
	"skillio/internal/infrastructure/storage"
	"skillio/internal/infrastructure/token"
	"skillio/internal/infrastructure/websocket"
	"skillio/internal/usecase"
	"skillio/pkg/config"
	"skillio/pkg/logger"
)

const (
	loginAttemptsPerMinute = 20
	limiterIdleTimeout     = 30 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Logger().Fatalf("Failed to load configuration: %v", err)
	}
	logger.Configure(cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Logger().Fatalf("Failed to load catalog: %v", err)
	}

	credentials := firebase.CredentialOptions(cfg.FirebaseServiceAccountJSON, cfg.FirebaseServiceAccountPath)

	var firebaseClients *firebase.Clients
	if cfg.StorageBackend == "firestore" || cfg.AuthMode == "firebase" {
		firebaseClients, err = firebase.NewClients(ctx, cfg.FirebaseProject, credentials...)
		if err != nil {
			logger.Logger().Fatalf("Failed to initialize Firebase: %v", err)
		}
		defer firebaseClients.Close()
	}

	var repos *repositories
	if cfg.StorageBackend == "firestore" {
		repos, err = openFirestoreRepositories(ctx, firebaseClients, cat)
	} else {
		repos, err = openSnapshotRepositories(ctx, cfg, cat)
	}
	if err != nil {
		logger.Logger().Fatalf("Failed to open %s storage: %v", cfg.StorageBackend, err)
	}
	defer repos.close()
	logger.Info("Using %s storage backend", cfg.StorageBackend)

	issuer := token.NewIssuer(cfg.JWTSecret, time.Duration(cfg.JWTExpiry)*time.Second)

	// Admin sessions are always local tokens; customer tokens depend on AUTH_MODE.
	var (
		userVerifier token.Verifier
		userIssuer   usecase.TokenIssuer
		accounts     usecase.AccountCreator
	)
	switch cfg.AuthMode {
	case "firebase":
		userVerifier = firebaseClients.Auth
		accounts = firebaseClients.Auth
	case "jwks":
		jwks, err := token.NewJWKSVerifier(cfg.JWKSURL, cfg.FirebaseProject)
		if err != nil {
			logger.Logger().Fatalf("Failed to load JWKS: %v", err)
		}
		defer jwks.Close()
		userVerifier = jwks
	default:
		userVerifier = issuer
		userIssuer = issuer
	}
	logger.Info("Customer authentication mode: %s", cfg.AuthMode)

	var images service.ImageStore
	if cfg.StorageBucket != "" {
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, credentials...)
		if err != nil {
			logger.Logger().Fatalf("Failed to initialize Cloud Storage: %v", err)
		}
		defer storageClient.Close()
		images = storageClient
	}

	var generator service.TextGenerator
	if cfg.GeminiAPIKey != "" {
		gemini, err := genai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)
		if err != nil {
			logger.Warn("Gemini client unavailable, assistant replies will use fallbacks: %v", err)
		} else {
			generator = gemini
		}
	} else {
		logger.Warn("GEMINI_API_KEY not set, assistant replies will use fallbacks")
	}

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	gateway := service.NewSimulatedMpesaGateway(0)
	assistantLimiter := ratelimit.NewPerMinute(cfg.AssistantRatePerMinute)
	loginLimiter := ratelimit.NewPerMinute(loginAttemptsPerMinute)

	adminAuthUseCase := usecase.NewAdminAuthUseCase(repos.admins, repos.logs, issuer)
	if err := adminAuthUseCase.SeedOwner(ctx, cfg.AdminUsername, cfg.AdminPassword, cfg.AdminPasswordHash); err != nil {
		logger.Logger().Fatalf("Failed to seed owner account: %v", err)
	}

	activityUseCase := usecase.NewActivityUseCase(repos.logs, cfg.ActivityLogRetention)
	portfolioUseCase := usecase.NewPortfolioUseCase(repos.users, repos.applications, repos.logs, wsManager)

	handler.Setup(handler.Dependencies{
		Auth:        usecase.NewAuthUseCase(repos.users, repos.logs, accounts, userIssuer),
		AdminAuth:   adminAuthUseCase,
		User:        usecase.NewUserUseCase(repos.users, repos.logs),
		Catalog:     usecase.NewCatalogUseCase(repos.services, repos.logs),
		Discovery:   usecase.NewDiscoveryUseCase(repos.users, repos.bookings),
		Review:      usecase.NewReviewUseCase(repos.reviews, repos.services, repos.logs),
		Booking:     usecase.NewBookingUseCase(repos.services, repos.bookings, repos.users, repos.logs, gateway, wsManager),
		Direct:      usecase.NewDirectBookingUseCase(cat, repos.bookings, repos.users, repos.logs, gateway, wsManager, cfg.OwnerProviderID, cfg.OwnerProviderName),
		Treasury:    usecase.NewTreasuryUseCase(repos.bookings, repos.logs, gateway, wsManager),
		Application: usecase.NewApplicationUseCase(repos.applications, repos.users, repos.logs, wsManager),
		Portfolio:   portfolioUseCase,
		Book:        usecase.NewBookUseCase(repos.books, repos.logs, wsManager),
		Assistant:   usecase.NewAssistantUseCase(generator, assistantLimiter),
		Activity:    activityUseCase,

		Images:         images,
		WSManager:      wsManager,
		UserVerifier:   userVerifier,
		AdminVerifier:  issuer,
		StorageBackend: cfg.StorageBackend,
		HealthCheck:    repos.health,
	})

	jobs := scheduler.New(ctx)
	mustSchedule(jobs, "activity-retention", cfg.RetentionSchedule, activityUseCase.Prune)
	if repos.store != nil {
		mustSchedule(jobs, "snapshot-flush", cfg.SnapshotFlushSchedule, repos.store.Flush)
	}
	mustSchedule(jobs, "ratelimit-cleanup", "@every 10m", func(context.Context) error {
		removed := assistantLimiter.Cleanup(limiterIdleTimeout) + loginLimiter.Cleanup(limiterIdleTimeout)
		logger.Debug("dropped %d idle rate limiters", removed)
		return nil
	})
	jobs.Start()
	defer jobs.Stop()

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(metrics.Middleware())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(userVerifier)
	adminMiddleware := apimiddleware.NewAdminMiddleware(issuer, adminAuthUseCase)

	router.Setup(e, authMiddleware, adminMiddleware, loginLimiter)
	router.SetupDevRouter(e, cfg.Environment)

	go func() {
		logger.Info("Starting server on port %s...", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger().Fatalf("Server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed: %v", err)
	}
}

func mustSchedule(s *scheduler.Scheduler, name, spec string, job scheduler.Job) {
	if err := s.Add(name, spec, job); err != nil {
		logger.Logger().Fatalf("Invalid schedule %q for %s: %v", spec, name, err)
	}
}
