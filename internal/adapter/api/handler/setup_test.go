package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"skillio/internal/adapter/api"
	"skillio/internal/adapter/repository"
	"skillio/internal/domain/service"
	"skillio/internal/infrastructure/catalog"
	"skillio/internal/infrastructure/kvstore"
	"skillio/internal/infrastructure/token"
	ws "skillio/internal/infrastructure/websocket"
	"skillio/internal/usecase"
)

type testEnv struct {
	e      *echo.Echo
	deps   Dependencies
	issuer *token.Issuer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	cat := catalog.Default()
	store, err := repository.NewStore(ctx, kvstore.NewMemoryStore(), "test_", repository.Seed{
		Services: cat.Services,
		Profile:  cat.Profile,
	})
	require.NoError(t, err)

	services := repository.NewSnapshotServiceRepository(store)
	bookings := repository.NewSnapshotBookingRepository(store)
	users := repository.NewSnapshotUserRepository(store)
	apps := repository.NewSnapshotApplicationRepository(store)
	reviews := repository.NewSnapshotReviewRepository(store)
	books := repository.NewSnapshotBookRepository(store)
	logs := repository.NewSnapshotActivityLogRepository(store)
	admins := repository.NewSnapshotAdminRepository(store)

	issuer := token.NewIssuer("test-secret", time.Hour)
	gateway := service.NewSimulatedMpesaGateway(0)
	manager := ws.NewManager()

	deps := Dependencies{
		Auth:        usecase.NewAuthUseCase(users, logs, nil, issuer),
		AdminAuth:   usecase.NewAdminAuthUseCase(admins, logs, issuer),
		User:        usecase.NewUserUseCase(users, logs),
		Catalog:     usecase.NewCatalogUseCase(services, logs),
		Discovery:   usecase.NewDiscoveryUseCase(users, bookings),
		Review:      usecase.NewReviewUseCase(reviews, services, logs),
		Booking:     usecase.NewBookingUseCase(services, bookings, users, logs, gateway, manager),
		Direct:      usecase.NewDirectBookingUseCase(cat, bookings, users, logs, gateway, manager, "user_1", "Owner"),
		Treasury:    usecase.NewTreasuryUseCase(bookings, logs, gateway, manager),
		Application: usecase.NewApplicationUseCase(apps, users, logs, manager),
		Portfolio:   usecase.NewPortfolioUseCase(users, apps, logs, manager),
		Book:        usecase.NewBookUseCase(books, logs, manager),
		Assistant:   usecase.NewAssistantUseCase(nil, nil),
		Activity:    usecase.NewActivityUseCase(logs, 100),

		WSManager:      manager,
		UserVerifier:   issuer,
		AdminVerifier:  issuer,
		StorageBackend: "memory",
	}
	Setup(deps)

	e := echo.New()
	e.Validator = api.NewValidator()
	return &testEnv{e: e, deps: deps, issuer: issuer}
}

func (env *testEnv) jsonContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return env.e.NewContext(req, rec), rec
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}
