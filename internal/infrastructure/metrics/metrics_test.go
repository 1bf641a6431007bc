package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorders(t *testing.T) {
	before := testutil.ToFloat64(bookingsCreated.WithLabelValues("direct"))
	RecordBookingCreated("direct")
	assert.Equal(t, before+1, testutil.ToFloat64(bookingsCreated.WithLabelValues("direct")))

	beforeEscrow := testutil.ToFloat64(escrowVolume.WithLabelValues("capture"))
	RecordEscrow("capture", 2500)
	RecordEscrow("capture", 0)
	assert.Equal(t, beforeEscrow+2500, testutil.ToFloat64(escrowVolume.WithLabelValues("capture")))
}

func TestMiddlewareAndHandler(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/health", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/metrics", echo.WrapHandler(Handler()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `skillio_http_requests_total{method="GET",route="/health",status="200"}`)
}
