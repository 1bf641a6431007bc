package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthCheck probes the storage backend.
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	backend string
	check   HealthCheck
}

func NewHealthHandler(backend string, check HealthCheck) *HealthHandler {
	return &HealthHandler{
		backend: backend,
		check:   check,
	}
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	status := map[string]string{
		"status":  "Server is running",
		"backend": h.backend,
		"time":    time.Now().Format(time.RFC3339),
	}

	if h.check != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := h.check(ctx); err != nil {
			status["status"] = "Storage backend unavailable"
			status["error"] = err.Error()
			return c.JSON(http.StatusServiceUnavailable, status)
		}
	}

	return c.JSON(http.StatusOK, status)
}
