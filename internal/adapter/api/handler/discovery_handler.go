package handler

import (
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"skillio/internal/domain/entity"
	"skillio/internal/usecase"
	"skillio/pkg/errors"
	"skillio/pkg/response"
)

type DiscoveryHandler struct {
	discoveryUseCase *usecase.DiscoveryUseCase
}

func NewDiscoveryHandler(discoveryUseCase *usecase.DiscoveryUseCase) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryUseCase: discoveryUseCase,
	}
}

func (h *DiscoveryHandler) TaskersByCategory(c echo.Context) error {
	// Category names contain spaces and "&", so clients send them escaped.
	category, err := url.PathUnescape(c.Param("category"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid category", err))
	}

	taskers, err := h.discoveryUseCase.TaskersByCategory(c.Request().Context(), entity.Category(category))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, taskers)
}

// PublicProfile accepts ?month=YYYY-MM; the current month is used when absent.
func (h *DiscoveryHandler) PublicProfile(c echo.Context) error {
	var year int
	var month time.Month
	if raw := c.QueryParam("month"); raw != "" {
		t, err := time.Parse("2006-01", raw)
		if err != nil {
			return response.Error(c, errors.BadRequest("month must look like 2006-01", err))
		}
		year, month = t.Year(), t.Month()
	}

	profile, err := h.discoveryUseCase.PublicProfile(c.Request().Context(), c.Param("id"), year, month)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}
