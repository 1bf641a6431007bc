package handler

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/domain/entity"
	"skillio/internal/usecase"
	"skillio/pkg/errors"
	"skillio/pkg/response"
)

type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

type serviceRequest struct {
	Title           string          `json:"title" validate:"required"`
	Description     string          `json:"description"`
	Price           string          `json:"price" validate:"required"`
	DurationMinutes int             `json:"duration" validate:"min=0"`
	Category        entity.Category `json:"category" validate:"required,category"`
	ImageURL        string          `json:"imageUrl" validate:"omitempty,url"`
	IsActive        bool            `json:"isActive"`
	MaxJobsPerDay   *int            `json:"maxJobsPerDay" validate:"omitempty,min=0"`
	BlockedDates    []string        `json:"blockedDates" validate:"dive,datestr"`
}

func (r serviceRequest) input() usecase.ServiceInput {
	return usecase.ServiceInput{
		Title:           r.Title,
		Description:     r.Description,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		Category:        r.Category,
		ImageURL:        r.ImageURL,
		IsActive:        r.IsActive,
		MaxJobsPerDay:   r.MaxJobsPerDay,
		BlockedDates:    r.BlockedDates,
	}
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	return response.Success(c, h.catalogUseCase.Categories())
}

func (h *CatalogHandler) ListServices(c echo.Context) error {
	services, err := h.catalogUseCase.ListServices(c.Request().Context(), isAdminRequest(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, services)
}

func (h *CatalogHandler) GetService(c echo.Context) error {
	svc, err := h.catalogUseCase.GetService(c.Request().Context(), c.Param("id"), isAdminRequest(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, svc)
}

func (h *CatalogHandler) CreateService(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	svc, err := h.catalogUseCase.CreateService(c.Request().Context(), actorFromContext(c), req.input())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, svc)
}

func (h *CatalogHandler) UpdateService(c echo.Context) error {
	var req serviceRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	svc, err := h.catalogUseCase.UpdateService(c.Request().Context(), actorFromContext(c), c.Param("id"), req.input())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, svc)
}

func (h *CatalogHandler) SetActive(c echo.Context) error {
	var req struct {
		IsActive bool `json:"isActive"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	svc, err := h.catalogUseCase.SetActive(c.Request().Context(), actorFromContext(c), c.Param("id"), req.IsActive)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, svc)
}

func (h *CatalogHandler) AssignProvider(c echo.Context) error {
	var req struct {
		ProviderID string `json:"providerId" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	svc, err := h.catalogUseCase.AssignProvider(c.Request().Context(), actorFromContext(c), c.Param("id"), req.ProviderID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, svc)
}
