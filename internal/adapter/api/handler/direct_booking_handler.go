package handler

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/usecase"
	"skillio/pkg/errors"
	"skillio/pkg/response"
)

type DirectBookingHandler struct {
	directUseCase *usecase.DirectBookingUseCase
}

func NewDirectBookingHandler(directUseCase *usecase.DirectBookingUseCase) *DirectBookingHandler {
	return &DirectBookingHandler{
		directUseCase: directUseCase,
	}
}

type quoteRequest struct {
	TierID   string   `json:"tierId"`
	AddOnIDs []string `json:"addOnIds"`
}

type createDirectBookingRequest struct {
	TierID        string   `json:"tierId" validate:"required"`
	AddOnIDs      []string `json:"addOnIds"`
	Date          string   `json:"date" validate:"required,datestr"`
	StartTime     string   `json:"startTime" validate:"required,clock"`
	Location      string   `json:"location"`
	CustomerName  string   `json:"customerName"`
	CustomerEmail string   `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone string   `json:"customerPhone"`
}

func (h *DirectBookingHandler) GetCatalog(c echo.Context) error {
	return response.Success(c, h.directUseCase.Catalog())
}

func (h *DirectBookingHandler) Quote(c echo.Context) error {
	var req quoteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	quote, err := h.directUseCase.Quote(req.TierID, req.AddOnIDs)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, quote)
}

func (h *DirectBookingHandler) AvailableSlots(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return response.Error(c, errors.BadRequest("date is required", nil))
	}

	slots, err := h.directUseCase.AvailableSlots(c.Request().Context(), date)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"date":  date,
		"slots": slots,
	})
}

func (h *DirectBookingHandler) CreateBooking(c echo.Context) error {
	var req createDirectBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	booking, err := h.directUseCase.CreateBooking(c.Request().Context(), getUserIDFromContext(c), usecase.CreateDirectBookingInput{
		TierID:        req.TierID,
		AddOnIDs:      req.AddOnIDs,
		Date:          req.Date,
		StartTime:     req.StartTime,
		Location:      req.Location,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, booking)
}
