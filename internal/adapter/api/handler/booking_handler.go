package handler

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/domain/entity"
	"skillio/internal/usecase"
	"skillio/pkg/errors"
	"skillio/pkg/response"
)

type BookingHandler struct {
	bookingUseCase *usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase *usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

type createBookingRequest struct {
	ServiceID     string             `json:"serviceId" validate:"required"`
	ProviderID    string             `json:"providerId"`
	Date          string             `json:"date" validate:"required,datestr"`
	StartTime     string             `json:"startTime" validate:"omitempty,clock"`
	Type          entity.BookingType `json:"type" validate:"omitempty,oneof=Online In-Person"`
	Message       string             `json:"message"`
	Location      string             `json:"location"`
	CustomerName  string             `json:"customerName"`
	CustomerEmail string             `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone string             `json:"customerPhone"`
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	booking, err := h.bookingUseCase.CreateBooking(c.Request().Context(), getUserIDFromContext(c), usecase.CreateBookingInput{
		ServiceID:     req.ServiceID,
		ProviderID:    req.ProviderID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		Type:          req.Type,
		Message:       req.Message,
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

func (h *BookingHandler) GetBooking(c echo.Context) error {
	booking, err := h.bookingUseCase.GetBooking(c.Request().Context(), actorFromContext(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, booking)
}

func (h *BookingHandler) ListMine(c echo.Context) error {
	bookings, err := h.bookingUseCase.ListCustomerBookings(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, bookings)
}

func (h *BookingHandler) ListAssigned(c echo.Context) error {
	bookings, err := h.bookingUseCase.ListProviderBookings(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, bookings)
}

func (h *BookingHandler) Earnings(c echo.Context) error {
	earnings, err := h.bookingUseCase.ProviderEarnings(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, earnings)
}

type updateBookingStatusRequest struct {
	Status entity.BookingStatus `json:"status" validate:"required"`
}

// UpdateStatus serves both the user and admin routes; the actor decides what is allowed.
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	var req updateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	booking, err := h.bookingUseCase.UpdateStatus(c.Request().Context(), actorFromContext(c), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, booking)
}

func (h *BookingHandler) AdminList(c echo.Context) error {
	bookings, err := h.bookingUseCase.AdminListBookings(c.Request().Context(), usecase.AdminBookingFilter{
		Date:    c.QueryParam("date"),
		Service: c.QueryParam("service"),
		Tasker:  c.QueryParam("tasker"),
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, bookings)
}
