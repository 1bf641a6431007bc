package handler

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/usecase"
	"skillio/pkg/response"
)

type TreasuryHandler struct {
	treasuryUseCase *usecase.TreasuryUseCase
}

func NewTreasuryHandler(treasuryUseCase *usecase.TreasuryUseCase) *TreasuryHandler {
	return &TreasuryHandler{
		treasuryUseCase: treasuryUseCase,
	}
}

func (h *TreasuryHandler) Summary(c echo.Context) error {
	summary, err := h.treasuryUseCase.Summary(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, summary)
}

func (h *TreasuryHandler) PayoutQueue(c echo.Context) error {
	report, err := h.treasuryUseCase.PayoutQueue(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, report)
}

func (h *TreasuryHandler) ReleasePayout(c echo.Context) error {
	booking, err := h.treasuryUseCase.ReleasePayout(c.Request().Context(), actorFromContext(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, booking)
}

func (h *TreasuryHandler) Refund(c echo.Context) error {
	booking, err := h.treasuryUseCase.Refund(c.Request().Context(), actorFromContext(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, booking)
}
