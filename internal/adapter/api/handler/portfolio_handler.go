package handler

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/usecase"
	"skillio/pkg/errors"
	"skillio/pkg/response"
)

type PortfolioHandler struct {
	portfolioUseCase *usecase.PortfolioUseCase
}

func NewPortfolioHandler(portfolioUseCase *usecase.PortfolioUseCase) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioUseCase: portfolioUseCase,
	}
}

type portfolioReviewRequest struct {
	Feedback string `json:"feedback"`
}

func (h *PortfolioHandler) ListSubmitted(c echo.Context) error {
	users, err := h.portfolioUseCase.ListSubmitted(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, users)
}

func (h *PortfolioHandler) Approve(c echo.Context) error {
	var req portfolioReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	user, err := h.portfolioUseCase.Approve(c.Request().Context(), actorFromContext(c), c.Param("userId"), req.Feedback)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *PortfolioHandler) RequestChanges(c echo.Context) error {
	var req portfolioReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	user, err := h.portfolioUseCase.RequestChanges(c.Request().Context(), actorFromContext(c), c.Param("userId"), req.Feedback)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}
