package handler

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/usecase"
	"skillio/pkg/errors"
	"skillio/pkg/response"
)

// DevTokenHandler signs user tokens without a password. It is only routed in development.
type DevTokenHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewDevTokenHandler(authUseCase *usecase.AuthUseCase) *DevTokenHandler {
	return &DevTokenHandler{
		authUseCase: authUseCase,
	}
}

func (h *DevTokenHandler) GenerateUserToken(c echo.Context) error {
	var req struct {
		UserID string `json:"userId" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	tok, expiresAt, err := h.authUseCase.IssueToken(c.Request().Context(), req.UserID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"token":     tok,
		"expiresAt": expiresAt,
		"userId":    req.UserID,
	})
}
