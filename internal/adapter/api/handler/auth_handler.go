package handler

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/domain/entity"
	"skillio/internal/usecase"
	"skillio/pkg/errors"
	"skillio/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	Name     string          `json:"name" validate:"required,min=2"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8"`
	Phone    string          `json:"phone"`
	City     string          `json:"city"`
	Role     entity.UserRole `json:"role" validate:"omitempty,oneof=Student Parent Customer"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		City:     req.City,
		Role:     req.Role,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, result)
}
