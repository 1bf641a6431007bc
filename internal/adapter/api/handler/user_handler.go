package handler

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/domain/entity"
	"skillio/internal/usecase"
	"skillio/pkg/errors"
	"skillio/pkg/response"
)

type UserHandler struct {
	userUseCase      *usecase.UserUseCase
	portfolioUseCase *usecase.PortfolioUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase, portfolioUseCase *usecase.PortfolioUseCase) *UserHandler {
	return &UserHandler{
		userUseCase:      userUseCase,
		portfolioUseCase: portfolioUseCase,
	}
}

type updateProfileRequest struct {
	Name        string                 `json:"name" validate:"required"`
	Email       string                 `json:"email" validate:"omitempty,email"`
	Phone       string                 `json:"phone"`
	Address     string                 `json:"address"`
	City        string                 `json:"city"`
	Role        entity.UserRole        `json:"role" validate:"omitempty,oneof=Student Parent Customer"`
	Bio         string                 `json:"bio"`
	Preferences *entity.Preferences    `json:"preferences"`
	Notes       *entity.HouseholdNotes `json:"notes"`
}

func (h *UserHandler) GetMe(c echo.Context) error {
	user, err := h.userUseCase.GetProfile(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) UpdateMe(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), getUserIDFromContext(c), usecase.UpdateProfileInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		Role:        req.Role,
		Bio:         req.Bio,
		Preferences: req.Preferences,
		Notes:       req.Notes,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) UpdateTaskerSettings(c echo.Context) error {
	var req entity.TaskerProfileSettings
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	user, err := h.portfolioUseCase.UpdateSettings(c.Request().Context(), getUserIDFromContext(c), req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) SubmitTaskerSettings(c echo.Context) error {
	user, err := h.portfolioUseCase.Submit(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUseCase.ListUsers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, users)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUseCase.GetProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) SetSuspended(c echo.Context) error {
	var req struct {
		Suspended bool `json:"suspended"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	user, err := h.userUseCase.SetSuspended(c.Request().Context(), actorFromContext(c), c.Param("id"), req.Suspended)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}
