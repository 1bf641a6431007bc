package handler

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/usecase"
	"skillio/pkg/errors"
	"skillio/pkg/response"
)

type AssistantHandler struct {
	assistantUseCase *usecase.AssistantUseCase
}

func NewAssistantHandler(assistantUseCase *usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{
		assistantUseCase: assistantUseCase,
	}
}

// callerKey buckets anonymous callers by IP for rate limiting.
func callerKey(c echo.Context) string {
	if uid := getUserIDFromContext(c); uid != "" {
		return "uid:" + uid
	}
	return "ip:" + c.RealIP()
}

func (h *AssistantHandler) SupportChat(c echo.Context) error {
	var req struct {
		UserName string `json:"userName"`
		Question string `json:"question" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	name := req.UserName
	if name == "" {
		name = getStringFromContext(c, "name")
	}
	reply, err := h.assistantUseCase.SupportChat(c.Request().Context(), callerKey(c), name, req.Question)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reply)
}

func (h *AssistantHandler) ServiceDescription(c echo.Context) error {
	var req struct {
		Title    string `json:"title" validate:"required"`
		Category string `json:"category"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	reply, err := h.assistantUseCase.ServiceDescription(c.Request().Context(), callerKey(c), req.Title, req.Category)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reply)
}

func (h *AssistantHandler) BusinessAdvice(c echo.Context) error {
	var req struct {
		Query string `json:"query" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	reply, err := h.assistantUseCase.BusinessAdvice(c.Request().Context(), callerKey(c), req.Query)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reply)
}

func (h *AssistantHandler) ReviewInsights(c echo.Context) error {
	var req struct {
		Reviews []string `json:"reviews" validate:"required,min=1"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	reply, err := h.assistantUseCase.ReviewInsights(c.Request().Context(), callerKey(c), req.Reviews)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reply)
}
