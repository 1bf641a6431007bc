package handler

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/domain/entity"
	"skillio/internal/usecase"
	"skillio/pkg/errors"
	"skillio/pkg/response"
)

type ApplicationHandler struct {
	applicationUseCase *usecase.ApplicationUseCase
}

func NewApplicationHandler(applicationUseCase *usecase.ApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUseCase: applicationUseCase,
	}
}

type submitApplicationRequest struct {
	UserName         string            `json:"userName"`
	UserEmail        string            `json:"userEmail" validate:"omitempty,email"`
	UserPhone        string            `json:"userPhone"`
	Skills           []string          `json:"skills" validate:"required,min=1"`
	SpecificServices []string          `json:"specificServices"`
	Experience       string            `json:"experience"`
	Availability     string            `json:"availability"`
	RequestedPricing map[string]string `json:"requestedPricing"`
	BlockedDates     []string          `json:"blockedDates" validate:"dive,datestr"`
}

func (h *ApplicationHandler) Submit(c echo.Context) error {
	var req submitApplicationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	app, err := h.applicationUseCase.Submit(c.Request().Context(), getUserIDFromContext(c), usecase.SubmitApplicationInput{
		UserName:         req.UserName,
		UserEmail:        req.UserEmail,
		UserPhone:        req.UserPhone,
		Skills:           req.Skills,
		SpecificServices: req.SpecificServices,
		Experience:       req.Experience,
		Availability:     req.Availability,
		RequestedPricing: req.RequestedPricing,
		BlockedDates:     req.BlockedDates,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, app)
}

func (h *ApplicationHandler) Mine(c echo.Context) error {
	app, err := h.applicationUseCase.Mine(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, app)
}

// List returns the review queue unless ?status= narrows it.
func (h *ApplicationHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		apps []*entity.ProviderApplication
		err  error
	)
	if statuses := c.QueryParams()["status"]; len(statuses) > 0 {
		filter := make([]entity.ProviderStatus, 0, len(statuses))
		for _, s := range statuses {
			filter = append(filter, entity.ProviderStatus(s))
		}
		apps, err = h.applicationUseCase.List(ctx, filter...)
	} else {
		apps, err = h.applicationUseCase.ListPending(ctx)
	}
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, apps)
}

type applicationStatusRequest struct {
	Status   entity.ProviderStatus `json:"status" validate:"required,oneof=applied under_review approved rejected suspended changes_required"`
	Feedback string                `json:"feedback"`
}

func (h *ApplicationHandler) SetStatus(c echo.Context) error {
	var req applicationStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	app, err := h.applicationUseCase.SetStatus(c.Request().Context(), actorFromContext(c), c.Param("id"), req.Status, req.Feedback)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, app)
}
