package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"skillio/internal/usecase"
	"skillio/pkg/errors"
	"skillio/pkg/response"
	"skillio/pkg/utils"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	ServiceID    string `json:"serviceId"`
	ServiceTitle string `json:"serviceTitle"`
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Comment      string `json:"comment" validate:"required"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	// Anonymous reviews are allowed; uid is empty then.
	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), getUserIDFromContext(c), usecase.CreateReviewInput{
		ServiceID:    req.ServiceID,
		ServiceTitle: req.ServiceTitle,
		CustomerName: req.CustomerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

func (h *ReviewHandler) GetReviews(c echo.Context) error {
	featuredOnly := false
	if raw := c.QueryParam("featured"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return response.Error(c, errors.BadRequest("Invalid featured value", err))
		}
		featuredOnly = v
	}

	pagination := utils.GetPaginationParams(c)
	reviews, total, err := h.reviewUseCase.ListReviews(c.Request().Context(), featuredOnly, pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, reviews, total, pagination.Page, pagination.PageSize)
}

func (h *ReviewHandler) SetFlags(c echo.Context) error {
	var req struct {
		Verified bool `json:"verified"`
		Featured bool `json:"featured"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	review, err := h.reviewUseCase.SetFlags(c.Request().Context(), actorFromContext(c), c.Param("id"), req.Verified, req.Featured)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, review)
}
