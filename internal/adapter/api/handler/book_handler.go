package handler

import (
	"github.com/labstack/echo/v4"

	"skillio/internal/domain/entity"
	"skillio/internal/usecase"
	"skillio/pkg/errors"
	"skillio/pkg/response"
)

type BookHandler struct {
	bookUseCase *usecase.BookUseCase
}

func NewBookHandler(bookUseCase *usecase.BookUseCase) *BookHandler {
	return &BookHandler{
		bookUseCase: bookUseCase,
	}
}

type requestBookRequest struct {
	Title          string `json:"title" validate:"required"`
	Author         string `json:"author"`
	CustomerName   string `json:"customerName"`
	CustomerEmail  string `json:"customerEmail" validate:"omitempty,email"`
	BorrowDuration int    `json:"borrowDuration" validate:"required,oneof=7 14 30"`
	ImageURL       string `json:"imageUrl" validate:"omitempty,url"`
}

func (h *BookHandler) Request(c echo.Context) error {
	var req requestBookRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	book, err := h.bookUseCase.Request(c.Request().Context(), getUserIDFromContext(c), usecase.RequestBookInput{
		Title:          req.Title,
		Author:         req.Author,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		BorrowDuration: req.BorrowDuration,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, book)
}

func (h *BookHandler) Mine(c echo.Context) error {
	books, err := h.bookUseCase.Mine(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, books)
}

func (h *BookHandler) List(c echo.Context) error {
	books, err := h.bookUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, books)
}

func (h *BookHandler) Advance(c echo.Context) error {
	var req struct {
		Status entity.BookStatus `json:"status" validate:"required,oneof=Requested Approved Purchased Borrowed Returned"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	book, err := h.bookUseCase.Advance(c.Request().Context(), actorFromContext(c), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, book)
}
