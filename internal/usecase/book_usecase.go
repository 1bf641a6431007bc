package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/internal/domain/service"
	"skillio/pkg/errors"
)

var borrowDurations = map[int]bool{7: true, 14: true, 30: true}

type BookUseCase struct {
	bookRepo repository.BookRepository
	logRepo  repository.ActivityLogRepository
	notifier Notifier
	now      func() time.Time
}

func NewBookUseCase(bookRepo repository.BookRepository, logRepo repository.ActivityLogRepository, notifier Notifier) *BookUseCase {
	return &BookUseCase{
		bookRepo: bookRepo,
		logRepo:  logRepo,
		notifier: notifierOrNop(notifier),
		now:      time.Now,
	}
}

type RequestBookInput struct {
	Title          string
	Author         string
	CustomerName   string
	CustomerEmail  string
	BorrowDuration int
	ImageURL       string
}

func (uc *BookUseCase) Request(ctx context.Context, customerID string, input RequestBookInput) (*entity.Book, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.BadRequest("Book title is required", nil)
	}
	if !borrowDurations[input.BorrowDuration] {
		return nil, errors.BadRequest("Borrow duration must be 7, 14 or 30 days", nil)
	}

	book := &entity.Book{
		ID:             newReference("BOOK-"),
		Title:          input.Title,
		Author:         input.Author,
		CustomerID:     customerID,
		CustomerName:   input.CustomerName,
		CustomerEmail:  input.CustomerEmail,
		Status:         entity.BookRequested,
		BorrowDuration: input.BorrowDuration,
		RequestDate:    uc.now().Format(service.DateLayout),
		ImageURL:       input.ImageURL,
	}
	if err := uc.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}
	recordActivity(ctx, uc.logRepo, fmt.Sprintf("Book request for %s by %s", book.Title, book.CustomerName), book.CustomerName, "")
	return book, nil
}

func (uc *BookUseCase) Mine(ctx context.Context, customerID string) ([]*entity.Book, error) {
	return uc.bookRepo.List(ctx, customerID)
}

func (uc *BookUseCase) List(ctx context.Context) ([]*entity.Book, error) {
	return uc.bookRepo.List(ctx, "")
}

// Advance moves a lending request forward. Lending a book starts its due date clock.
func (uc *BookUseCase) Advance(ctx context.Context, actor Actor, id string, to entity.BookStatus) (*entity.Book, error) {
	book, err := uc.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !service.CanMoveBook(book.Status, to) {
		return nil, errors.InvalidTransition("Book request", string(book.Status), string(to))
	}

	book.Status = to
	if to == entity.BookBorrowed {
		book.DueDate = uc.now().AddDate(0, 0, book.BorrowDuration).Format(service.DateLayout)
	}
	if err := uc.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}

	recordActivity(ctx, uc.logRepo, fmt.Sprintf("Book %s status updated to %s", book.ID, to), actor.label(), "")
	if book.CustomerID != "" {
		uc.notifier.Notify(book.CustomerID, event(entity.EventBookStatus, book))
	}
	return book, nil
}
