package repository

import (
	"context"

	"skillio/internal/domain/entity"
)

type BookRepository interface {
	Create(ctx context.Context, book *entity.Book) error
	GetByID(ctx context.Context, id string) (*entity.Book, error)
	// List returns requests newest first; an empty customerID lists every request.
	List(ctx context.Context, customerID string) ([]*entity.Book, error)
	Update(ctx context.Context, book *entity.Book) error
}
