package repository

import (
	"context"

	"skillio/internal/domain/entity"
)

type ReviewRepository interface {
	Append(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	// List returns reviews newest first.
	List(ctx context.Context) ([]*entity.Review, error)
	SetFlags(ctx context.Context, id string, verified, featured bool) (*entity.Review, error)
}
