package repository

import (
	"context"

	"skillio/internal/domain/entity"
)

type ApplicationRepository interface {
	// Upsert replaces the application belonging to app.UserID or appends a new one.
	Upsert(ctx context.Context, app *entity.ProviderApplication) error
	GetByID(ctx context.Context, id string) (*entity.ProviderApplication, error)
	GetByUserID(ctx context.Context, userID string) (*entity.ProviderApplication, error)
	List(ctx context.Context, statuses ...entity.ProviderStatus) ([]*entity.ProviderApplication, error)
}
