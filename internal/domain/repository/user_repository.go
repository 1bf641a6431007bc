package repository

import (
	"context"

	"skillio/internal/domain/entity"
)

type UserRepository interface {
	// Upsert inserts or replaces the profile keyed by its id.
	Upsert(ctx context.Context, user *entity.UserProfile) error
	GetByID(ctx context.Context, id string) (*entity.UserProfile, error)
	List(ctx context.Context) ([]*entity.UserProfile, error)
}
