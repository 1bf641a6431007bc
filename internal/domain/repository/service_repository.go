package repository

import (
	"context"

	"skillio/internal/domain/entity"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, id string) (*entity.Service, error)
	List(ctx context.Context, activeOnly bool) ([]*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
}
