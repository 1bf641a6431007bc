package repository

import (
	"context"

	"skillio/internal/domain/entity"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *entity.AdminAccount) error
	GetByID(ctx context.Context, id string) (*entity.AdminAccount, error)
	GetByUsername(ctx context.Context, username string) (*entity.AdminAccount, error)
	List(ctx context.Context) ([]*entity.AdminAccount, error)
}
