package repository

import (
	"context"

	"skillio/internal/domain/entity"
)

type ActivityLogRepository interface {
	Append(ctx context.Context, log *entity.ActivityLog) error
	// List returns entries newest first along with the total count.
	List(ctx context.Context, offset, limit int) ([]*entity.ActivityLog, int64, error)
	// Prune drops everything but the newest keep entries and reports how many were removed.
	Prune(ctx context.Context, keep int) (int, error)
}
