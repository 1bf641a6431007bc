package usecase

import (
	"context"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/pkg/logger"
)

type ActivityUseCase struct {
	logRepo   repository.ActivityLogRepository
	retention int
}

func NewActivityUseCase(logRepo repository.ActivityLogRepository, retention int) *ActivityUseCase {
	return &ActivityUseCase{
		logRepo:   logRepo,
		retention: retention,
	}
}

func (uc *ActivityUseCase) List(ctx context.Context, page, pageSize int) ([]*entity.ActivityLog, int64, error) {
	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	return uc.logRepo.List(ctx, offset, pageSize)
}

// Prune enforces the retention window. A non-positive retention keeps everything.
func (uc *ActivityUseCase) Prune(ctx context.Context) error {
	if uc.retention <= 0 {
		return nil
	}
	removed, err := uc.logRepo.Prune(ctx, uc.retention)
	if err != nil {
		return err
	}
	if removed > 0 {
		logger.Info("pruned %d activity log entries, keeping %d", removed, uc.retention)
	}
	return nil
}

// recordActivity appends an audit entry. Failures are logged, never returned.
func recordActivity(ctx context.Context, repo repository.ActivityLogRepository, action, user, serviceID string) {
	if repo == nil {
		return
	}
	if user == "" {
		user = entity.SystemActor
	}
	err := repo.Append(ctx, &entity.ActivityLog{
		Action:    action,
		User:      user,
		ServiceID: serviceID,
	})
	if err != nil {
		logger.LogActivityError(action, err)
	}
}
