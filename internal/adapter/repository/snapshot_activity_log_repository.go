package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
)

type snapshotActivityLogRepository struct {
	store *Store
}

func NewSnapshotActivityLogRepository(store *Store) repository.ActivityLogRepository {
	return &snapshotActivityLogRepository{store: store}
}

func (r *snapshotActivityLogRepository) Append(ctx context.Context, log *entity.ActivityLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]*entity.ActivityLog{clone(log)}, s.logs...)
	if err := s.put(ctx, CollectionLogs, next); err != nil {
		return err
	}
	s.logs = next
	return nil
}

func (r *snapshotActivityLogRepository) List(ctx context.Context, offset, limit int) ([]*entity.ActivityLog, int64, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := int64(len(s.logs))
	if offset < 0 {
		offset = 0
	}
	if offset >= len(s.logs) {
		return []*entity.ActivityLog{}, total, nil
	}
	end := len(s.logs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return cloneAll(s.logs[offset:end]), total, nil
}

func (r *snapshotActivityLogRepository) Prune(ctx context.Context, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.logs) <= keep {
		return 0, nil
	}
	removed := len(s.logs) - keep
	next := append([]*entity.ActivityLog{}, s.logs[:keep]...)
	if err := s.put(ctx, CollectionLogs, next); err != nil {
		return 0, err
	}
	s.logs = next
	return removed, nil
}
