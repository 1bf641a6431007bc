package repository

import (
	"context"

	"github.com/google/uuid"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/pkg/errors"
)

type snapshotApplicationRepository struct {
	store *Store
}

func NewSnapshotApplicationRepository(store *Store) repository.ApplicationRepository {
	return &snapshotApplicationRepository{store: store}
}

func (r *snapshotApplicationRepository) Upsert(ctx context.Context, app *entity.ProviderApplication) error {
	if app.ID == "" {
		app.ID = uuid.New().String()
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]*entity.ProviderApplication{}, s.apps...)
	replaced := false
	for i, existing := range next {
		if existing.UserID == app.UserID {
			next[i] = clone(app)
			replaced = true
			break
		}
	}
	if !replaced {
		next = append(next, clone(app))
	}

	if err := s.put(ctx, CollectionApplications, next); err != nil {
		return err
	}
	s.apps = next
	return nil
}

func (r *snapshotApplicationRepository) GetByID(ctx context.Context, id string) (*entity.ProviderApplication, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, app := range s.apps {
		if app.ID == id {
			return clone(app), nil
		}
	}
	return nil, errors.NotFound("Application", nil)
}

func (r *snapshotApplicationRepository) GetByUserID(ctx context.Context, userID string) (*entity.ProviderApplication, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, app := range s.apps {
		if app.UserID == userID {
			return clone(app), nil
		}
	}
	return nil, errors.NotFound("Application", nil)
}

func (r *snapshotApplicationRepository) List(ctx context.Context, statuses ...entity.ProviderStatus) ([]*entity.ProviderApplication, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	apps := make([]*entity.ProviderApplication, 0, len(s.apps))
	for _, app := range s.apps {
		if len(statuses) > 0 && !hasProviderStatus(statuses, app.Status) {
			continue
		}
		apps = append(apps, clone(app))
	}
	return apps, nil
}

func hasProviderStatus(statuses []entity.ProviderStatus, status entity.ProviderStatus) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
