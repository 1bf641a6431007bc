package repository

import (
	"context"

	"github.com/google/uuid"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/pkg/errors"
)

type snapshotServiceRepository struct {
	store *Store
}

func NewSnapshotServiceRepository(store *Store) repository.ServiceRepository {
	return &snapshotServiceRepository{store: store}
}

func (r *snapshotServiceRepository) Create(ctx context.Context, service *entity.Service) error {
	if service.ID == "" {
		service.ID = uuid.New().String()
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.services {
		if existing.ID == service.ID {
			return errors.Conflict("Service already exists")
		}
	}

	next := append(append([]*entity.Service{}, s.services...), clone(service))
	if err := s.put(ctx, CollectionServices, next); err != nil {
		return err
	}
	s.services = next
	return nil
}

func (r *snapshotServiceRepository) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, service := range s.services {
		if service.ID == id {
			return clone(service), nil
		}
	}
	return nil, errors.NotFound("Service", nil)
}

func (r *snapshotServiceRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Service, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	services := make([]*entity.Service, 0, len(s.services))
	for _, service := range s.services {
		if activeOnly && !service.IsActive {
			continue
		}
		services = append(services, clone(service))
	}
	return services, nil
}

func (r *snapshotServiceRepository) Update(ctx context.Context, service *entity.Service) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.services {
		if existing.ID != service.ID {
			continue
		}
		next := append([]*entity.Service{}, s.services...)
		next[i] = clone(service)
		if err := s.put(ctx, CollectionServices, next); err != nil {
			return err
		}
		s.services = next
		return nil
	}
	return errors.NotFound("Service", nil)
}
