package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/pkg/errors"
)

type snapshotAdminRepository struct {
	store *Store
}

func NewSnapshotAdminRepository(store *Store) repository.AdminRepository {
	return &snapshotAdminRepository{store: store}
}

func (r *snapshotAdminRepository) Create(ctx context.Context, admin *entity.AdminAccount) error {
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.admins {
		if strings.EqualFold(existing.Username, admin.Username) {
			return errors.Conflict("Username is already taken")
		}
	}

	next := append(append([]*entity.AdminAccount{}, s.admins...), clone(admin))
	if err := s.put(ctx, CollectionAdmins, next); err != nil {
		return err
	}
	s.admins = next
	return nil
}

func (r *snapshotAdminRepository) GetByID(ctx context.Context, id string) (*entity.AdminAccount, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, admin := range s.admins {
		if admin.ID == id {
			return clone(admin), nil
		}
	}
	return nil, errors.NotFound("Admin", nil)
}

func (r *snapshotAdminRepository) GetByUsername(ctx context.Context, username string) (*entity.AdminAccount, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, admin := range s.admins {
		if strings.EqualFold(admin.Username, username) {
			return clone(admin), nil
		}
	}
	return nil, errors.NotFound("Admin", nil)
}

func (r *snapshotAdminRepository) List(ctx context.Context) ([]*entity.AdminAccount, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAll(s.admins), nil
}
