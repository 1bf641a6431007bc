package repository

import (
	"context"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/pkg/errors"
)

type snapshotUserRepository struct {
	store *Store
}

func NewSnapshotUserRepository(store *Store) repository.UserRepository {
	return &snapshotUserRepository{store: store}
}

// Upsert also refreshes the owner profile document when the owner is written.
func (r *snapshotUserRepository) Upsert(ctx context.Context, user *entity.UserProfile) error {
	if user.ID == "" {
		return errors.BadRequest("User id is required", nil)
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]*entity.UserProfile{}, s.users...)
	if i := indexOfUser(next, user.ID); i >= 0 {
		next[i] = clone(user)
	} else {
		next = append(next, clone(user))
	}

	if err := s.put(ctx, CollectionUsers, next); err != nil {
		return err
	}
	s.users = next

	if s.profile != nil && s.profile.ID == user.ID {
		profile := clone(user)
		if err := s.put(ctx, CollectionProfile, profile); err != nil {
			return err
		}
		s.profile = profile
	}
	return nil
}

func (r *snapshotUserRepository) GetByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := indexOfUser(s.users, id); i >= 0 {
		return clone(s.users[i]), nil
	}
	if s.profile != nil && s.profile.ID == id {
		return clone(s.profile), nil
	}
	return nil, errors.NotFound("User", nil)
}

func (r *snapshotUserRepository) List(ctx context.Context) ([]*entity.UserProfile, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAll(s.users), nil
}
