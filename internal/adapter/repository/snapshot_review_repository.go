package repository

import (
	"context"

	"github.com/google/uuid"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/pkg/errors"
)

type snapshotReviewRepository struct {
	store *Store
}

func NewSnapshotReviewRepository(store *Store) repository.ReviewRepository {
	return &snapshotReviewRepository{store: store}
}

func (r *snapshotReviewRepository) Append(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]*entity.Review{clone(review)}, s.reviews...)
	if err := s.put(ctx, CollectionReviews, next); err != nil {
		return err
	}
	s.reviews = next
	return nil
}

func (r *snapshotReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, review := range s.reviews {
		if review.ID == id {
			return clone(review), nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *snapshotReviewRepository) List(ctx context.Context) ([]*entity.Review, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneAll(s.reviews), nil
}

func (r *snapshotReviewRepository) SetFlags(ctx context.Context, id string, verified, featured bool) (*entity.Review, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.reviews {
		if existing.ID != id {
			continue
		}
		updated := clone(existing)
		updated.IsVerified = verified
		updated.IsFeatured = featured

		next := append([]*entity.Review{}, s.reviews...)
		next[i] = updated
		if err := s.put(ctx, CollectionReviews, next); err != nil {
			return nil, err
		}
		s.reviews = next
		return clone(updated), nil
	}
	return nil, errors.NotFound("Review", nil)
}
