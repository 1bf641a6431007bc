package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/pkg/errors"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) Append(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}

	_, err := r.client.Collection(reviewsCollection).Doc(review.ID).Create(ctx, review)
	if err != nil {
		return errors.Internal("Failed to create review", err)
	}
	return nil
}

func (r *firestoreReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	doc, err := r.client.Collection(reviewsCollection).Doc(id).Get(ctx)
	return getDocument[entity.Review](doc, err, "Review")
}

func (r *firestoreReviewRepository) List(ctx context.Context) ([]*entity.Review, error) {
	query := r.client.Collection(reviewsCollection).OrderBy("date", firestore.Desc)
	return collectDocuments[entity.Review](query.Documents(ctx), "reviews")
}

func (r *firestoreReviewRepository) SetFlags(ctx context.Context, id string, verified, featured bool) (*entity.Review, error) {
	ref := r.client.Collection(reviewsCollection).Doc(id)
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}

	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "isVerified", Value: verified},
		{Path: "isFeatured", Value: featured},
	})
	if err != nil {
		return nil, errors.Internal("Failed to update review", err)
	}
	return r.GetByID(ctx, id)
}
