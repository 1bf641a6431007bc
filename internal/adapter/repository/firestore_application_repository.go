package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/pkg/errors"
)

type firestoreApplicationRepository struct {
	client *firestore.Client
}

func NewFirestoreApplicationRepository(client *firestore.Client) repository.ApplicationRepository {
	return &firestoreApplicationRepository{
		client: client,
	}
}

// Upsert stores applications keyed by user id, which keeps at most one per user.
func (r *firestoreApplicationRepository) Upsert(ctx context.Context, app *entity.ProviderApplication) error {
	if app.ID == "" {
		app.ID = uuid.New().String()
	}

	_, err := r.client.Collection(applicationsCollection).Doc(app.UserID).Set(ctx, app)
	if err != nil {
		return errors.Internal("Failed to save application", err)
	}
	return nil
}

func (r *firestoreApplicationRepository) GetByID(ctx context.Context, id string) (*entity.ProviderApplication, error) {
	query := r.client.Collection(applicationsCollection).Where("id", "==", id).Limit(1)
	return firstDocument[entity.ProviderApplication](query.Documents(ctx), "Application")
}

func (r *firestoreApplicationRepository) GetByUserID(ctx context.Context, userID string) (*entity.ProviderApplication, error) {
	doc, err := r.client.Collection(applicationsCollection).Doc(userID).Get(ctx)
	return getDocument[entity.ProviderApplication](doc, err, "Application")
}

func (r *firestoreApplicationRepository) List(ctx context.Context, statuses ...entity.ProviderStatus) ([]*entity.ProviderApplication, error) {
	query := r.client.Collection(applicationsCollection).Query
	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, string(s))
		}
		query = query.Where("status", "in", values)
	}
	return collectDocuments[entity.ProviderApplication](query.Documents(ctx), "applications")
}
