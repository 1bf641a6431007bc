package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/pkg/errors"
)

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) Upsert(ctx context.Context, user *entity.UserProfile) error {
	if user.ID == "" {
		return errors.BadRequest("User id is required", nil)
	}

	_, err := r.client.Collection(usersCollection).Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to save user", err)
	}
	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	doc, err := r.client.Collection(usersCollection).Doc(id).Get(ctx)
	return getDocument[entity.UserProfile](doc, err, "User")
}

func (r *firestoreUserRepository) List(ctx context.Context) ([]*entity.UserProfile, error) {
	return collectDocuments[entity.UserProfile](r.client.Collection(usersCollection).Documents(ctx), "users")
}
