package repository

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/pkg/errors"
)

type firestoreAdminRepository struct {
	client *firestore.Client
}

func NewFirestoreAdminRepository(client *firestore.Client) repository.AdminRepository {
	return &firestoreAdminRepository{
		client: client,
	}
}

func (r *firestoreAdminRepository) Create(ctx context.Context, admin *entity.AdminAccount) error {
	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}

	if _, err := r.GetByUsername(ctx, admin.Username); err == nil {
		return errors.Conflict("Username is already taken")
	} else if !errors.Is(err, "NOT_FOUND") {
		return err
	}

	_, err := r.client.Collection(adminsCollection).Doc(admin.ID).Set(ctx, admin)
	if err != nil {
		return errors.Internal("Failed to create admin", err)
	}
	return nil
}

func (r *firestoreAdminRepository) GetByID(ctx context.Context, id string) (*entity.AdminAccount, error) {
	doc, err := r.client.Collection(adminsCollection).Doc(id).Get(ctx)
	return getDocument[entity.AdminAccount](doc, err, "Admin")
}

// GetByUsername relies on usernames being stored lower case.
func (r *firestoreAdminRepository) GetByUsername(ctx context.Context, username string) (*entity.AdminAccount, error) {
	query := r.client.Collection(adminsCollection).Where("username", "==", strings.ToLower(username)).Limit(1)
	return firstDocument[entity.AdminAccount](query.Documents(ctx), "Admin")
}

func (r *firestoreAdminRepository) List(ctx context.Context) ([]*entity.AdminAccount, error) {
	return collectDocuments[entity.AdminAccount](r.client.Collection(adminsCollection).Documents(ctx), "admins")
}
