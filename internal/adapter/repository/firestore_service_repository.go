package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/pkg/errors"
)

type firestoreServiceRepository struct {
	client *firestore.Client
}

func NewFirestoreServiceRepository(client *firestore.Client) repository.ServiceRepository {
	return &firestoreServiceRepository{
		client: client,
	}
}

func (r *firestoreServiceRepository) Create(ctx context.Context, service *entity.Service) error {
	if service.ID == "" {
		service.ID = uuid.New().String()
	}

	_, err := r.client.Collection(servicesCollection).Doc(service.ID).Create(ctx, service)
	if err != nil {
		return errors.Internal("Failed to create service", err)
	}
	return nil
}

func (r *firestoreServiceRepository) GetByID(ctx context.Context, id string) (*entity.Service, error) {
	doc, err := r.client.Collection(servicesCollection).Doc(id).Get(ctx)
	return getDocument[entity.Service](doc, err, "Service")
}

func (r *firestoreServiceRepository) List(ctx context.Context, activeOnly bool) ([]*entity.Service, error) {
	query := r.client.Collection(servicesCollection).Query
	if activeOnly {
		query = query.Where("isActive", "==", true)
	}
	return collectDocuments[entity.Service](query.Documents(ctx), "services")
}

func (r *firestoreServiceRepository) Update(ctx context.Context, service *entity.Service) error {
	ref := r.client.Collection(servicesCollection).Doc(service.ID)
	if _, err := r.GetByID(ctx, service.ID); err != nil {
		return err
	}

	if _, err := ref.Set(ctx, service); err != nil {
		return errors.Internal("Failed to update service", err)
	}
	return nil
}
