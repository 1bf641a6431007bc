package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/pkg/errors"
)

type firestoreBookRepository struct {
	client *firestore.Client
}

func NewFirestoreBookRepository(client *firestore.Client) repository.BookRepository {
	return &firestoreBookRepository{
		client: client,
	}
}

func (r *firestoreBookRepository) Create(ctx context.Context, book *entity.Book) error {
	if book.ID == "" {
		book.ID = uuid.New().String()
	}

	_, err := r.client.Collection(booksCollection).Doc(book.ID).Set(ctx, book)
	if err != nil {
		return errors.Internal("Failed to create book request", err)
	}
	return nil
}

func (r *firestoreBookRepository) GetByID(ctx context.Context, id string) (*entity.Book, error) {
	doc, err := r.client.Collection(booksCollection).Doc(id).Get(ctx)
	return getDocument[entity.Book](doc, err, "Book request")
}

func (r *firestoreBookRepository) List(ctx context.Context, customerID string) ([]*entity.Book, error) {
	query := r.client.Collection(booksCollection).Query
	if customerID != "" {
		query = query.Where("customerId", "==", customerID)
	}

	books, err := collectDocuments[entity.Book](query.Documents(ctx), "book requests")
	if err != nil {
		return nil, err
	}
	sort.SliceStable(books, func(i, j int) bool {
		return books[i].RequestDate > books[j].RequestDate
	})
	return books, nil
}

func (r *firestoreBookRepository) Update(ctx context.Context, book *entity.Book) error {
	_, err := r.client.Collection(booksCollection).Doc(book.ID).Set(ctx, book)
	if err != nil {
		return errors.Internal("Failed to update book request", err)
	}
	return nil
}
