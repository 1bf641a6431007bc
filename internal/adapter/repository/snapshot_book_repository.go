package repository

import (
	"context"

	"github.com/google/uuid"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/pkg/errors"
)

type snapshotBookRepository struct {
	store *Store
}

func NewSnapshotBookRepository(store *Store) repository.BookRepository {
	return &snapshotBookRepository{store: store}
}

func (r *snapshotBookRepository) Create(ctx context.Context, book *entity.Book) error {
	if book.ID == "" {
		book.ID = uuid.New().String()
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	next := append([]*entity.Book{clone(book)}, s.books...)
	if err := s.put(ctx, CollectionBooks, next); err != nil {
		return err
	}
	s.books = next
	return nil
}

func (r *snapshotBookRepository) GetByID(ctx context.Context, id string) (*entity.Book, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, book := range s.books {
		if book.ID == id {
			return clone(book), nil
		}
	}
	return nil, errors.NotFound("Book request", nil)
}

func (r *snapshotBookRepository) List(ctx context.Context, customerID string) ([]*entity.Book, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	books := make([]*entity.Book, 0, len(s.books))
	for _, book := range s.books {
		if customerID != "" && book.CustomerID != customerID {
			continue
		}
		books = append(books, clone(book))
	}
	return books, nil
}

func (r *snapshotBookRepository) Update(ctx context.Context, book *entity.Book) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.books {
		if existing.ID != book.ID {
			continue
		}
		next := append([]*entity.Book{}, s.books...)
		next[i] = clone(book)
		if err := s.put(ctx, CollectionBooks, next); err != nil {
			return err
		}
		s.books = next
		return nil
	}
	return errors.NotFound("Book request", nil)
}
