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

type firestoreBookingRepository struct {
	client *firestore.Client
}

func NewFirestoreBookingRepository(client *firestore.Client) repository.BookingRepository {
	return &firestoreBookingRepository{
		client: client,
	}
}

func (r *firestoreBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}

	_, err := r.client.Collection(bookingsCollection).Doc(booking.ID).Set(ctx, booking)
	if err != nil {
		return errors.Internal("Failed to create booking", err)
	}
	return nil
}

func (r *firestoreBookingRepository) CreateIfSlotFree(ctx context.Context, booking *entity.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}

	col := r.client.Collection(bookingsCollection)
	slot := col.
		Where("providerId", "==", booking.ProviderID).
		Where("date", "==", booking.Date).
		Where("startTime", "==", booking.StartTime)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		existing, err := collectDocuments[entity.Booking](tx.Documents(slot), "bookings")
		if err != nil {
			return err
		}
		for _, b := range existing {
			if b.HoldsSlot() {
				return errors.Conflict("Time slot is already booked")
			}
		}
		return tx.Create(col.Doc(booking.ID), booking)
	})
	if err != nil {
		if errors.Is(err, "CONFLICT") {
			return err
		}
		return errors.Internal("Failed to create booking", err)
	}
	return nil
}

func (r *firestoreBookingRepository) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	doc, err := r.client.Collection(bookingsCollection).Doc(id).Get(ctx)
	return getDocument[entity.Booking](doc, err, "Booking")
}

// List applies equality filters server side and orders in memory so no composite index is needed.
func (r *firestoreBookingRepository) List(ctx context.Context, filter repository.BookingFilter) ([]*entity.Booking, error) {
	query := r.client.Collection(bookingsCollection).Query
	if filter.CustomerID != "" {
		query = query.Where("customerId", "==", filter.CustomerID)
	}
	if filter.ProviderID != "" {
		query = query.Where("providerId", "==", filter.ProviderID)
	}
	if filter.Date != "" {
		query = query.Where("date", "==", filter.Date)
	}

	all, err := collectDocuments[entity.Booking](query.Documents(ctx), "bookings")
	if err != nil {
		return nil, err
	}

	bookings := make([]*entity.Booking, 0, len(all))
	for _, b := range all {
		if filter.Matches(b) {
			bookings = append(bookings, b)
		}
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

func (r *firestoreBookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	_, err := r.client.Collection(bookingsCollection).Doc(booking.ID).Set(ctx, booking)
	if err != nil {
		return errors.Internal("Failed to update booking", err)
	}
	return nil
}
