package repository

import (
	"context"

	"github.com/google/uuid"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/pkg/errors"
)

type snapshotBookingRepository struct {
	store *Store
}

func NewSnapshotBookingRepository(store *Store) repository.BookingRepository {
	return &snapshotBookingRepository{store: store}
}

func (r *snapshotBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return r.insertLocked(ctx, booking)
}

func (r *snapshotBookingRepository) CreateIfSlotFree(ctx context.Context, booking *entity.Booking) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.bookings {
		if existing.ProviderID == booking.ProviderID &&
			existing.Date == booking.Date &&
			existing.StartTime == booking.StartTime &&
			existing.HoldsSlot() {
			return errors.Conflict("Time slot is already booked")
		}
	}
	return r.insertLocked(ctx, booking)
}

func (r *snapshotBookingRepository) insertLocked(ctx context.Context, booking *entity.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	s := r.store
	next := append([]*entity.Booking{clone(booking)}, s.bookings...)
	if err := s.put(ctx, CollectionBookings, next); err != nil {
		return err
	}
	s.bookings = next
	return nil
}

func (r *snapshotBookingRepository) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, booking := range s.bookings {
		if booking.ID == id {
			return clone(booking), nil
		}
	}
	return nil, errors.NotFound("Booking", nil)
}

func (r *snapshotBookingRepository) List(ctx context.Context, filter repository.BookingFilter) ([]*entity.Booking, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]*entity.Booking, 0)
	for _, booking := range s.bookings {
		if filter.Matches(booking) {
			bookings = append(bookings, clone(booking))
		}
	}
	return bookings, nil
}

func (r *snapshotBookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.bookings {
		if existing.ID != booking.ID {
			continue
		}
		next := append([]*entity.Booking{}, s.bookings...)
		next[i] = clone(booking)
		if err := s.put(ctx, CollectionBookings, next); err != nil {
			return err
		}
		s.bookings = next
		return nil
	}
	return errors.NotFound("Booking", nil)
}
