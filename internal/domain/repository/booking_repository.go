package repository

import (
	"context"

	"skillio/internal/domain/entity"
)

// BookingFilter narrows List results. Zero values match everything.
type BookingFilter struct {
	CustomerID string
	ProviderID string
	Date       string
	Statuses   []entity.BookingStatus
}

func (f BookingFilter) Matches(b *entity.Booking) bool {
	if f.CustomerID != "" && b.CustomerID != f.CustomerID {
		return false
	}
	if f.ProviderID != "" && b.ProviderID != f.ProviderID {
		return false
	}
	if f.Date != "" && b.Date != f.Date {
		return false
	}
	if len(f.Statuses) > 0 {
		for _, s := range f.Statuses {
			if b.Status == s {
				return true
			}
		}
		return false
	}
	return true
}

type BookingRepository interface {
	// Create stores the booking as-is. Duplicate submissions produce duplicate records.
	Create(ctx context.Context, booking *entity.Booking) error
	// CreateIfSlotFree stores the booking only if no slot-holding booking exists for the
	// same provider, date and start time. It returns a CONFLICT AppError otherwise.
	CreateIfSlotFree(ctx context.Context, booking *entity.Booking) error
	GetByID(ctx context.Context, id string) (*entity.Booking, error)
	// List returns bookings newest first.
	List(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error)
	Update(ctx context.Context, booking *entity.Booking) error
}
