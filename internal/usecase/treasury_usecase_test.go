package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillio/internal/domain/entity"
	"skillio/pkg/errors"
)

func completedBooking(t *testing.T, f *fixture) *entity.Booking {
	t.Helper()
	f.addTasker(t, "tasker_1", "Amani")
	bookings := newBookingUseCase(f)
	ctx := context.Background()

	b, err := bookings.CreateBooking(ctx, "user_1", CreateBookingInput{ServiceID: "t1", ProviderID: "tasker_1", Date: "2025-03-12"})
	require.NoError(t, err)
	for _, to := range []entity.BookingStatus{entity.BookingAccepted, entity.BookingInProgress, entity.BookingCompleted} {
		b, err = bookings.UpdateStatus(ctx, Actor{ID: "tasker_1"}, b.ID, to)
		require.NoError(t, err)
	}
	return b
}

func TestTreasury_SummaryAndQueue(t *testing.T) {
	f := newFixture(t)
	completedBooking(t, f)
	_, err := newBookingUseCase(f).CreateBooking(context.Background(), "user_1", CreateBookingInput{ServiceID: "c1", Date: "2025-03-12"})
	require.NoError(t, err)

	uc := NewTreasuryUseCase(f.bookings, f.logs, f.gateway, f.notifier)

	summary, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2400), summary.TotalPaid)
	assert.Equal(t, int64(360), summary.PlatformFees)
	assert.Equal(t, int64(2040), summary.TaskerPayouts)

	report, err := uc.PayoutQueue(context.Background())
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, int64(1700), report.Rows[0].Payout)
	require.Len(t, report.ByProvider, 1)
	assert.Equal(t, "tasker_1", report.ByProvider[0].ProviderID)
}

func TestTreasury_ReleasePayout(t *testing.T) {
	f := newFixture(t)
	b := completedBooking(t, f)
	uc := NewTreasuryUseCase(f.bookings, f.logs, f.gateway, f.notifier)
	admin := Actor{ID: "adm", Name: "owner", Admin: true, Role: entity.AdminSuperOwner}

	released, err := uc.ReleasePayout(context.Background(), admin, b.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentReleased, released.PaymentStatus)
	require.Len(t, f.gateway.released, 1)
	assert.Equal(t, int64(1800), f.gateway.released[0].Amount)
	assert.Contains(t, f.notifier.sentTo("tasker_1"), entity.EventPaymentStatus)

	_, err = uc.ReleasePayout(context.Background(), admin, b.ID)
	assert.True(t, errors.Is(err, "INVALID_TRANSITION"))

	_, err = uc.Refund(context.Background(), admin, b.ID)
	assert.True(t, errors.Is(err, "INVALID_TRANSITION"))
}

func TestTreasury_ReleaseRequiresCompletedJob(t *testing.T) {
	f := newFixture(t)
	b, err := newBookingUseCase(f).CreateBooking(context.Background(), "user_1", CreateBookingInput{ServiceID: "c1", Date: "2025-03-12"})
	require.NoError(t, err)
	uc := NewTreasuryUseCase(f.bookings, f.logs, f.gateway, f.notifier)

	_, err = uc.ReleasePayout(context.Background(), Actor{Admin: true}, b.ID)
	assert.True(t, errors.Is(err, "CONFLICT"))

	refunded, err := uc.Refund(context.Background(), Actor{Admin: true}, b.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentRefunded, refunded.PaymentStatus)
	require.Len(t, f.gateway.refunded, 1)
	assert.Equal(t, int64(400), f.gateway.refunded[0].Amount)
}
