package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillio/internal/domain/entity"
	"skillio/pkg/errors"
)

func TestBookingLifecycle(t *testing.T) {
	b := &entity.Booking{Status: entity.BookingRequested}
	require.NoError(t, MoveBooking(b, entity.BookingAccepted))
	require.NoError(t, MoveBooking(b, entity.BookingInProgress))
	require.NoError(t, MoveBooking(b, entity.BookingCompleted))

	err := MoveBooking(b, entity.BookingCancelled)
	assert.True(t, errors.Is(err, "INVALID_TRANSITION"))
	assert.Equal(t, entity.BookingCompleted, b.Status)
}

func TestDirectBookingSkipsAcceptance(t *testing.T) {
	assert.True(t, CanMoveBooking(entity.BookingConfirmed, entity.BookingInProgress))
	assert.False(t, CanMoveBooking(entity.BookingConfirmed, entity.BookingAccepted))
	assert.False(t, CanMoveBooking(entity.BookingInProgress, entity.BookingCancelled))
	assert.ElementsMatch(t,
		[]entity.BookingStatus{entity.BookingAccepted, entity.BookingDeclined, entity.BookingCancelled},
		NextBookingStatuses(entity.BookingRequested))
}

func TestPaymentLifecycle(t *testing.T) {
	b := &entity.Booking{PaymentStatus: entity.PaymentPaidToEscrow}
	require.NoError(t, MovePayment(b, entity.PaymentReleased))
	assert.Error(t, MovePayment(b, entity.PaymentRefunded))
	assert.True(t, CanMovePayment(entity.PaymentPaidToEscrow, entity.PaymentRefunded))
}

func TestApplicationAndPortfolioCycles(t *testing.T) {
	assert.True(t, CanMoveApplication(entity.ProviderApplied, entity.ProviderChangesRequired))
	assert.True(t, CanMoveApplication(entity.ProviderChangesRequired, entity.ProviderApplied))
	assert.True(t, CanMoveApplication(entity.ProviderApproved, entity.ProviderSuspended))
	assert.False(t, CanMoveApplication(entity.ProviderApproved, entity.ProviderApplied))

	assert.True(t, CanMovePortfolio(entity.SubmissionDraft, entity.SubmissionSubmitted))
	assert.True(t, CanMovePortfolio(entity.SubmissionSubmitted, entity.SubmissionApproved))
	assert.False(t, CanMovePortfolio(entity.SubmissionDraft, entity.SubmissionApproved))
}

func TestBookLifecycle(t *testing.T) {
	assert.True(t, CanMoveBook(entity.BookApproved, entity.BookBorrowed))
	assert.True(t, CanMoveBook(entity.BookPurchased, entity.BookBorrowed))
	assert.False(t, CanMoveBook(entity.BookRequested, entity.BookReturned))
}

func TestRoleCapabilities(t *testing.T) {
	assert.True(t, RoleHas(entity.AdminSuperOwner, CapManageAdmins))
	assert.False(t, RoleHas(entity.AdminJuniorOwner, CapManageAdmins))
	assert.True(t, RoleHas(entity.AdminJuniorOwner, CapReleasePayouts))
	assert.False(t, RoleHas(entity.AdminManager, CapReleasePayouts))
	assert.False(t, RoleHas(entity.AdminStaff, CapViewTreasury))
	assert.False(t, RoleHas(entity.AdminRole("Intern"), CapViewActivity))
}
