package service

import (
	"skillio/internal/domain/entity"
	"skillio/pkg/errors"
)

var bookingTransitions = map[entity.BookingStatus][]entity.BookingStatus{
	entity.BookingRequested:  {entity.BookingAccepted, entity.BookingDeclined, entity.BookingCancelled},
	entity.BookingConfirmed:  {entity.BookingInProgress, entity.BookingCancelled},
	entity.BookingAccepted:   {entity.BookingInProgress, entity.BookingCancelled},
	entity.BookingInProgress: {entity.BookingCompleted},
}

var paymentTransitions = map[entity.PaymentStatus][]entity.PaymentStatus{
	entity.PaymentPending:      {entity.PaymentPaidToEscrow, entity.PaymentRefunded},
	entity.PaymentPaidToEscrow: {entity.PaymentReleased, entity.PaymentRefunded},
}

var applicationTransitions = map[entity.ProviderStatus][]entity.ProviderStatus{
	entity.ProviderApplied:         {entity.ProviderUnderReview, entity.ProviderApproved, entity.ProviderChangesRequired, entity.ProviderRejected},
	entity.ProviderUnderReview:     {entity.ProviderApproved, entity.ProviderChangesRequired, entity.ProviderRejected},
	entity.ProviderChangesRequired: {entity.ProviderApplied, entity.ProviderApproved, entity.ProviderRejected},
	entity.ProviderApproved:        {entity.ProviderSuspended, entity.ProviderChangesRequired},
	entity.ProviderSuspended:       {entity.ProviderApproved},
	entity.ProviderRejected:        {entity.ProviderApplied},
}

var portfolioTransitions = map[entity.SubmissionStatus][]entity.SubmissionStatus{
	entity.SubmissionDraft:     {entity.SubmissionSubmitted},
	entity.SubmissionSubmitted: {entity.SubmissionApproved, entity.SubmissionDraft},
}

var bookTransitions = map[entity.BookStatus][]entity.BookStatus{
	entity.BookRequested: {entity.BookApproved},
	entity.BookApproved:  {entity.BookPurchased, entity.BookBorrowed},
	entity.BookPurchased: {entity.BookBorrowed},
	entity.BookBorrowed:  {entity.BookReturned},
}

func allowed[S comparable](table map[S][]S, from, to S) bool {
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

func CanMoveBooking(from, to entity.BookingStatus) bool {
	return allowed(bookingTransitions, from, to)
}

func NextBookingStatuses(from entity.BookingStatus) []entity.BookingStatus {
	return append([]entity.BookingStatus(nil), bookingTransitions[from]...)
}

func CanMovePayment(from, to entity.PaymentStatus) bool {
	return allowed(paymentTransitions, from, to)
}

func CanMoveApplication(from, to entity.ProviderStatus) bool {
	return allowed(applicationTransitions, from, to)
}

func CanMovePortfolio(from, to entity.SubmissionStatus) bool {
	return allowed(portfolioTransitions, from, to)
}

func CanMoveBook(from, to entity.BookStatus) bool {
	return allowed(bookTransitions, from, to)
}

// MoveBooking applies a status change or returns an INVALID_TRANSITION error.
func MoveBooking(b *entity.Booking, to entity.BookingStatus) error {
	if !CanMoveBooking(b.Status, to) {
		return errors.InvalidTransition("Booking", string(b.Status), string(to))
	}
	b.Status = to
	return nil
}

func MovePayment(b *entity.Booking, to entity.PaymentStatus) error {
	if !CanMovePayment(b.PaymentStatus, to) {
		return errors.InvalidTransition("Payment", string(b.PaymentStatus), string(to))
	}
	b.PaymentStatus = to
	return nil
}
