package usecase

import (
	"context"
	"fmt"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/internal/domain/service"
	"skillio/internal/infrastructure/metrics"
	"skillio/pkg/errors"
)

type TreasuryUseCase struct {
	bookingRepo repository.BookingRepository
	logRepo     repository.ActivityLogRepository
	gateway     service.EscrowGateway
	notifier    Notifier
}

func NewTreasuryUseCase(
	bookingRepo repository.BookingRepository,
	logRepo repository.ActivityLogRepository,
	gateway service.EscrowGateway,
	notifier Notifier,
) *TreasuryUseCase {
	return &TreasuryUseCase{
		bookingRepo: bookingRepo,
		logRepo:     logRepo,
		gateway:     gateway,
		notifier:    notifierOrNop(notifier),
	}
}

func (uc *TreasuryUseCase) Summary(ctx context.Context) (service.TreasurySummary, error) {
	bookings, err := uc.bookingRepo.List(ctx, repository.BookingFilter{})
	if err != nil {
		return service.TreasurySummary{}, err
	}
	return service.SummarizeTreasury(bookings), nil
}

type PayoutReport struct {
	Rows       []service.PayoutRow      `json:"rows"`
	ByProvider []service.ProviderPayout `json:"byProvider"`
}

func (uc *TreasuryUseCase) PayoutQueue(ctx context.Context) (*PayoutReport, error) {
	bookings, err := uc.bookingRepo.List(ctx, repository.BookingFilter{Statuses: []entity.BookingStatus{entity.BookingCompleted}})
	if err != nil {
		return nil, err
	}
	rows := service.PayoutQueue(bookings)
	return &PayoutReport{Rows: rows, ByProvider: service.PayoutsByProvider(rows)}, nil
}

// ReleasePayout pays the tasker for a completed job held in escrow.
func (uc *TreasuryUseCase) ReleasePayout(ctx context.Context, actor Actor, bookingID string) (*entity.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != entity.BookingCompleted {
		return nil, errors.Conflict("Only completed bookings can be paid out")
	}
	if !service.CanMovePayment(booking.PaymentStatus, entity.PaymentReleased) {
		return nil, errors.InvalidTransition("Payment", string(booking.PaymentStatus), string(entity.PaymentReleased))
	}

	if _, err := uc.gateway.Release(ctx, service.EscrowRequest{BookingID: booking.ID, Amount: booking.TaskerAmount}); err != nil {
		return nil, errors.Unavailable("Payout could not be sent", err)
	}
	return uc.movePayment(ctx, actor, booking, entity.PaymentReleased, "release", booking.TaskerAmount)
}

// Refund returns escrowed money to the customer. Released payouts cannot be refunded.
func (uc *TreasuryUseCase) Refund(ctx context.Context, actor Actor, bookingID string) (*entity.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !service.CanMovePayment(booking.PaymentStatus, entity.PaymentRefunded) {
		return nil, errors.InvalidTransition("Payment", string(booking.PaymentStatus), string(entity.PaymentRefunded))
	}

	if booking.PaymentStatus == entity.PaymentPaidToEscrow {
		if _, err := uc.gateway.Refund(ctx, service.EscrowRequest{BookingID: booking.ID, Amount: booking.TotalPrice, Phone: booking.CustomerPhone}); err != nil {
			return nil, errors.Unavailable("Refund could not be sent", err)
		}
	}
	return uc.movePayment(ctx, actor, booking, entity.PaymentRefunded, "refund", booking.TotalPrice)
}

func (uc *TreasuryUseCase) movePayment(ctx context.Context, actor Actor, booking *entity.Booking, to entity.PaymentStatus, op string, amount int64) (*entity.Booking, error) {
	if err := service.MovePayment(booking, to); err != nil {
		return nil, err
	}
	if err := uc.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	metrics.RecordEscrow(op, amount)
	recordActivity(ctx, uc.logRepo, fmt.Sprintf("Booking %s payment marked %s (KES %d)", booking.ID, to, amount), actor.label(), booking.ServiceID)

	ev := event(entity.EventPaymentStatus, booking)
	uc.notifier.Notify(booking.ProviderID, ev)
	uc.notifier.Notify(booking.CustomerID, ev)
	uc.notifier.NotifyAdmins(ev)
	return booking, nil
}
