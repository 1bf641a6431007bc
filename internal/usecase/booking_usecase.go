package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/internal/domain/service"
	"skillio/internal/infrastructure/metrics"
	"skillio/pkg/errors"
	"skillio/pkg/logger"
)

type BookingUseCase struct {
	serviceRepo repository.ServiceRepository
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	logRepo     repository.ActivityLogRepository
	gateway     service.EscrowGateway
	notifier    Notifier
	now         func() time.Time
}

func NewBookingUseCase(
	serviceRepo repository.ServiceRepository,
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
	logRepo repository.ActivityLogRepository,
	gateway service.EscrowGateway,
	notifier Notifier,
) *BookingUseCase {
	return &BookingUseCase{
		serviceRepo: serviceRepo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		logRepo:     logRepo,
		gateway:     gateway,
		notifier:    notifierOrNop(notifier),
		now:         time.Now,
	}
}

type CreateBookingInput struct {
	ServiceID     string
	ProviderID    string
	Date          string
	StartTime     string
	Type          entity.BookingType
	Message       string
	Location      string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// CreateBooking books a marketplace service. Payment is captured into escrow up front
// and repeated submissions create separate bookings.
func (uc *BookingUseCase) CreateBooking(ctx context.Context, customerID string, input CreateBookingInput) (*entity.Booking, error) {
	svc, err := uc.serviceRepo.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.IsActive {
		return nil, errors.BadRequest("Service is not currently bookable", nil)
	}
	if svc.IsBlockedOn(input.Date) {
		return nil, errors.BadRequest("Service is not available on "+input.Date, nil)
	}

	booking := &entity.Booking{
		ID:            newReference("BK-"),
		ServiceID:     svc.ID,
		ServiceTitle:  svc.Title,
		CustomerID:    customerID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		Message:       input.Message,
		Status:        entity.BookingRequested,
		PaymentStatus: entity.PaymentPending,
		Date:          input.Date,
		StartTime:     input.StartTime,
		Type:          input.Type,
		CreatedAt:     uc.now(),
		Location:      input.Location,
	}
	if booking.Type == "" {
		booking.Type = entity.BookingInPerson
	}
	fillCustomerContact(ctx, uc.userRepo, booking)

	if input.ProviderID != "" {
		provider, err := uc.bookableProvider(ctx, svc, input.ProviderID, input.Date)
		if err != nil {
			return nil, err
		}
		booking.ProviderID = provider.ID
		booking.ProviderName = provider.Name
	}

	if err := uc.checkCapacity(ctx, svc, input.Date); err != nil {
		return nil, err
	}

	if input.StartTime != "" {
		end, err := service.EndTime(input.StartTime, svc.DurationMinutes)
		if err != nil {
			return nil, err
		}
		booking.EndTime = end
	}

	price, err := service.ParseDisplayPrice(svc.Price)
	if err != nil {
		return nil, err
	}
	booking.TotalPrice = price
	booking.PlatformFee, booking.TaskerAmount = service.SplitBookingPrice(price)

	if _, err := uc.gateway.Capture(ctx, service.EscrowRequest{
		BookingID: booking.ID,
		Amount:    booking.TotalPrice,
		Phone:     booking.CustomerPhone,
	}); err != nil {
		return nil, errors.Unavailable("Payment could not be captured", err)
	}
	booking.PaymentStatus = entity.PaymentPaidToEscrow

	if err := uc.bookingRepo.Create(ctx, booking); err != nil {
		refundUnsaved(ctx, uc.gateway, uc.logRepo, booking)
		return nil, err
	}

	metrics.RecordBookingCreated("marketplace")
	metrics.RecordEscrow("capture", booking.TotalPrice)
	recordActivity(ctx, uc.logRepo, escrowPaymentMessage(booking), entity.SystemActor, booking.ServiceID)

	ev := event(entity.EventBookingCreated, booking)
	uc.notifier.Notify(booking.ProviderID, ev)
	uc.notifier.NotifyAdmins(ev)

	return booking, nil
}

// refundUnsaved returns a captured payment whose booking could not be stored.
func refundUnsaved(ctx context.Context, gateway service.EscrowGateway, logRepo repository.ActivityLogRepository, b *entity.Booking) {
	if _, err := gateway.Refund(ctx, service.EscrowRequest{BookingID: b.ID, Amount: b.TotalPrice, Phone: b.CustomerPhone}); err != nil {
		logger.Error("refund for unsaved booking %s failed: %v", b.ID, err)
		recordActivity(ctx, logRepo, fmt.Sprintf("Refund for unsaved booking %s failed: %v", b.ID, err), entity.SystemActor, b.ServiceID)
		return
	}
	metrics.RecordEscrow("refund", b.TotalPrice)
}

func escrowPaymentMessage(b *entity.Booking) string {
	return fmt.Sprintf("💸 ESCROW PAYMENT: %s paid KES %d for %s. Funds held by app.", b.CustomerName, b.TotalPrice, b.ServiceTitle)
}

// fillCustomerContact copies missing contact fields from the caller's profile.
func fillCustomerContact(ctx context.Context, users repository.UserRepository, b *entity.Booking) {
	if b.CustomerID == "" {
		return
	}
	profile, err := users.GetByID(ctx, b.CustomerID)
	if err != nil {
		return
	}
	if b.CustomerName == "" {
		b.CustomerName = profile.Name
	}
	if b.CustomerEmail == "" {
		b.CustomerEmail = profile.Email
	}
	if b.CustomerPhone == "" {
		b.CustomerPhone = profile.Phone
	}
	if b.Location == "" && b.Type == entity.BookingInPerson {
		b.Location = profile.Address
	}
}

func (uc *BookingUseCase) bookableProvider(ctx context.Context, svc *entity.Service, providerID, date string) (*entity.UserProfile, error) {
	if !svc.AllowsProvider(providerID) {
		return nil, errors.BadRequest("Provider is not assigned to this service", nil)
	}

	provider, err := uc.userRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider.ProviderStatus != entity.ProviderApproved || provider.IsSuspended() {
		return nil, errors.BadRequest("Provider is not accepting bookings", nil)
	}
	if s := provider.TaskerProfileSettings; s != nil {
		if s.IsDeactivated || s.IsUnavailableMode {
			return nil, errors.BadRequest("Provider is not accepting bookings", nil)
		}
		if s.IsBlockedOn(date) {
			return nil, errors.BadRequest("Provider is not available on "+date, nil)
		}
	}
	return provider, nil
}

func (uc *BookingUseCase) checkCapacity(ctx context.Context, svc *entity.Service, date string) error {
	if svc.MaxJobsPerDay == nil || *svc.MaxJobsPerDay <= 0 {
		return nil
	}

	sameDay, err := uc.bookingRepo.List(ctx, repository.BookingFilter{Date: date})
	if err != nil {
		return err
	}
	taken := 0
	for _, b := range sameDay {
		if b.ServiceID == svc.ID && b.HoldsSlot() {
			taken++
		}
	}
	if taken >= *svc.MaxJobsPerDay {
		return errors.Conflict(fmt.Sprintf("%s is fully booked on %s", svc.Title, date))
	}
	return nil
}

func (uc *BookingUseCase) GetBooking(ctx context.Context, actor Actor, id string) (*entity.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.Admin && booking.CustomerID != actor.ID && booking.ProviderID != actor.ID {
		return nil, errors.Forbidden("You do not have access to this booking", nil)
	}
	return booking, nil
}

func (uc *BookingUseCase) ListCustomerBookings(ctx context.Context, customerID string) ([]*entity.Booking, error) {
	return uc.bookingRepo.List(ctx, repository.BookingFilter{CustomerID: customerID})
}

func (uc *BookingUseCase) ListProviderBookings(ctx context.Context, providerID string) ([]*entity.Booking, error) {
	return uc.bookingRepo.List(ctx, repository.BookingFilter{ProviderID: providerID})
}

func (uc *BookingUseCase) ProviderEarnings(ctx context.Context, providerID string) (service.ProviderEarnings, error) {
	bookings, err := uc.ListProviderBookings(ctx, providerID)
	if err != nil {
		return service.ProviderEarnings{}, err
	}
	return service.SummarizeEarnings(bookings), nil
}

// AdminBookingFilter matches the date exactly and service or tasker names by
// case-insensitive substring.
type AdminBookingFilter struct {
	Date    string
	Service string
	Tasker  string
}

func (f AdminBookingFilter) matches(b *entity.Booking) bool {
	if f.Date != "" && b.Date != f.Date {
		return false
	}
	if f.Service != "" && !strings.Contains(strings.ToLower(b.ServiceTitle), strings.ToLower(f.Service)) {
		return false
	}
	if f.Tasker != "" && !strings.Contains(strings.ToLower(b.ProviderName), strings.ToLower(f.Tasker)) {
		return false
	}
	return true
}

func (uc *BookingUseCase) AdminListBookings(ctx context.Context, filter AdminBookingFilter) ([]*entity.Booking, error) {
	all, err := uc.bookingRepo.List(ctx, repository.BookingFilter{Date: filter.Date})
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Booking, 0, len(all))
	for _, b := range all {
		if filter.matches(b) {
			out = append(out, b)
		}
	}
	return out, nil
}

// UpdateStatus moves a booking along its lifecycle. Providers drive the job forward,
// customers may only cancel, admins may apply any valid transition.
func (uc *BookingUseCase) UpdateStatus(ctx context.Context, actor Actor, id string, to entity.BookingStatus) (*entity.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.Admin {
		isProvider := booking.ProviderID != "" && booking.ProviderID == actor.ID
		isCustomer := booking.CustomerID != "" && booking.CustomerID == actor.ID
		switch {
		case isProvider:
		case isCustomer && to == entity.BookingCancelled:
		case isCustomer:
			return nil, errors.Forbidden("Customers can only cancel a booking", nil)
		default:
			return nil, errors.Forbidden("You do not have access to this booking", nil)
		}
	}

	from := booking.Status
	if err := service.MoveBooking(booking, to); err != nil {
		return nil, err
	}
	if err := uc.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}

	metrics.RecordBookingTransition(string(to))
	recordActivity(ctx, uc.logRepo, fmt.Sprintf("Booking %s status updated to %s", booking.ID, to), actor.label(), booking.ServiceID)
	logger.Debug("booking %s moved from %s to %s by %s", booking.ID, from, to, actor.label())

	ev := event(entity.EventBookingStatus, booking)
	uc.notifier.Notify(booking.CustomerID, ev)
	uc.notifier.Notify(booking.ProviderID, ev)
	uc.notifier.NotifyAdmins(ev)

	return booking, nil
}
