package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/internal/domain/service"
	"skillio/internal/infrastructure/catalog"
	"skillio/internal/infrastructure/metrics"
	"skillio/pkg/errors"
)

// DirectServiceID marks bookings made through the owner's cleaning hub.
const DirectServiceID = "owner-cleaning-hub"

// DirectBookingUseCase runs the owner's own cleaning hub: fixed tiers, add-ons,
// hourly slots, no platform fee.
type DirectBookingUseCase struct {
	catalog     *catalog.Catalog
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	logRepo     repository.ActivityLogRepository
	gateway     service.EscrowGateway
	notifier    Notifier
	ownerID     string
	ownerName   string
	now         func() time.Time
}

func NewDirectBookingUseCase(
	cat *catalog.Catalog,
	bookingRepo repository.BookingRepository,
	userRepo repository.UserRepository,
	logRepo repository.ActivityLogRepository,
	gateway service.EscrowGateway,
	notifier Notifier,
	ownerID, ownerName string,
) *DirectBookingUseCase {
	return &DirectBookingUseCase{
		catalog:     cat,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		logRepo:     logRepo,
		gateway:     gateway,
		notifier:    notifierOrNop(notifier),
		ownerID:     ownerID,
		ownerName:   ownerName,
		now:         time.Now,
	}
}

type DirectCatalog struct {
	Tiers        []entity.CleaningTier `json:"tiers"`
	AddOns       []entity.AddOn        `json:"addOns"`
	TimeSlots    []string              `json:"timeSlots"`
	BookableDays []string              `json:"bookableDays"`
}

func (uc *DirectBookingUseCase) Catalog() DirectCatalog {
	return DirectCatalog{
		Tiers:        uc.catalog.Tiers,
		AddOns:       uc.catalog.AddOns,
		TimeSlots:    uc.timeSlots(),
		BookableDays: service.BookableDays(uc.now(), service.BookableDaysAhead),
	}
}

func (uc *DirectBookingUseCase) timeSlots() []string {
	if len(uc.catalog.TimeSlots) > 0 {
		return uc.catalog.TimeSlots
	}
	return service.DefaultTimeSlots
}

type selection struct {
	tier   *entity.CleaningTier
	addOns []entity.AddOn
}

func (uc *DirectBookingUseCase) resolve(tierID string, addOnIDs []string) (*selection, error) {
	sel := &selection{}
	if tierID != "" {
		tier, ok := uc.catalog.Tier(tierID)
		if !ok {
			return nil, errors.BadRequest(fmt.Sprintf("Unknown cleaning type %q", tierID), nil)
		}
		sel.tier = tier
	}
	addOns, err := uc.catalog.SelectAddOns(addOnIDs)
	if err != nil {
		return nil, errors.BadRequest(err.Error(), err)
	}
	sel.addOns = addOns
	return sel, nil
}

// Quote prices a selection. An empty selection is valid and costs nothing.
func (uc *DirectBookingUseCase) Quote(tierID string, addOnIDs []string) (entity.Quote, error) {
	sel, err := uc.resolve(tierID, addOnIDs)
	if err != nil {
		return entity.Quote{}, err
	}
	return service.QuoteDirectBooking(sel.tier, sel.addOns), nil
}

// AvailableSlots lists the owner's free start times on date. It is advisory only.
func (uc *DirectBookingUseCase) AvailableSlots(ctx context.Context, date string) ([]string, error) {
	if err := uc.checkBookableDay(date); err != nil {
		return nil, err
	}
	bookings, err := uc.bookingRepo.List(ctx, repository.BookingFilter{ProviderID: uc.ownerID, Date: date})
	if err != nil {
		return nil, err
	}
	return service.AvailableSlots(bookings, date, uc.ownerID, uc.timeSlots()), nil
}

func (uc *DirectBookingUseCase) checkBookableDay(date string) error {
	for _, d := range service.BookableDays(uc.now(), service.BookableDaysAhead) {
		if d == date {
			return nil
		}
	}
	return errors.BadRequest(fmt.Sprintf("Date must be within the next %d days", service.BookableDaysAhead), nil)
}

func (uc *DirectBookingUseCase) checkSlot(slot string) error {
	for _, s := range uc.timeSlots() {
		if s == slot {
			return nil
		}
	}
	return errors.BadRequest(fmt.Sprintf("Unknown time slot %q", slot), nil)
}

type CreateDirectBookingInput struct {
	TierID        string
	AddOnIDs      []string
	Date          string
	StartTime     string
	Location      string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
}

// CreateBooking confirms a direct cleaning booking. The slot is claimed atomically, so
// two customers racing for the same time get one booking and one CONFLICT.
func (uc *DirectBookingUseCase) CreateBooking(ctx context.Context, customerID string, input CreateDirectBookingInput) (*entity.Booking, error) {
	if input.TierID == "" {
		return nil, errors.BadRequest("A cleaning type is required", nil)
	}
	sel, err := uc.resolve(input.TierID, input.AddOnIDs)
	if err != nil {
		return nil, err
	}
	if err := uc.checkBookableDay(input.Date); err != nil {
		return nil, err
	}
	if err := uc.checkSlot(input.StartTime); err != nil {
		return nil, err
	}

	quote := service.QuoteDirectBooking(sel.tier, sel.addOns)
	names := make([]string, 0, len(sel.addOns))
	for _, a := range sel.addOns {
		names = append(names, a.Name)
	}
	extras := strings.Join(names, ", ")
	if extras == "" {
		extras = "None"
	}

	end, err := service.EndTime(input.StartTime, service.DefaultDurationMinutes)
	if err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		ID:            newReference("SKL-"),
		ServiceID:     DirectServiceID,
		ServiceTitle:  sel.tier.Title,
		CustomerID:    customerID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		ProviderID:    uc.ownerID,
		ProviderName:  uc.ownerName,
		Message:       fmt.Sprintf("Direct Cleaning Booking: %s. Extras: %s", sel.tier.Title, extras),
		Status:        entity.BookingConfirmed,
		PaymentStatus: entity.PaymentPending,
		Date:          input.Date,
		StartTime:     input.StartTime,
		EndTime:       end,
		Type:          entity.BookingInPerson,
		CreatedAt:     uc.now(),
		TotalPrice:    quote.FinalTotal,
		PlatformFee:   0,
		TaskerAmount:  quote.FinalTotal,
		Location:      input.Location,
		AddOns:        names,
	}
	fillCustomerContact(ctx, uc.userRepo, booking)

	if _, err := uc.gateway.Capture(ctx, service.EscrowRequest{
		BookingID: booking.ID,
		Amount:    booking.TotalPrice,
		Phone:     booking.CustomerPhone,
	}); err != nil {
		return nil, errors.Unavailable("Payment could not be captured", err)
	}
	booking.PaymentStatus = entity.PaymentPaidToEscrow

	if err := uc.bookingRepo.CreateIfSlotFree(ctx, booking); err != nil {
		refundUnsaved(ctx, uc.gateway, uc.logRepo, booking)
		return nil, err
	}

	metrics.RecordBookingCreated("direct")
	metrics.RecordEscrow("capture", booking.TotalPrice)
	recordActivity(ctx, uc.logRepo, escrowPaymentMessage(booking), entity.SystemActor, DirectServiceID)

	ev := event(entity.EventBookingCreated, booking)
	uc.notifier.Notify(uc.ownerID, ev)
	uc.notifier.NotifyAdmins(ev)

	return booking, nil
}
