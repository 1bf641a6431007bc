package service

import (
	"strconv"
	"strings"
	"unicode"

	"skillio/internal/domain/entity"
	"skillio/pkg/errors"
)

const (
	// PlatformFeePercent is charged on every marketplace booking at creation time.
	PlatformFeePercent int64 = 10
	// BundleDiscountPercent applies to direct bookings with at least BundleThreshold items.
	BundleDiscountPercent int64 = 10
	BundleThreshold             = 3
)

// PercentOf returns round(amount * percent / 100) with halves rounded up.
// amount must be non-negative.
func PercentOf(amount, percent int64) int64 {
	return (amount*percent + 50) / 100
}

// SplitBookingPrice divides a booking price into the platform fee and the tasker's share.
// The two parts always sum to price.
func SplitBookingPrice(price int64) (platformFee, taskerAmount int64) {
	platformFee = PercentOf(price, PlatformFeePercent)
	return platformFee, price - platformFee
}

// ParseDisplayPrice extracts the numeric amount from strings such as "KES 2,000/session"
// by keeping digits only. A string with no digits is worth 0.
func ParseDisplayPrice(display string) (int64, error) {
	var b strings.Builder
	for _, r := range display {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, nil
	}
	price, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0, errors.BadRequest("Service price is out of range", err)
	}
	return price, nil
}

// QuoteDirectBooking prices a direct-hub selection. base may be nil when no tier is chosen.
func QuoteDirectBooking(base *entity.CleaningTier, addOns []entity.AddOn) entity.Quote {
	var subtotal int64
	count := len(addOns)
	if base != nil {
		subtotal += base.Price
		count++
	}
	for _, a := range addOns {
		subtotal += a.Price
	}

	quote := entity.Quote{
		Subtotal:  subtotal,
		ItemCount: count,
		IsBundle:  count >= BundleThreshold,
	}
	if quote.IsBundle {
		quote.Discount = PercentOf(subtotal, BundleDiscountPercent)
	}
	quote.FinalTotal = subtotal - quote.Discount
	return quote
}
