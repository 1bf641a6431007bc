package service

import (
	"sort"

	"skillio/internal/domain/entity"
)

const (
	// TreasuryFeePercent is the reporting rate used by the admin dashboard. It is kept
	// separate from PlatformFeePercent on purpose; the two are not reconciled.
	TreasuryFeePercent int64 = 15
	// PayoutPercent is the tasker share shown in the payout queue.
	PayoutPercent int64 = 85
)

type TreasurySummary struct {
	TotalPaid       int64 `json:"totalPaid"`
	PlatformFees    int64 `json:"platformFees"`
	TaskerPayouts   int64 `json:"taskerPayouts"`
	CountedBookings int   `json:"countedBookings"`
}

// CountsTowardTreasury reports whether a booking's price is included in treasury totals.
func CountsTowardTreasury(b *entity.Booking) bool {
	return b.Status == entity.BookingCompleted || b.PaymentStatus == entity.PaymentPaidToEscrow
}

func SummarizeTreasury(bookings []*entity.Booking) TreasurySummary {
	var summary TreasurySummary
	for _, b := range bookings {
		if !CountsTowardTreasury(b) {
			continue
		}
		summary.TotalPaid += b.TotalPrice
		summary.CountedBookings++
	}
	summary.PlatformFees = PercentOf(summary.TotalPaid, TreasuryFeePercent)
	summary.TaskerPayouts = summary.TotalPaid - summary.PlatformFees
	return summary
}

type PayoutRow struct {
	BookingID     string               `json:"bookingId"`
	ProviderID    string               `json:"providerId,omitempty"`
	ProviderName  string               `json:"providerName,omitempty"`
	ServiceTitle  string               `json:"serviceTitle"`
	Date          string               `json:"date"`
	TotalPrice    int64                `json:"totalPrice"`
	Payout        int64                `json:"payout"`
	PaymentStatus entity.PaymentStatus `json:"paymentStatus"`
	Releasable    bool                 `json:"releasable"`
}

// PayoutQueue lists completed bookings with the 85% tasker share.
func PayoutQueue(bookings []*entity.Booking) []PayoutRow {
	rows := make([]PayoutRow, 0)
	for _, b := range bookings {
		if b.Status != entity.BookingCompleted {
			continue
		}
		rows = append(rows, PayoutRow{
			BookingID:     b.ID,
			ProviderID:    b.ProviderID,
			ProviderName:  b.ProviderName,
			ServiceTitle:  b.ServiceTitle,
			Date:          b.Date,
			TotalPrice:    b.TotalPrice,
			Payout:        PercentOf(b.TotalPrice, PayoutPercent),
			PaymentStatus: b.PaymentStatus,
			Releasable:    b.PaymentStatus == entity.PaymentPaidToEscrow,
		})
	}
	return rows
}

type ProviderPayout struct {
	ProviderID   string `json:"providerId"`
	ProviderName string `json:"providerName"`
	Jobs         int    `json:"jobs"`
	Gross        int64  `json:"gross"`
	Payout       int64  `json:"payout"`
	Pending      int64  `json:"pending"`
}

// PayoutsByProvider folds the payout queue into one row per provider, ordered by provider id.
func PayoutsByProvider(rows []PayoutRow) []ProviderPayout {
	index := make(map[string]*ProviderPayout)
	for _, r := range rows {
		p, ok := index[r.ProviderID]
		if !ok {
			p = &ProviderPayout{ProviderID: r.ProviderID, ProviderName: r.ProviderName}
			index[r.ProviderID] = p
		}
		p.Jobs++
		p.Gross += r.TotalPrice
		p.Payout += r.Payout
		if r.Releasable {
			p.Pending += r.Payout
		}
	}

	out := make([]ProviderPayout, 0, len(index))
	for _, p := range index {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProviderID < out[j].ProviderID })
	return out
}

// ProviderEarnings is the tasker's own view of their money.
type ProviderEarnings struct {
	InEscrow int64 `json:"inEscrow"`
	Cleared  int64 `json:"cleared"`
	FeesPaid int64 `json:"feesPaid"`
}

func SummarizeEarnings(bookings []*entity.Booking) ProviderEarnings {
	var e ProviderEarnings
	for _, b := range bookings {
		if b.PaymentStatus == entity.PaymentPaidToEscrow && b.Status != entity.BookingCompleted {
			e.InEscrow += b.TaskerAmount
		}
		if b.PaymentStatus == entity.PaymentReleased {
			e.Cleared += b.TaskerAmount
		}
		if b.Status == entity.BookingCompleted {
			e.FeesPaid += b.PlatformFee
		}
	}
	return e
}
