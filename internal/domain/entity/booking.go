package entity

import "time"

type BookingStatus string

const (
	BookingRequested  BookingStatus = "Requested"
	BookingAccepted   BookingStatus = "Accepted"
	BookingDeclined   BookingStatus = "Declined"
	BookingConfirmed  BookingStatus = "Confirmed"
	BookingInProgress BookingStatus = "In Progress"
	BookingCompleted  BookingStatus = "Completed"
	BookingCancelled  BookingStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentPending      PaymentStatus = "Pending"
	PaymentPaidToEscrow PaymentStatus = "Paid to Escrow"
	PaymentReleased     PaymentStatus = "Released to Tasker"
	PaymentRefunded     PaymentStatus = "Refunded"
)

type BookingType string

const (
	BookingOnline   BookingType = "Online"
	BookingInPerson BookingType = "In-Person"
)

// Booking amounts are whole Kenyan shillings.
type Booking struct {
	ID            string        `json:"id" firestore:"id"`
	ServiceID     string        `json:"serviceId" firestore:"serviceId"`
	ServiceTitle  string        `json:"serviceTitle" firestore:"serviceTitle"`
	CustomerID    string        `json:"customerId,omitempty" firestore:"customerId,omitempty"`
	CustomerName  string        `json:"customerName" firestore:"customerName"`
	CustomerEmail string        `json:"customerEmail" firestore:"customerEmail"`
	CustomerPhone string        `json:"customerPhone,omitempty" firestore:"customerPhone,omitempty"`
	ProviderID    string        `json:"providerId,omitempty" firestore:"providerId,omitempty"`
	ProviderName  string        `json:"providerName,omitempty" firestore:"providerName,omitempty"`
	Message       string        `json:"message" firestore:"message"`
	Status        BookingStatus `json:"status" firestore:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus" firestore:"paymentStatus"`
	Date          string        `json:"date" firestore:"date"`
	StartTime     string        `json:"startTime,omitempty" firestore:"startTime,omitempty"`
	EndTime       string        `json:"endTime,omitempty" firestore:"endTime,omitempty"`
	Type          BookingType   `json:"type" firestore:"type"`
	CreatedAt     time.Time     `json:"createdAt" firestore:"createdAt"`
	TotalPrice    int64         `json:"totalPrice" firestore:"totalPrice"`
	PlatformFee   int64         `json:"platformFee" firestore:"platformFee"`
	TaskerAmount  int64         `json:"taskerAmount" firestore:"taskerAmount"`
	Location      string        `json:"location,omitempty" firestore:"location,omitempty"`
	AddOns        []string      `json:"addOns,omitempty" firestore:"addOns,omitempty"`
}

// HoldsSlot reports whether the booking occupies its date/start time for the provider.
func (b *Booking) HoldsSlot() bool {
	return b.Status != BookingCancelled
}
