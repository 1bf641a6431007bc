package entity

import "time"

type EventType string

const (
	EventBookingCreated     EventType = "booking.created"
	EventBookingStatus      EventType = "booking.status"
	EventPaymentStatus      EventType = "booking.payment"
	EventApplicationStatus  EventType = "application.status"
	EventPortfolioReviewed  EventType = "portfolio.reviewed"
	EventPortfolioSubmitted EventType = "portfolio.submitted"
	EventBookStatus         EventType = "book.status"
)

// Event is pushed to connected websocket clients.
type Event struct {
	Type    EventType   `json:"type"`
	Payload interface{} `json:"payload"`
	At      time.Time   `json:"at"`
}
