package entity

// Review is append-only; admins may only toggle IsVerified and IsFeatured.
type Review struct {
	ID           string `json:"id" firestore:"id"`
	ServiceID    string `json:"serviceId" firestore:"serviceId"`
	ServiceTitle string `json:"serviceTitle" firestore:"serviceTitle"`
	CustomerID   string `json:"customerId,omitempty" firestore:"customerId,omitempty"`
	CustomerName string `json:"customerName" firestore:"customerName"`
	Rating       int    `json:"rating" firestore:"rating"`
	Comment      string `json:"comment" firestore:"comment"`
	Date         string `json:"date" firestore:"date"`
	IsVerified   bool   `json:"isVerified" firestore:"isVerified"`
	IsFeatured   bool   `json:"isFeatured" firestore:"isFeatured"`
}
