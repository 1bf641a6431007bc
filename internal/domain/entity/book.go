package entity

type BookStatus string

const (
	BookRequested BookStatus = "Requested"
	BookApproved  BookStatus = "Approved"
	BookPurchased BookStatus = "Purchased"
	BookBorrowed  BookStatus = "Borrowed"
	BookReturned  BookStatus = "Returned"
)

// Book is a lending request in the book boutique.
type Book struct {
	ID             string     `json:"id" firestore:"id"`
	Title          string     `json:"title" firestore:"title"`
	Author         string     `json:"author" firestore:"author"`
	CustomerID     string     `json:"customerId,omitempty" firestore:"customerId,omitempty"`
	CustomerName   string     `json:"customerName" firestore:"customerName"`
	CustomerEmail  string     `json:"customerEmail" firestore:"customerEmail"`
	Status         BookStatus `json:"status" firestore:"status"`
	BorrowDuration int        `json:"borrowDuration" firestore:"borrowDuration"`
	RequestDate    string     `json:"requestDate" firestore:"requestDate"`
	ImageURL       string     `json:"imageUrl" firestore:"imageUrl"`
	DueDate        string     `json:"dueDate,omitempty" firestore:"dueDate,omitempty"`
}
