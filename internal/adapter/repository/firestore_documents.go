package repository

import (
	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"skillio/pkg/errors"
)

const (
	servicesCollection     = "services"
	bookingsCollection     = "bookings"
	reviewsCollection      = "reviews"
	applicationsCollection = "provider_applications"
	usersCollection        = "users"
	booksCollection        = "books"
	activityLogsCollection = "activity_logs"
	adminsCollection       = "admins"
)

func collectDocuments[T any](iter *firestore.DocumentIterator, resource string) ([]*T, error) {
	defer iter.Stop()

	items := make([]*T, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate "+resource, err)
		}

		item := new(T)
		if err := doc.DataTo(item); err != nil {
			return nil, errors.Internal("Failed to parse "+resource+" data", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func getDocument[T any](doc *firestore.DocumentSnapshot, err error, resource string) (*T, error) {
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound(resource, err)
		}
		return nil, errors.Internal("Failed to get "+resource, err)
	}

	item := new(T)
	if err := doc.DataTo(item); err != nil {
		return nil, errors.Internal("Failed to parse "+resource+" data", err)
	}
	return item, nil
}

func firstDocument[T any](iter *firestore.DocumentIterator, resource string) (*T, error) {
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound(resource, nil)
	}
	return getDocument[T](doc, err, resource)
}
