package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/pkg/errors"
)

type firestoreActivityLogRepository struct {
	client *firestore.Client
}

func NewFirestoreActivityLogRepository(client *firestore.Client) repository.ActivityLogRepository {
	return &firestoreActivityLogRepository{
		client: client,
	}
}

func (r *firestoreActivityLogRepository) Append(ctx context.Context, log *entity.ActivityLog) error {
	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}

	_, err := r.client.Collection(activityLogsCollection).Doc(log.ID).Set(ctx, log)
	if err != nil {
		return errors.Internal("Failed to append activity log", err)
	}
	return nil
}

func (r *firestoreActivityLogRepository) List(ctx context.Context, offset, limit int) ([]*entity.ActivityLog, int64, error) {
	query := r.client.Collection(activityLogsCollection).OrderBy("timestamp", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count activity logs", err)
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	logs, err := collectDocuments[entity.ActivityLog](query.Documents(ctx), "activity logs")
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (r *firestoreActivityLogRepository) Prune(ctx context.Context, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}

	iter := r.client.Collection(activityLogsCollection).
		OrderBy("timestamp", firestore.Desc).
		Offset(keep).
		Documents(ctx)
	defer iter.Stop()

	writer := r.client.BulkWriter(ctx)
	removed := 0
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			writer.End()
			return removed, errors.Internal("Failed to iterate activity logs", err)
		}
		if _, err := writer.Delete(doc.Ref); err != nil {
			writer.End()
			return removed, errors.Internal("Failed to prune activity logs", err)
		}
		removed++
	}
	writer.End()

	return removed, nil
}
