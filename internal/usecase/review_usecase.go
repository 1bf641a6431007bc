package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/internal/domain/service"
	"skillio/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	serviceRepo repository.ServiceRepository
	logRepo     repository.ActivityLogRepository
	now         func() time.Time
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	serviceRepo repository.ServiceRepository,
	logRepo repository.ActivityLogRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		serviceRepo: serviceRepo,
		logRepo:     logRepo,
		now:         time.Now,
	}
}

type CreateReviewInput struct {
	ServiceID    string
	ServiceTitle string
	CustomerName string
	Rating       int
	Comment      string
}

// CreateReview appends a review. New reviews are never verified or featured.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, customerID string, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}
	if strings.TrimSpace(input.Comment) == "" {
		return nil, errors.BadRequest("Comment is required", nil)
	}

	title := input.ServiceTitle
	if input.ServiceID != "" {
		svc, err := uc.serviceRepo.GetByID(ctx, input.ServiceID)
		if err != nil {
			return nil, err
		}
		title = svc.Title
	}
	if title == "" {
		return nil, errors.BadRequest("A service is required", nil)
	}

	review := &entity.Review{
		ID:           newReference("RV-"),
		ServiceID:    input.ServiceID,
		ServiceTitle: title,
		CustomerID:   customerID,
		CustomerName: input.CustomerName,
		Rating:       input.Rating,
		Comment:      input.Comment,
		Date:         uc.now().Format(service.DateLayout),
	}
	if review.CustomerName == "" {
		review.CustomerName = "Anonymous"
	}

	if err := uc.reviewRepo.Append(ctx, review); err != nil {
		return nil, err
	}
	recordActivity(ctx, uc.logRepo, fmt.Sprintf("New review added for %s", review.ServiceTitle), review.CustomerName, review.ServiceID)
	return review, nil
}

// ListReviews pages through reviews newest first, optionally only featured ones.
func (uc *ReviewUseCase) ListReviews(ctx context.Context, featuredOnly bool, page, pageSize int) ([]*entity.Review, int64, error) {
	all, err := uc.reviewRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	filtered := all
	if featuredOnly {
		filtered = make([]*entity.Review, 0, len(all))
		for _, r := range all {
			if r.IsFeatured {
				filtered = append(filtered, r)
			}
		}
	}
	return paginate(filtered, page, pageSize), int64(len(filtered)), nil
}

func (uc *ReviewUseCase) SetFlags(ctx context.Context, actor Actor, id string, verified, featured bool) (*entity.Review, error) {
	review, err := uc.reviewRepo.SetFlags(ctx, id, verified, featured)
	if err != nil {
		return nil, err
	}
	recordActivity(ctx, uc.logRepo, fmt.Sprintf("Review %s flags set (verified=%t, featured=%t)", id, verified, featured), actor.label(), review.ServiceID)
	return review, nil
}

// paginate slices a one-based page out of items. A non-positive pageSize returns everything.
func paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
