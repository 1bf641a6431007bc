package usecase

import (
	"context"
	"fmt"
	"strings"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/internal/domain/service"
	"skillio/pkg/errors"
)

// CatalogUseCase manages the services customers can book.
type CatalogUseCase struct {
	serviceRepo repository.ServiceRepository
	logRepo     repository.ActivityLogRepository
}

func NewCatalogUseCase(serviceRepo repository.ServiceRepository, logRepo repository.ActivityLogRepository) *CatalogUseCase {
	return &CatalogUseCase{
		serviceRepo: serviceRepo,
		logRepo:     logRepo,
	}
}

type ServiceInput struct {
	Title           string
	Description     string
	Price           string
	DurationMinutes int
	Category        entity.Category
	ImageURL        string
	IsActive        bool
	MaxJobsPerDay   *int
	BlockedDates    []string
}

func (in ServiceInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return errors.BadRequest("Title is required", nil)
	}
	if !in.Category.Valid() {
		return errors.BadRequest(fmt.Sprintf("Unknown category %q", in.Category), nil)
	}
	if _, err := service.ParseDisplayPrice(in.Price); err != nil {
		return errors.BadRequest("Price must contain an amount in KES", err)
	}
	if in.DurationMinutes < 0 {
		return errors.BadRequest("Duration cannot be negative", nil)
	}
	return nil
}

func (uc *CatalogUseCase) Categories() []entity.Category {
	return entity.Categories
}

func (uc *CatalogUseCase) ListServices(ctx context.Context, includeInactive bool) ([]*entity.Service, error) {
	return uc.serviceRepo.List(ctx, !includeInactive)
}

// GetService hides inactive services from the public catalog.
func (uc *CatalogUseCase) GetService(ctx context.Context, id string, includeInactive bool) (*entity.Service, error) {
	svc, err := uc.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !svc.IsActive && !includeInactive {
		return nil, errors.NotFound("Service", nil)
	}
	return svc, nil
}

func (uc *CatalogUseCase) CreateService(ctx context.Context, actor Actor, input ServiceInput) (*entity.Service, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	svc := &entity.Service{
		Title:              input.Title,
		Description:        input.Description,
		Price:              input.Price,
		DurationMinutes:    input.DurationMinutes,
		Category:           input.Category,
		ImageURL:           input.ImageURL,
		IsActive:           input.IsActive,
		MaxJobsPerDay:      input.MaxJobsPerDay,
		AllowedProviderIDs: []string{},
		BlockedDates:       input.BlockedDates,
	}
	if err := uc.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}

	recordActivity(ctx, uc.logRepo, fmt.Sprintf("Service %s created", svc.Title), actor.label(), svc.ID)
	return svc, nil
}

func (uc *CatalogUseCase) UpdateService(ctx context.Context, actor Actor, id string, input ServiceInput) (*entity.Service, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	svc, err := uc.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	svc.Title = input.Title
	svc.Description = input.Description
	svc.Price = input.Price
	svc.DurationMinutes = input.DurationMinutes
	svc.Category = input.Category
	svc.ImageURL = input.ImageURL
	svc.IsActive = input.IsActive
	svc.MaxJobsPerDay = input.MaxJobsPerDay
	svc.BlockedDates = input.BlockedDates

	if err := uc.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}

	recordActivity(ctx, uc.logRepo, fmt.Sprintf("Service %s updated", svc.Title), actor.label(), svc.ID)
	return svc, nil
}

func (uc *CatalogUseCase) SetActive(ctx context.Context, actor Actor, id string, active bool) (*entity.Service, error) {
	svc, err := uc.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc.IsActive == active {
		return svc, nil
	}

	svc.IsActive = active
	if err := uc.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}

	state := "deactivated"
	if active {
		state = "activated"
	}
	recordActivity(ctx, uc.logRepo, fmt.Sprintf("Service %s %s", svc.Title, state), actor.label(), svc.ID)
	return svc, nil
}

// AssignProvider adds providerID to the service allow-list. Assigning twice is a no-op.
func (uc *CatalogUseCase) AssignProvider(ctx context.Context, actor Actor, id, providerID string) (*entity.Service, error) {
	svc, err := uc.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, existing := range svc.AllowedProviderIDs {
		if existing == providerID {
			return svc, nil
		}
	}

	svc.AllowedProviderIDs = append(svc.AllowedProviderIDs, providerID)
	if err := uc.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}

	recordActivity(ctx, uc.logRepo, fmt.Sprintf("Provider %s assigned to service %s", providerID, svc.ID), actor.label(), svc.ID)
	return svc, nil
}
