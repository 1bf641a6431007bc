package usecase

import (
	"context"
	"fmt"
	"time"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/internal/domain/service"
	"skillio/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	logRepo  repository.ActivityLogRepository
	now      func() time.Time
}

func NewUserUseCase(userRepo repository.UserRepository, logRepo repository.ActivityLogRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		logRepo:  logRepo,
		now:      time.Now,
	}
}

type UpdateProfileInput struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	City        string
	Role        entity.UserRole
	Bio         string
	Preferences *entity.Preferences
	Notes       *entity.HouseholdNotes
}

func (uc *UserUseCase) GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// UpdateProfile upserts the caller's profile. Provider status, account status and the
// portfolio are owned by other flows and left untouched.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.UserProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		user = &entity.UserProfile{
			ID:         userID,
			Role:       entity.RoleCustomer,
			Status:     entity.AccountActive,
			JoinedDate: uc.now().Format(service.DateLayout),
		}
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Address != "" {
		user.Address = input.Address
	}
	if input.City != "" {
		user.City = input.City
	}
	if input.Role != "" {
		user.Role = input.Role
	}
	if input.Bio != "" {
		user.Bio = input.Bio
	}
	if input.Preferences != nil {
		user.Preferences = *input.Preferences
	}
	if input.Notes != nil {
		user.Notes = *input.Notes
	}
	if user.Name == "" {
		return nil, errors.BadRequest("Name is required", nil)
	}

	if err := uc.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}
	recordActivity(ctx, uc.logRepo, fmt.Sprintf("Profile for %s updated.", user.Name), user.Name, "")
	return user, nil
}

func (uc *UserUseCase) ListUsers(ctx context.Context) ([]*entity.UserProfile, error) {
	return uc.userRepo.List(ctx)
}

// SetSuspended suspends or reactivates an account. Suspended accounts drop out of
// discovery and cannot be booked.
func (uc *UserUseCase) SetSuspended(ctx context.Context, actor Actor, userID string, suspended bool) (*entity.UserProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	status := entity.AccountActive
	if suspended {
		status = entity.AccountSuspended
	}
	if user.Status == status {
		return user, nil
	}
	user.Status = status
	if err := uc.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}
	recordActivity(ctx, uc.logRepo, fmt.Sprintf("Account for %s set to %s", user.Name, status), actor.label(), "")
	return user, nil
}
