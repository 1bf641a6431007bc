package usecase

import (
	"context"
	"fmt"
	"time"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/internal/domain/service"
	"skillio/pkg/errors"
	"skillio/pkg/logger"
)

type ApplicationUseCase struct {
	appRepo  repository.ApplicationRepository
	userRepo repository.UserRepository
	logRepo  repository.ActivityLogRepository
	notifier Notifier
	now      func() time.Time
}

func NewApplicationUseCase(
	appRepo repository.ApplicationRepository,
	userRepo repository.UserRepository,
	logRepo repository.ActivityLogRepository,
	notifier Notifier,
) *ApplicationUseCase {
	return &ApplicationUseCase{
		appRepo:  appRepo,
		userRepo: userRepo,
		logRepo:  logRepo,
		notifier: notifierOrNop(notifier),
		now:      time.Now,
	}
}

type SubmitApplicationInput struct {
	UserName         string
	UserEmail        string
	UserPhone        string
	Skills           []string
	SpecificServices []string
	Experience       string
	Availability     string
	RequestedPricing map[string]string
	BlockedDates     []string
}

// Submit files or refiles the caller's provider application. A refiled application keeps
// its id and applied date, gets a fresh submission timestamp and loses old feedback.
func (uc *ApplicationUseCase) Submit(ctx context.Context, userID string, input SubmitApplicationInput) (*entity.ProviderApplication, error) {
	if len(input.Skills) == 0 {
		return nil, errors.BadRequest("Select at least one skill", nil)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if user != nil {
		switch user.ProviderStatus {
		case entity.ProviderApproved, entity.ProviderSuspended:
			return nil, errors.Conflict("You are already a registered provider")
		}
	}

	existing, err := uc.appRepo.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	now := uc.now()
	app := &entity.ProviderApplication{
		ID:          newReference("APP-"),
		AppliedDate: now.Format(service.DateLayout),
	}
	if existing != nil {
		if existing.Status != entity.ProviderApplied && !service.CanMoveApplication(existing.Status, entity.ProviderApplied) {
			return nil, errors.InvalidTransition("Application", string(existing.Status), string(entity.ProviderApplied))
		}
		app.ID = existing.ID
		app.AppliedDate = existing.AppliedDate
	}

	app.UserID = userID
	app.UserName = input.UserName
	app.UserEmail = input.UserEmail
	app.UserPhone = input.UserPhone
	if user != nil {
		if app.UserName == "" {
			app.UserName = user.Name
		}
		if app.UserEmail == "" {
			app.UserEmail = user.Email
		}
		if app.UserPhone == "" {
			app.UserPhone = user.Phone
		}
	}
	app.Skills = input.Skills
	app.SpecificServices = input.SpecificServices
	app.Experience = input.Experience
	app.Availability = input.Availability
	app.RequestedPricing = input.RequestedPricing
	app.BlockedDates = input.BlockedDates
	app.Status = entity.ProviderApplied
	app.SubmissionTimestamp = &now
	app.AdminFeedback = ""

	if err := uc.appRepo.Upsert(ctx, app); err != nil {
		return nil, err
	}
	if user != nil {
		uc.mirrorStatus(ctx, user, entity.ProviderApplied)
	}

	recordActivity(ctx, uc.logRepo, fmt.Sprintf("Provider application submitted by %s", app.UserName), app.UserName, "")
	uc.notifier.NotifyAdmins(event(entity.EventApplicationStatus, app))

	return app, nil
}

func (uc *ApplicationUseCase) Mine(ctx context.Context, userID string) (*entity.ProviderApplication, error) {
	return uc.appRepo.GetByUserID(ctx, userID)
}

func (uc *ApplicationUseCase) ListPending(ctx context.Context) ([]*entity.ProviderApplication, error) {
	return uc.appRepo.List(ctx, entity.ProviderApplied, entity.ProviderChangesRequired)
}

func (uc *ApplicationUseCase) List(ctx context.Context, statuses ...entity.ProviderStatus) ([]*entity.ProviderApplication, error) {
	return uc.appRepo.List(ctx, statuses...)
}

// SetStatus applies an admin decision and mirrors it onto the applicant's profile.
// Approval also opens an empty draft portfolio if the applicant has none.
func (uc *ApplicationUseCase) SetStatus(ctx context.Context, actor Actor, id string, to entity.ProviderStatus, feedback string) (*entity.ProviderApplication, error) {
	app, err := uc.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !service.CanMoveApplication(app.Status, to) {
		return nil, errors.InvalidTransition("Application", string(app.Status), string(to))
	}
	if to == entity.ProviderChangesRequired && feedback == "" {
		return nil, errors.BadRequest("Feedback is required when requesting changes", nil)
	}

	app.Status = to
	if feedback != "" {
		app.AdminFeedback = feedback
	}
	if err := uc.appRepo.Upsert(ctx, app); err != nil {
		return nil, err
	}

	if user, err := uc.userRepo.GetByID(ctx, app.UserID); err == nil {
		if to == entity.ProviderApproved && user.TaskerProfileSettings == nil {
			user.TaskerProfileSettings = newTaskerSettings(user, app)
		}
		uc.mirrorStatus(ctx, user, to)
	} else {
		logger.Warn("application %s has no matching user %s: %v", app.ID, app.UserID, err)
	}

	recordActivity(ctx, uc.logRepo, fmt.Sprintf("Application %s status updated to %s", app.ID, to), actor.label(), "")
	uc.notifier.Notify(app.UserID, event(entity.EventApplicationStatus, app))

	return app, nil
}

func (uc *ApplicationUseCase) mirrorStatus(ctx context.Context, user *entity.UserProfile, status entity.ProviderStatus) {
	user.ProviderStatus = status
	if err := uc.userRepo.Upsert(ctx, user); err != nil {
		logger.Error("failed to mirror provider status onto user %s: %v", user.ID, err)
	}
}

func newTaskerSettings(user *entity.UserProfile, app *entity.ProviderApplication) *entity.TaskerProfileSettings {
	return &entity.TaskerProfileSettings{
		DisplayName:          user.Name,
		ServiceArea:          user.City,
		Languages:            []string{},
		CustomRates:          app.RequestedPricing,
		SpecialStrengths:     []string{},
		ExperienceHighlights: []string{},
		OfferedServices:      []entity.TaskerService{},
		AvailabilityGrid:     map[string]entity.DayAvailability{},
		BlockedDates:         append([]string{}, app.BlockedDates...),
		AcceptingNewBookings: true,
		PreferredJobTypes:    []entity.Category{},
		SubmissionStatus:     entity.SubmissionDraft,
	}
}
