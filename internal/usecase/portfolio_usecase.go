package usecase

import (
	"context"
	"fmt"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/internal/domain/service"
	"skillio/pkg/errors"
	"skillio/pkg/logger"
)

// PortfolioUseCase drives the tasker portfolio review cycle, which runs separately from
// identity approval.
type PortfolioUseCase struct {
	userRepo repository.UserRepository
	appRepo  repository.ApplicationRepository
	logRepo  repository.ActivityLogRepository
	notifier Notifier
}

func NewPortfolioUseCase(
	userRepo repository.UserRepository,
	appRepo repository.ApplicationRepository,
	logRepo repository.ActivityLogRepository,
	notifier Notifier,
) *PortfolioUseCase {
	return &PortfolioUseCase{
		userRepo: userRepo,
		appRepo:  appRepo,
		logRepo:  logRepo,
		notifier: notifierOrNop(notifier),
	}
}

func (uc *PortfolioUseCase) editableProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	switch user.ProviderStatus {
	case entity.ProviderApproved, entity.ProviderChangesRequired:
	default:
		return nil, errors.Forbidden("Only approved providers can edit a portfolio", nil)
	}
	if user.TaskerProfileSettings == nil {
		return nil, errors.NotFound("Portfolio", nil)
	}
	return user, nil
}

// UpdateSettings saves the tasker's edits. Review state and per-service publish state stay
// under admin control; new services start as drafts.
func (uc *PortfolioUseCase) UpdateSettings(ctx context.Context, userID string, settings entity.TaskerProfileSettings) (*entity.UserProfile, error) {
	user, err := uc.editableProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	current := user.TaskerProfileSettings

	published := make(map[string]entity.PublishState, len(current.OfferedServices))
	for _, s := range current.OfferedServices {
		published[s.ID] = s.PublishState
	}
	for i := range settings.OfferedServices {
		svc := &settings.OfferedServices[i]
		if svc.ID == "" {
			svc.ID = newReference("TS-")
		}
		if !svc.Category.Valid() {
			return nil, errors.BadRequest(fmt.Sprintf("Unknown category %q", svc.Category), nil)
		}
		if svc.Price < 0 {
			return nil, errors.BadRequest("Service price cannot be negative", nil)
		}
		if state, ok := published[svc.ID]; ok {
			svc.PublishState = state
		} else {
			svc.PublishState = entity.PublishDraft
		}
	}

	settings.SubmissionStatus = current.SubmissionStatus
	settings.PendingApproval = current.PendingApproval
	user.TaskerProfileSettings = &settings

	if err := uc.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Submit sends a draft portfolio to the admins. Draft services go along with it.
func (uc *PortfolioUseCase) Submit(ctx context.Context, userID string) (*entity.UserProfile, error) {
	user, err := uc.editableProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	s := user.TaskerProfileSettings
	if !s.AcceptedGuidelines {
		return nil, errors.BadRequest("Accept the community guidelines before submitting", nil)
	}
	if err := uc.move(s, entity.SubmissionSubmitted); err != nil {
		return nil, err
	}
	for i := range s.OfferedServices {
		if s.OfferedServices[i].PublishState == entity.PublishDraft {
			s.OfferedServices[i].PublishState = entity.PublishSubmitted
		}
	}
	s.PendingApproval = true

	if err := uc.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}

	recordActivity(ctx, uc.logRepo, fmt.Sprintf("Portfolio submitted by %s", user.Name), user.Name, "")
	uc.notifier.NotifyAdmins(event(entity.EventPortfolioSubmitted, user))
	return user, nil
}

func (uc *PortfolioUseCase) ListSubmitted(ctx context.Context) ([]*entity.UserProfile, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.UserProfile, 0)
	for _, u := range users {
		if u.TaskerProfileSettings != nil && u.TaskerProfileSettings.SubmissionStatus == entity.SubmissionSubmitted {
			out = append(out, u)
		}
	}
	return out, nil
}

// Approve publishes the portfolio and every service submitted with it. An application left
// in changes_required by an earlier portfolio review is restored to approved.
func (uc *PortfolioUseCase) Approve(ctx context.Context, actor Actor, userID, feedback string) (*entity.UserProfile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s := user.TaskerProfileSettings
	if s == nil {
		return nil, errors.NotFound("Portfolio", nil)
	}
	if err := uc.move(s, entity.SubmissionApproved); err != nil {
		return nil, err
	}
	for i := range s.OfferedServices {
		if s.OfferedServices[i].PublishState == entity.PublishSubmitted {
			s.OfferedServices[i].PublishState = entity.PublishApproved
		}
	}
	s.PendingApproval = false

	// Only an application held back by portfolio feedback is restored. Suspensions and
	// unreviewed applications stay with the application reviewers.
	if uc.updateApplication(ctx, userID, entity.ProviderChangesRequired, entity.ProviderApproved, feedback) {
		user.ProviderStatus = entity.ProviderApproved
	}

	if err := uc.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}

	recordActivity(ctx, uc.logRepo, fmt.Sprintf("Portfolio for %s approved", user.Name), actor.label(), "")
	uc.notifier.Notify(userID, event(entity.EventPortfolioReviewed, s))
	return user, nil
}

// RequestChanges returns the portfolio to draft and marks the application changes_required
// with the admin's feedback.
func (uc *PortfolioUseCase) RequestChanges(ctx context.Context, actor Actor, userID, feedback string) (*entity.UserProfile, error) {
	if feedback == "" {
		return nil, errors.BadRequest("Feedback is required when requesting changes", nil)
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s := user.TaskerProfileSettings
	if s == nil {
		return nil, errors.NotFound("Portfolio", nil)
	}
	if err := uc.move(s, entity.SubmissionDraft); err != nil {
		return nil, err
	}
	for i := range s.OfferedServices {
		if s.OfferedServices[i].PublishState == entity.PublishSubmitted {
			s.OfferedServices[i].PublishState = entity.PublishDraft
		}
	}
	s.PendingApproval = false

	if uc.updateApplication(ctx, userID, "", entity.ProviderChangesRequired, feedback) {
		user.ProviderStatus = entity.ProviderChangesRequired
	}

	if err := uc.userRepo.Upsert(ctx, user); err != nil {
		return nil, err
	}

	recordActivity(ctx, uc.logRepo, fmt.Sprintf("Changes requested on portfolio for %s", user.Name), actor.label(), "")
	uc.notifier.Notify(userID, event(entity.EventPortfolioReviewed, s))
	return user, nil
}

func (uc *PortfolioUseCase) move(s *entity.TaskerProfileSettings, to entity.SubmissionStatus) error {
	from := s.SubmissionStatus
	if from == "" {
		from = entity.SubmissionDraft
	}
	if !service.CanMovePortfolio(from, to) {
		return errors.InvalidTransition("Portfolio", string(from), string(to))
	}
	s.SubmissionStatus = to
	return nil
}

// updateApplication records portfolio feedback on the user's application and moves it to
// status when allowed. A non-empty from restricts the move to applications currently in
// that status. It reports whether the status changed.
func (uc *PortfolioUseCase) updateApplication(ctx context.Context, userID string, from, status entity.ProviderStatus, feedback string) bool {
	app, err := uc.appRepo.GetByUserID(ctx, userID)
	if err != nil {
		return false
	}
	moved := false
	if (from == "" || app.Status == from) && app.Status != status && service.CanMoveApplication(app.Status, status) {
		app.Status = status
		moved = true
	}
	if feedback != "" {
		app.AdminFeedback = feedback
	}
	if !moved && feedback == "" {
		return false
	}
	if err := uc.appRepo.Upsert(ctx, app); err != nil {
		logger.Error("failed to update application for %s: %v", userID, err)
		return false
	}
	return moved
}
