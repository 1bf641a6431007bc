package usecase

import (
	"context"
	"time"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/internal/domain/service"
	"skillio/pkg/errors"
)

type DiscoveryUseCase struct {
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	now         func() time.Time
}

func NewDiscoveryUseCase(userRepo repository.UserRepository, bookingRepo repository.BookingRepository) *DiscoveryUseCase {
	return &DiscoveryUseCase{
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		now:         time.Now,
	}
}

// TaskerCard is the public face of a tasker. Contact details and household notes
// never leave the profile.
type TaskerCard struct {
	ID               string                 `json:"id"`
	DisplayName      string                 `json:"displayName"`
	Headline         string                 `json:"headline"`
	PhotoURL         string                 `json:"photoUrl"`
	PublicBio        string                 `json:"publicBio"`
	ServiceArea      string                 `json:"serviceArea"`
	Languages        []string               `json:"languages"`
	ExperienceLevel  string                 `json:"experienceLevel"`
	YearsExperience  *int                   `json:"yearsExperience,omitempty"`
	SpecialStrengths []string               `json:"specialStrengths"`
	WorkingStyle     string                 `json:"workingStyle"`
	IntroMessage     string                 `json:"introMessage"`
	Accepting        bool                   `json:"acceptingNewBookings"`
	Services         []entity.TaskerService `json:"services"`
}

func newTaskerCard(u *entity.UserProfile) TaskerCard {
	s := u.TaskerProfileSettings
	name := s.DisplayName
	if name == "" {
		name = u.Name
	}
	return TaskerCard{
		ID:               u.ID,
		DisplayName:      name,
		Headline:         s.Headline,
		PhotoURL:         s.PhotoURL,
		PublicBio:        s.PublicBio,
		ServiceArea:      s.ServiceArea,
		Languages:        s.Languages,
		ExperienceLevel:  s.ExperienceLevel,
		YearsExperience:  s.YearsExperience,
		SpecialStrengths: s.SpecialStrengths,
		WorkingStyle:     s.WorkingStyle,
		IntroMessage:     s.IntroMessage,
		Accepting:        s.AcceptingNewBookings && !s.IsUnavailableMode,
		Services:         service.PublishedServices(s),
	}
}

func (uc *DiscoveryUseCase) TaskersByCategory(ctx context.Context, category entity.Category) ([]TaskerCard, error) {
	if !category.Valid() {
		return nil, errors.BadRequest("Unknown category", nil)
	}
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	taskers := service.DiscoverTaskers(users, category)
	cards := make([]TaskerCard, 0, len(taskers))
	for _, u := range taskers {
		cards = append(cards, newTaskerCard(u))
	}
	return cards, nil
}

type PublicProfile struct {
	Tasker   TaskerCard        `json:"tasker"`
	Calendar *service.Calendar `json:"calendar"`
}

// PublicProfile shows a tasker with a month of availability. Only fully approved,
// visible taskers have a public profile.
func (uc *DiscoveryUseCase) PublicProfile(ctx context.Context, id string, year int, month time.Month) (*PublicProfile, error) {
	u, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isPublic(u) {
		return nil, errors.NotFound("Tasker", nil)
	}

	now := uc.now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}

	bookings, err := uc.bookingRepo.List(ctx, repository.BookingFilter{ProviderID: id})
	if err != nil {
		return nil, err
	}
	cal, err := service.MonthCalendar(year, month, now, id, u.TaskerProfileSettings.BlockedDates, bookings)
	if err != nil {
		return nil, err
	}
	return &PublicProfile{Tasker: newTaskerCard(u), Calendar: cal}, nil
}

func isPublic(u *entity.UserProfile) bool {
	s := u.TaskerProfileSettings
	return s != nil &&
		u.ProviderStatus == entity.ProviderApproved &&
		s.SubmissionStatus == entity.SubmissionApproved &&
		s.IsPubliclyVisible &&
		!s.IsDeactivated &&
		!u.IsSuspended()
}
