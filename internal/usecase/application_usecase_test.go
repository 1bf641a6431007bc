package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillio/internal/domain/entity"
	"skillio/pkg/errors"
)

func newApplicationUseCase(f *fixture, now *time.Time) *ApplicationUseCase {
	uc := NewApplicationUseCase(f.apps, f.users, f.logs, f.notifier)
	uc.now = func() time.Time { return *now }
	return uc
}

func addApplicant(t *testing.T, f *fixture, id string) {
	t.Helper()
	require.NoError(t, f.users.Upsert(context.Background(), &entity.UserProfile{
		ID: id, Name: "Wanjiru", Email: "wanjiru@example.com", Phone: "+254 711 000 000", City: "Nairobi",
		Role: entity.RoleStudent, Status: entity.AccountActive,
	}))
}

func TestApplication_SubmitMirrorsProfile(t *testing.T) {
	f := newFixture(t)
	addApplicant(t, f, "u2")
	now := fixedNow
	uc := newApplicationUseCase(f, &now)

	app, err := uc.Submit(context.Background(), "u2", SubmitApplicationInput{
		Skills:           []string{string(entity.CategoryHomeHelpCleaning)},
		RequestedPricing: map[string]string{"Room tidying": "KES 300"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ProviderApplied, app.Status)
	assert.Equal(t, "Wanjiru", app.UserName)
	assert.Equal(t, "2025-03-10", app.AppliedDate)
	assert.Equal(t, "Provider application submitted by Wanjiru", f.lastLog(t))

	user, err := f.users.GetByID(context.Background(), "u2")
	require.NoError(t, err)
	assert.Equal(t, entity.ProviderApplied, user.ProviderStatus)
}

func TestApplication_ResubmitAfterChangesRequired(t *testing.T) {
	f := newFixture(t)
	addApplicant(t, f, "u2")
	now := fixedNow
	uc := newApplicationUseCase(f, &now)
	ctx := context.Background()
	admin := Actor{ID: "adm", Name: "owner", Admin: true}

	first, err := uc.Submit(ctx, "u2", SubmitApplicationInput{Skills: []string{"Learning & Tutoring"}})
	require.NoError(t, err)

	_, err = uc.SetStatus(ctx, admin, first.ID, entity.ProviderChangesRequired, "")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	flagged, err := uc.SetStatus(ctx, admin, first.ID, entity.ProviderChangesRequired, "Please add your school name")
	require.NoError(t, err)
	assert.Equal(t, "Please add your school name", flagged.AdminFeedback)

	now = fixedNow.Add(48 * time.Hour)
	second, err := uc.Submit(ctx, "u2", SubmitApplicationInput{Skills: []string{"Learning & Tutoring"}, Experience: "Grade 6"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.AppliedDate, second.AppliedDate)
	assert.Equal(t, entity.ProviderApplied, second.Status)
	assert.Empty(t, second.AdminFeedback)
	require.NotNil(t, second.SubmissionTimestamp)
	assert.True(t, second.SubmissionTimestamp.After(*first.SubmissionTimestamp))

	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestApplication_ApprovalOpensDraftPortfolio(t *testing.T) {
	f := newFixture(t)
	addApplicant(t, f, "u2")
	now := fixedNow
	uc := newApplicationUseCase(f, &now)
	ctx := context.Background()

	app, err := uc.Submit(ctx, "u2", SubmitApplicationInput{Skills: []string{"Learning & Tutoring"}, BlockedDates: []string{"2025-03-20"}})
	require.NoError(t, err)

	pending, err := uc.ListPending(ctx)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	approved, err := uc.SetStatus(ctx, Actor{Admin: true, Name: "owner"}, app.ID, entity.ProviderApproved, "")
	require.NoError(t, err)
	assert.Equal(t, entity.ProviderApproved, approved.Status)
	assert.Equal(t, "Application "+app.ID+" status updated to approved", f.lastLog(t))
	assert.Contains(t, f.notifier.sentTo("u2"), entity.EventApplicationStatus)

	user, err := f.users.GetByID(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, entity.ProviderApproved, user.ProviderStatus)
	require.NotNil(t, user.TaskerProfileSettings)
	assert.Equal(t, entity.SubmissionDraft, user.TaskerProfileSettings.SubmissionStatus)
	assert.Equal(t, []string{"2025-03-20"}, user.TaskerProfileSettings.BlockedDates)

	_, err = uc.Submit(ctx, "u2", SubmitApplicationInput{Skills: []string{"Learning & Tutoring"}})
	assert.True(t, errors.Is(err, "CONFLICT"))

	_, err = uc.SetStatus(ctx, Actor{Admin: true}, app.ID, entity.ProviderApplied, "")
	assert.True(t, errors.Is(err, "INVALID_TRANSITION"))
}
