package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/service"
	"skillio/pkg/errors"
)

func newDiscoveryUseCase(f *fixture) *DiscoveryUseCase {
	uc := NewDiscoveryUseCase(f.users, f.bookings)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestTaskersByCategory(t *testing.T) {
	f := newFixture(t)
	f.addTasker(t, "tasker_1", "Amani")
	pending := f.addTasker(t, "tasker_2", "Baraka")
	pending.ProviderStatus = entity.ProviderApplied
	require.NoError(t, f.users.Upsert(context.Background(), pending))

	uc := newDiscoveryUseCase(f)
	cards, err := uc.TaskersByCategory(context.Background(), entity.CategoryHomeHelpCleaning)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, "tasker_1", cards[0].ID)
	require.Len(t, cards[0].Services, 1)
	assert.Equal(t, "ts1", cards[0].Services[0].ID)

	none, err := uc.TaskersByCategory(context.Background(), entity.CategoryDigitalTechHelp)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = uc.TaskersByCategory(context.Background(), "Rocket Science")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestPublicProfile_Calendar(t *testing.T) {
	f := newFixture(t)
	tasker := f.addTasker(t, "tasker_1", "Amani")
	tasker.TaskerProfileSettings.BlockedDates = []string{"2025-03-20"}
	require.NoError(t, f.users.Upsert(context.Background(), tasker))
	_, err := newBookingUseCase(f).CreateBooking(context.Background(), "user_1", CreateBookingInput{ServiceID: "c1", ProviderID: "tasker_1", Date: "2025-03-12"})
	require.NoError(t, err)

	profile, err := newDiscoveryUseCase(f).PublicProfile(context.Background(), "tasker_1", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Amani", profile.Tasker.DisplayName)

	cal := profile.Calendar
	assert.Equal(t, 2025, cal.Year)
	assert.Equal(t, 3, cal.Month)
	assert.Equal(t, 5, cal.LeadingBlanks)
	assert.Equal(t, service.DayPast, cal.Days[8].Status)
	assert.Equal(t, service.DayAvailable, cal.Days[9].Status)
	assert.Equal(t, service.DayBooked, cal.Days[11].Status)
	assert.Equal(t, service.DayBlocked, cal.Days[19].Status)
}

func TestPublicProfile_HiddenTasker(t *testing.T) {
	f := newFixture(t)
	tasker := f.addTasker(t, "tasker_1", "Amani")
	tasker.TaskerProfileSettings.IsPubliclyVisible = false
	require.NoError(t, f.users.Upsert(context.Background(), tasker))

	_, err := newDiscoveryUseCase(f).PublicProfile(context.Background(), "tasker_1", 2025, time.March)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	_, err = newDiscoveryUseCase(f).PublicProfile(context.Background(), "user_1", 2025, time.March)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
