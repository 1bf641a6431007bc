package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillio/internal/domain/entity"
)

func TestUser_UpdateProfileKeepsProviderState(t *testing.T) {
	f := newFixture(t)
	f.addTasker(t, "tasker_1", "Amani")
	uc := NewUserUseCase(f.users, f.logs)
	ctx := context.Background()

	updated, err := uc.UpdateProfile(ctx, "tasker_1", UpdateProfileInput{City: "Kisumu", Notes: &entity.HouseholdNotes{PetInfo: "Cat"}})
	require.NoError(t, err)
	assert.Equal(t, "Kisumu", updated.City)
	assert.Equal(t, "Cat", updated.Notes.PetInfo)
	assert.Equal(t, entity.ProviderApproved, updated.ProviderStatus)
	assert.NotNil(t, updated.TaskerProfileSettings)
	assert.Equal(t, "Profile for Amani updated.", f.lastLog(t))
}

func TestUser_UpdateProfileCreatesMissing(t *testing.T) {
	f := newFixture(t)
	uc := NewUserUseCase(f.users, f.logs)
	ctx := context.Background()

	_, err := uc.UpdateProfile(ctx, "new-user", UpdateProfileInput{City: "Mombasa"})
	require.Error(t, err)

	created, err := uc.UpdateProfile(ctx, "new-user", UpdateProfileInput{Name: "Zawadi"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, created.Role)
	assert.Equal(t, entity.AccountActive, created.Status)

	all, err := uc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUser_SuspendHidesFromDiscovery(t *testing.T) {
	f := newFixture(t)
	f.addTasker(t, "tasker_1", "Amani")
	users := NewUserUseCase(f.users, f.logs)
	ctx := context.Background()

	suspended, err := users.SetSuspended(ctx, Actor{Admin: true, Name: "owner"}, "tasker_1", true)
	require.NoError(t, err)
	assert.True(t, suspended.IsSuspended())

	_, err = newDiscoveryUseCase(f).PublicProfile(ctx, "tasker_1", 2025, 3)
	assert.Error(t, err)

	reactivated, err := users.SetSuspended(ctx, Actor{Admin: true}, "tasker_1", false)
	require.NoError(t, err)
	assert.False(t, reactivated.IsSuspended())
}
