package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/internal/infrastructure/kvstore"
	"skillio/pkg/errors"
)

const testPrefix = "skillio_v6_"

func testSeed() Seed {
	return Seed{
		Services: []*entity.Service{
			{ID: "s1", Title: "Math Tutoring", Price: "KES 2,000/session", DurationMinutes: 60, Category: entity.CategoryLearningTutoring, IsActive: true},
			{ID: "s2", Title: "Dog Walking", Price: "KES 500", DurationMinutes: 30, Category: entity.CategoryCommunityErrands, IsActive: false},
		},
		Profile: &entity.UserProfile{ID: "user_1", Name: "Kyla Ndungu", Role: entity.RoleStudent, Status: entity.AccountActive},
	}
}

func newTestStore(t *testing.T, kv kvstore.Store) *Store {
	t.Helper()
	store, err := NewStore(context.Background(), kv, testPrefix, testSeed())
	require.NoError(t, err)
	return store
}

func TestNewStore_SeedsMissingCollections(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, kvstore.NewMemoryStore())

	services, err := NewSnapshotServiceRepository(store).List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, services, 2)

	active, err := NewSnapshotServiceRepository(store).List(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "s1", active[0].ID)

	owner, err := NewSnapshotUserRepository(store).GetByID(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, "Kyla Ndungu", owner.Name)

	bookings, err := NewSnapshotBookingRepository(store).List(ctx, repository.BookingFilter{})
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestNewStore_CorruptCollectionFallsBackToSeed(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	require.NoError(t, kv.Put(ctx, testPrefix+CollectionServices, []byte("{not json")))
	require.NoError(t, kv.Put(ctx, testPrefix+CollectionBookings, []byte("[oops")))

	store := newTestStore(t, kv)

	services, err := NewSnapshotServiceRepository(store).List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, services, 2)

	bookings, err := NewSnapshotBookingRepository(store).List(ctx, repository.BookingFilter{})
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestStore_SnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t, kvstore.NewMemoryStore())

	bookings := NewSnapshotBookingRepository(store)
	require.NoError(t, bookings.Create(ctx, &entity.Booking{
		ID:            "BK-1",
		ServiceID:     "s1",
		ServiceTitle:  "Math Tutoring",
		CustomerName:  "Amina",
		Status:        entity.BookingRequested,
		PaymentStatus: entity.PaymentPaidToEscrow,
		Date:          "2026-10-20",
		StartTime:     "09:00",
		Type:          entity.BookingInPerson,
		CreatedAt:     time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC),
		TotalPrice:    2000,
		PlatformFee:   200,
		TaskerAmount:  1800,
	}))
	require.NoError(t, NewSnapshotReviewRepository(store).Append(ctx, &entity.Review{ID: "r1", ServiceID: "s1", Rating: 5, Comment: "Great"}))
	require.NoError(t, NewSnapshotActivityLogRepository(store).Append(ctx, &entity.ActivityLog{
		Action:    "Booked",
		User:      "Amina",
		Timestamp: time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC),
	}))

	first, err := store.Snapshot()
	require.NoError(t, err)

	replay := kvstore.NewMemoryStore()
	for name, data := range first {
		require.NoError(t, replay.Put(ctx, testPrefix+name, data))
	}
	reloaded := newTestStore(t, replay)

	second, err := reloaded.Snapshot()
	require.NoError(t, err)
	for _, name := range Collections {
		assert.JSONEq(t, string(first[name]), string(second[name]), name)
		assert.Equal(t, first[name], second[name], name)
	}
}

func TestStore_WritesThroughOnMutation(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	store := newTestStore(t, kv)

	require.NoError(t, NewSnapshotBookRepository(store).Create(ctx, &entity.Book{ID: "b1", Title: "Dune", Status: entity.BookRequested}))

	data, err := kv.Get(ctx, testPrefix+CollectionBooks)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title":"Dune"`)
}

func TestBookingRepository_CreateIfSlotFree(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotBookingRepository(newTestStore(t, kvstore.NewMemoryStore()))

	first := &entity.Booking{ProviderID: "user_1", Date: "2026-10-20", StartTime: "10:00", Status: entity.BookingConfirmed}
	require.NoError(t, repo.CreateIfSlotFree(ctx, first))
	assert.NotEmpty(t, first.ID)

	clash := &entity.Booking{ProviderID: "user_1", Date: "2026-10-20", StartTime: "10:00", Status: entity.BookingConfirmed}
	err := repo.CreateIfSlotFree(ctx, clash)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))

	first.Status = entity.BookingCancelled
	require.NoError(t, repo.Update(ctx, first))
	require.NoError(t, repo.CreateIfSlotFree(ctx, clash))
}

func TestBookingRepository_ListNewestFirstWithFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotBookingRepository(newTestStore(t, kvstore.NewMemoryStore()))

	require.NoError(t, repo.Create(ctx, &entity.Booking{ID: "a", CustomerID: "c1", Status: entity.BookingRequested}))
	require.NoError(t, repo.Create(ctx, &entity.Booking{ID: "b", CustomerID: "c2", Status: entity.BookingRequested}))
	require.NoError(t, repo.Create(ctx, &entity.Booking{ID: "c", CustomerID: "c1", Status: entity.BookingCompleted}))

	all, err := repo.List(ctx, repository.BookingFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)
	assert.Equal(t, "a", all[2].ID)

	mine, err := repo.List(ctx, repository.BookingFilter{CustomerID: "c1", Statuses: []entity.BookingStatus{entity.BookingRequested}})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "a", mine[0].ID)
}

func TestBookingRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotBookingRepository(newTestStore(t, kvstore.NewMemoryStore()))
	require.NoError(t, repo.Create(ctx, &entity.Booking{ID: "a", Status: entity.BookingRequested}))

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	got.Status = entity.BookingCompleted

	again, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, entity.BookingRequested, again.Status)
}

func TestApplicationRepository_UpsertIsKeyedByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotApplicationRepository(newTestStore(t, kvstore.NewMemoryStore()))

	require.NoError(t, repo.Upsert(ctx, &entity.ProviderApplication{ID: "APP-1", UserID: "u1", Experience: "first", Status: entity.ProviderApplied}))
	require.NoError(t, repo.Upsert(ctx, &entity.ProviderApplication{ID: "APP-1", UserID: "u1", Experience: "second", Status: entity.ProviderApplied}))
	require.NoError(t, repo.Upsert(ctx, &entity.ProviderApplication{ID: "APP-2", UserID: "u2", Status: entity.ProviderApproved}))

	apps, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, apps, 2)

	app, err := repo.GetByUserID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "second", app.Experience)

	pending, err := repo.List(ctx, entity.ProviderApplied)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "u1", pending[0].UserID)
}

func TestUserRepository_UpsertOwnerRefreshesProfile(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	store := newTestStore(t, kv)

	owner, err := NewSnapshotUserRepository(store).GetByID(ctx, "user_1")
	require.NoError(t, err)
	owner.City = "Nairobi"
	require.NoError(t, NewSnapshotUserRepository(store).Upsert(ctx, owner))

	data, err := kv.Get(ctx, testPrefix+CollectionProfile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"city":"Nairobi"`)
}

func TestReviewRepository_SetFlags(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotReviewRepository(newTestStore(t, kvstore.NewMemoryStore()))
	require.NoError(t, repo.Append(ctx, &entity.Review{ID: "r1", Rating: 4, Comment: "Kind"}))

	updated, err := repo.SetFlags(ctx, "r1", true, true)
	require.NoError(t, err)
	assert.True(t, updated.IsVerified)
	assert.True(t, updated.IsFeatured)
	assert.Equal(t, "Kind", updated.Comment)

	_, err = repo.SetFlags(ctx, "missing", true, false)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestActivityLogRepository_ListAndPrune(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotActivityLogRepository(newTestStore(t, kvstore.NewMemoryStore()))

	for _, action := range []string{"one", "two", "three", "four"} {
		require.NoError(t, repo.Append(ctx, &entity.ActivityLog{Action: action, User: entity.SystemActor}))
	}

	page, total, err := repo.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, page, 2)
	assert.Equal(t, "three", page[0].Action)
	assert.Equal(t, "two", page[1].Action)

	removed, err := repo.Prune(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	remaining, total, err := repo.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, "four", remaining[0].Action)
}

func TestAdminRepository_UsernamesAreUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotAdminRepository(newTestStore(t, kvstore.NewMemoryStore()))

	require.NoError(t, repo.Create(ctx, &entity.AdminAccount{Username: "owner", Role: entity.AdminSuperOwner}))
	err := repo.Create(ctx, &entity.AdminAccount{Username: "Owner", Role: entity.AdminStaff})
	assert.True(t, errors.Is(err, "CONFLICT"))

	found, err := repo.GetByUsername(ctx, "OWNER")
	require.NoError(t, err)
	assert.Equal(t, entity.AdminSuperOwner, found.Role)
}

func TestStore_SQLiteBackendSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := t.TempDir() + "/skillio.db"

	kv, err := kvstore.OpenSQLite(path)
	require.NoError(t, err)
	store := newTestStore(t, kv)
	require.NoError(t, NewSnapshotBookRepository(store).Create(ctx, &entity.Book{ID: "b1", Title: "Half of a Yellow Sun", Status: entity.BookRequested}))
	require.NoError(t, store.Close())

	reopened, err := kvstore.OpenSQLite(path)
	require.NoError(t, err)
	again := newTestStore(t, reopened)
	defer again.Close()

	book, err := NewSnapshotBookRepository(again).GetByID(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "Half of a Yellow Sun", book.Title)
}

func TestNewStore_KeepsSavedUserListAsIs(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()

	profile, err := json.Marshal(&entity.UserProfile{ID: "user_1", Name: "Kyla Ndungu", Role: entity.RoleStudent, Status: entity.AccountActive})
	require.NoError(t, err)
	require.NoError(t, kv.Put(ctx, testPrefix+CollectionProfile, profile))
	require.NoError(t, kv.Put(ctx, testPrefix+CollectionUsers, []byte("[]")))

	store := newTestStore(t, kv)
	snapshot, err := store.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(snapshot[CollectionUsers]))
	assert.Equal(t, profile, snapshot[CollectionProfile])

	users := NewSnapshotUserRepository(store)
	owner, err := users.GetByID(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, "Kyla Ndungu", owner.Name)

	all, err := users.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
