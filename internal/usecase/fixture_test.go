package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	repo "skillio/internal/adapter/repository"
	"skillio/internal/domain/entity"
	"skillio/internal/domain/repository"
	"skillio/internal/domain/service"
	"skillio/internal/infrastructure/catalog"
	"skillio/internal/infrastructure/kvstore"
)

var fixedNow = time.Date(2025, time.March, 10, 9, 30, 0, 0, time.UTC)

type fixture struct {
	store    *repo.Store
	services repository.ServiceRepository
	bookings repository.BookingRepository
	users    repository.UserRepository
	apps     repository.ApplicationRepository
	reviews  repository.ReviewRepository
	books    repository.BookRepository
	logs     repository.ActivityLogRepository
	admins   repository.AdminRepository
	gateway  *fakeGateway
	notifier *recordingNotifier
	catalog  *catalog.Catalog
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cat := catalog.Default()
	store, err := repo.NewStore(context.Background(), kvstore.NewMemoryStore(), "test_", repo.Seed{
		Services: cat.Services,
		Profile:  cat.Profile,
	})
	require.NoError(t, err)

	return &fixture{
		store:    store,
		services: repo.NewSnapshotServiceRepository(store),
		bookings: repo.NewSnapshotBookingRepository(store),
		users:    repo.NewSnapshotUserRepository(store),
		apps:     repo.NewSnapshotApplicationRepository(store),
		reviews:  repo.NewSnapshotReviewRepository(store),
		books:    repo.NewSnapshotBookRepository(store),
		logs:     repo.NewSnapshotActivityLogRepository(store),
		admins:   repo.NewSnapshotAdminRepository(store),
		gateway:  &fakeGateway{},
		notifier: &recordingNotifier{},
		catalog:  cat,
	}
}

func (f *fixture) lastLog(t *testing.T) string {
	t.Helper()
	logs, _, err := f.logs.List(context.Background(), 0, 1)
	require.NoError(t, err)
	require.NotEmpty(t, logs)
	return logs[0].Action
}

// addTasker stores a fully approved, publicly visible tasker offering one cleaning service.
func (f *fixture) addTasker(t *testing.T, id, name string) *entity.UserProfile {
	t.Helper()
	u := &entity.UserProfile{
		ID:             id,
		Name:           name,
		Email:          id + "@example.com",
		Role:           entity.RoleStudent,
		Status:         entity.AccountActive,
		ProviderStatus: entity.ProviderApproved,
		TaskerProfileSettings: &entity.TaskerProfileSettings{
			DisplayName:          name,
			IsPubliclyVisible:    true,
			AcceptingNewBookings: true,
			SubmissionStatus:     entity.SubmissionApproved,
			AcceptedGuidelines:   true,
			OfferedServices: []entity.TaskerService{
				{ID: "ts1", Title: "Room tidying", Category: entity.CategoryHomeHelpCleaning, IsActive: true, PublishState: entity.PublishApproved, Price: 300},
				{ID: "ts2", Title: "Car wash", Category: entity.CategoryHomeHelpCleaning, IsActive: true, PublishState: entity.PublishDraft, Price: 500},
			},
		},
	}
	require.NoError(t, f.users.Upsert(context.Background(), u))
	return u
}

type fakeGateway struct {
	mu       sync.Mutex
	err      error
	captured []service.EscrowRequest
	released []service.EscrowRequest
	refunded []service.EscrowRequest
}

func (g *fakeGateway) receipt(req service.EscrowRequest) *service.EscrowReceipt {
	return &service.EscrowReceipt{Reference: "MP-TEST", BookingID: req.BookingID, Amount: req.Amount, Channel: "test", ProcessedAt: fixedNow}
}

func (g *fakeGateway) Capture(_ context.Context, req service.EscrowRequest) (*service.EscrowReceipt, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	g.captured = append(g.captured, req)
	return g.receipt(req), nil
}

func (g *fakeGateway) Release(_ context.Context, req service.EscrowRequest) (*service.EscrowReceipt, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	g.released = append(g.released, req)
	return g.receipt(req), nil
}

func (g *fakeGateway) Refund(_ context.Context, req service.EscrowRequest) (*service.EscrowReceipt, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.err != nil {
		return nil, g.err
	}
	g.refunded = append(g.refunded, req)
	return g.receipt(req), nil
}

type sentEvent struct {
	to    string
	event entity.Event
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []sentEvent
}

func (n *recordingNotifier) Notify(userID string, ev entity.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, sentEvent{to: userID, event: ev})
}

func (n *recordingNotifier) NotifyAdmins(ev entity.Event) {
	n.Notify("admin", ev)
}

func (n *recordingNotifier) sentTo(userID string) []entity.EventType {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []entity.EventType
	for _, e := range n.events {
		if e.to == userID {
			out = append(out, e.event.Type)
		}
	}
	return out
}
