package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"skillio/internal/domain/entity"
	"skillio/internal/infrastructure/kvstore"
	apperrors "skillio/pkg/errors"
	"skillio/pkg/logger"
)

// Collection names. Each one is persisted under prefix+name as a single JSON document.
const (
	CollectionServices     = "services"
	CollectionBookings     = "bookings"
	CollectionReviews      = "reviews"
	CollectionApplications = "apps"
	CollectionProfile      = "profile"
	CollectionUsers        = "all_users"
	CollectionBooks        = "books"
	CollectionLogs         = "logs"
	CollectionAdmins       = "admins"
)

var Collections = []string{
	CollectionServices,
	CollectionBookings,
	CollectionReviews,
	CollectionApplications,
	CollectionProfile,
	CollectionUsers,
	CollectionBooks,
	CollectionLogs,
	CollectionAdmins,
}

// Seed is used for collections that are missing or unreadable at load time.
type Seed struct {
	Services []*entity.Service
	Profile  *entity.UserProfile
}

// Store is the typed in-memory state of the marketplace. Every mutation is written
// through to the kv backend before it becomes visible; a failed write leaves the
// previous state in place.
type Store struct {
	mu     sync.RWMutex
	kv     kvstore.Store
	prefix string

	services []*entity.Service
	bookings []*entity.Booking
	reviews  []*entity.Review
	apps     []*entity.ProviderApplication
	profile  *entity.UserProfile
	users    []*entity.UserProfile
	books    []*entity.Book
	logs     []*entity.ActivityLog
	admins   []*entity.AdminAccount
}

func NewStore(ctx context.Context, kv kvstore.Store, prefix string, seed Seed) (*Store, error) {
	s := &Store{kv: kv, prefix: prefix}
	if err := s.load(ctx, seed); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

func readCollection[T any](ctx context.Context, s *Store, name string) (T, bool, error) {
	var out T
	data, err := s.kv.Get(ctx, s.key(name))
	if errors.Is(err, kvstore.ErrNotFound) {
		return out, false, nil
	}
	if err != nil {
		return out, false, fmt.Errorf("load %s: %w", name, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		logger.Warn("snapshot %q is unreadable, using defaults: %v", name, err)
		var zero T
		return zero, false, nil
	}
	return out, true, nil
}

func (s *Store) load(ctx context.Context, seed Seed) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		ok  bool
		err error
	)

	if s.services, ok, err = readCollection[[]*entity.Service](ctx, s, CollectionServices); err != nil {
		return err
	} else if !ok {
		s.services = cloneAll(seed.Services)
	}
	if s.bookings, _, err = readCollection[[]*entity.Booking](ctx, s, CollectionBookings); err != nil {
		return err
	}
	if s.reviews, _, err = readCollection[[]*entity.Review](ctx, s, CollectionReviews); err != nil {
		return err
	}
	if s.apps, _, err = readCollection[[]*entity.ProviderApplication](ctx, s, CollectionApplications); err != nil {
		return err
	}
	if s.profile, ok, err = readCollection[*entity.UserProfile](ctx, s, CollectionProfile); err != nil {
		return err
	} else if !ok {
		s.profile = clone(seed.Profile)
	}
	usersSaved := false
	if s.users, usersSaved, err = readCollection[[]*entity.UserProfile](ctx, s, CollectionUsers); err != nil {
		return err
	}
	if s.books, _, err = readCollection[[]*entity.Book](ctx, s, CollectionBooks); err != nil {
		return err
	}
	if s.logs, _, err = readCollection[[]*entity.ActivityLog](ctx, s, CollectionLogs); err != nil {
		return err
	}
	if s.admins, _, err = readCollection[[]*entity.AdminAccount](ctx, s, CollectionAdmins); err != nil {
		return err
	}

	s.ensureNonNil()

	// The owner joins all_users only when that collection is seeded. A saved list is kept as is.
	if !usersSaved && s.profile != nil {
		s.users = append(s.users, clone(s.profile))
	}
	return nil
}

func (s *Store) ensureNonNil() {
	if s.services == nil {
		s.services = []*entity.Service{}
	}
	if s.bookings == nil {
		s.bookings = []*entity.Booking{}
	}
	if s.reviews == nil {
		s.reviews = []*entity.Review{}
	}
	if s.apps == nil {
		s.apps = []*entity.ProviderApplication{}
	}
	if s.users == nil {
		s.users = []*entity.UserProfile{}
	}
	if s.books == nil {
		s.books = []*entity.Book{}
	}
	if s.logs == nil {
		s.logs = []*entity.ActivityLog{}
	}
	if s.admins == nil {
		s.admins = []*entity.AdminAccount{}
	}
}

func (s *Store) document(name string) interface{} {
	switch name {
	case CollectionServices:
		return s.services
	case CollectionBookings:
		return s.bookings
	case CollectionReviews:
		return s.reviews
	case CollectionApplications:
		return s.apps
	case CollectionProfile:
		return s.profile
	case CollectionUsers:
		return s.users
	case CollectionBooks:
		return s.books
	case CollectionLogs:
		return s.logs
	case CollectionAdmins:
		return s.admins
	}
	return nil
}

// put writes value under the collection key. Callers hold the write lock.
func (s *Store) put(ctx context.Context, name string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return apperrors.Internal("Failed to encode "+name, err)
	}
	if err := s.kv.Put(ctx, s.key(name), data); err != nil {
		return apperrors.Internal("Failed to persist "+name, err)
	}
	return nil
}

// Snapshot encodes every collection exactly as it would be persisted.
func (s *Store) Snapshot() (map[string][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]byte, len(Collections))
	for _, name := range Collections {
		data, err := json.Marshal(s.document(name))
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", name, err)
		}
		out[name] = data
	}
	return out, nil
}

// Flush rewrites every collection to the backend.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range Collections {
		if err := s.put(ctx, name, s.document(name)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Close() error {
	return s.kv.Close()
}

func clone[T any](v *T) *T {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("clone %T: %v", v, err))
	}
	out := new(T)
	if err := json.Unmarshal(data, out); err != nil {
		panic(fmt.Sprintf("clone %T: %v", v, err))
	}
	return out
}

func cloneAll[T any](in []*T) []*T {
	out := make([]*T, 0, len(in))
	for _, v := range in {
		out = append(out, clone(v))
	}
	return out
}

func indexOfUser(users []*entity.UserProfile, id string) int {
	for i, u := range users {
		if u.ID == id {
			return i
		}
	}
	return -1
}
