package main

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/iterator"

	"skillio/internal/adapter/api/handler"
	"skillio/internal/adapter/repository"
	domainrepo "skillio/internal/domain/repository"
	"skillio/internal/infrastructure/catalog"
	"skillio/internal/infrastructure/firebase"
	"skillio/internal/infrastructure/kvstore"
	"skillio/pkg/config"
	"skillio/pkg/logger"
)

type repositories struct {
	services     domainrepo.ServiceRepository
	bookings     domainrepo.BookingRepository
	users        domainrepo.UserRepository
	applications domainrepo.ApplicationRepository
	reviews      domainrepo.ReviewRepository
	books        domainrepo.BookRepository
	logs         domainrepo.ActivityLogRepository
	admins       domainrepo.AdminRepository

	// store is nil for the firestore backend, which persists per document.
	store  *repository.Store
	health handler.HealthCheck
	close  func()
}

func openKVStore(ctx context.Context, cfg *config.Config) (kvstore.Store, error) {
	switch cfg.StorageBackend {
	case "memory":
		return kvstore.NewMemoryStore(), nil
	case "sqlite":
		return kvstore.OpenSQLite(cfg.SQLitePath)
	case "redis":
		return kvstore.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

func openSnapshotRepositories(ctx context.Context, cfg *config.Config, cat *catalog.Catalog) (*repositories, error) {
	kv, err := openKVStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := repository.NewStore(ctx, kv, cfg.SnapshotPrefix, repository.Seed{
		Services: cat.Services,
		Profile:  cat.Profile,
	})
	if err != nil {
		kv.Close()
		return nil, err
	}

	probeKey := cfg.SnapshotPrefix + repository.CollectionServices
	return &repositories{
		services:     repository.NewSnapshotServiceRepository(store),
		bookings:     repository.NewSnapshotBookingRepository(store),
		users:        repository.NewSnapshotUserRepository(store),
		applications: repository.NewSnapshotApplicationRepository(store),
		reviews:      repository.NewSnapshotReviewRepository(store),
		books:        repository.NewSnapshotBookRepository(store),
		logs:         repository.NewSnapshotActivityLogRepository(store),
		admins:       repository.NewSnapshotAdminRepository(store),
		store:        store,
		health: func(ctx context.Context) error {
			if _, err := kv.Get(ctx, probeKey); err != nil && !errors.Is(err, kvstore.ErrNotFound) {
				return err
			}
			return nil
		},
		close: func() {
			if err := store.Flush(context.Background()); err != nil {
				logger.Error("final snapshot flush failed: %v", err)
			}
			if err := store.Close(); err != nil {
				logger.Warn("closing kv store: %v", err)
			}
		},
	}, nil
}

func openFirestoreRepositories(ctx context.Context, clients *firebase.Clients, cat *catalog.Catalog) (*repositories, error) {
	fs := clients.Firestore
	repos := &repositories{
		services:     repository.NewFirestoreServiceRepository(fs),
		bookings:     repository.NewFirestoreBookingRepository(fs),
		users:        repository.NewFirestoreUserRepository(fs),
		applications: repository.NewFirestoreApplicationRepository(fs),
		reviews:      repository.NewFirestoreReviewRepository(fs),
		books:        repository.NewFirestoreBookRepository(fs),
		logs:         repository.NewFirestoreActivityLogRepository(fs),
		admins:       repository.NewFirestoreAdminRepository(fs),
		health: func(ctx context.Context) error {
			_, err := fs.Collection("services").Limit(1).Documents(ctx).Next()
			if err != nil && err != iterator.Done {
				return err
			}
			return nil
		},
		close: func() {},
	}

	if err := seedFirestore(ctx, repos, cat); err != nil {
		return nil, err
	}
	return repos, nil
}

// seedFirestore loads the catalog services and owner profile into an empty project.
func seedFirestore(ctx context.Context, repos *repositories, cat *catalog.Catalog) error {
	existing, err := repos.services.List(ctx, false)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, svc := range cat.Services {
		if err := repos.services.Create(ctx, svc); err != nil {
			return fmt.Errorf("seed service %s: %w", svc.ID, err)
		}
	}
	if cat.Profile != nil {
		if err := repos.users.Upsert(ctx, cat.Profile); err != nil {
			return fmt.Errorf("seed owner profile: %w", err)
		}
	}
	logger.Info("seeded firestore with %d catalog services", len(cat.Services))
	return nil
}
