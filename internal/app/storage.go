package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Rkreels/powerbi-sub001/internal/adapter/collection"
	"github.com/Rkreels/powerbi-sub001/internal/adapter/memory"
	"github.com/Rkreels/powerbi-sub001/internal/adapter/postgres"
	"github.com/Rkreels/powerbi-sub001/internal/adapter/postgres/kv"
	"github.com/Rkreels/powerbi-sub001/internal/config"
	"github.com/Rkreels/powerbi-sub001/internal/domain"
	"github.com/Rkreels/powerbi-sub001/internal/service/data"
)

type kvStore interface {
	collection.Store
	Ping(ctx context.Context) error
}

// Storage is the key-value backend behind the entity collections.
type Storage struct {
	Driver string
	store  kvStore
	tx     collection.TxManager
	close  func()
}

// OpenStorage connects the configured backend. For postgres the pool is
// opened and, unless disabled, migrations are applied.
func OpenStorage(ctx context.Context, cfg config.Config, log *slog.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if cfg.Database.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, log); err != nil {
				pool.Close()
				return nil, err
			}
		}
		return &Storage{
			Driver: config.DriverPostgres,
			store:  kv.New(pool),
			tx:     postgres.NewTxManager(pool),
			close:  pool.Close,
		}, nil

	case config.DriverMemory, "":
		store := memory.NewStore()
		return &Storage{
			Driver: config.DriverMemory,
			store:  store,
			tx:     store,
			close:  func() {},
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// Ping checks the backend is reachable.
func (s *Storage) Ping(ctx context.Context) error { return s.store.Ping(ctx) }

// Close releases backend resources.
func (s *Storage) Close() { s.close() }

// Repositories binds the five entity collections under prefix.
func (s *Storage) Repositories(prefix string) data.Repositories {
	return data.Repositories{
		Reports:       collection.New[domain.Report](s.store, s.tx, collection.Key(prefix, collection.Reports)),
		Dashboards:    collection.New[domain.Dashboard](s.store, s.tx, collection.Key(prefix, collection.Dashboards)),
		Datasets:      collection.New[domain.Dataset](s.store, s.tx, collection.Key(prefix, collection.Datasets)),
		Workspaces:    collection.New[domain.Workspace](s.store, s.tx, collection.Key(prefix, collection.Workspaces)),
		Notifications: collection.New[domain.Notification](s.store, s.tx, collection.Key(prefix, collection.Notifications)),
	}
}
