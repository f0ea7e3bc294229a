package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/PlantCare_Go/internal/config"
	"github.com/osse101/PlantCare_Go/internal/database"
	"github.com/osse101/PlantCare_Go/internal/database/postgres"
	"github.com/osse101/PlantCare_Go/internal/database/sqlite"
	"github.com/osse101/PlantCare_Go/internal/repository"
)

// Store is the plant repository selected by STORE_DRIVER plus the handle
// that releases its connections.
type Store struct {
	Plants repository.Plant
	close  func() error
}

// Close releases the store's connections
func (s *Store) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

// InitializeStore opens the configured plant store. Postgres schemas are
// migrated before the repository is returned; sqlite is auto-migrated on open.
func InitializeStore(ctx context.Context, cfg *config.Config) (*Store, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedGetSQLiteLayer, err)
		}
		slog.Info(LogMsgStoreReady, "driver", cfg.StoreDriver, "path", cfg.SQLitePath)
		return &Store{Plants: sqlite.NewPlantRepository(db), close: sqlDB.Close}, nil

	case config.StoreDriverPostgres:
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, PostgresMaxConnIdleTime, PostgresMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateDB, err)
		}
		slog.Info(LogMsgMigrationsApplied)
		slog.Info(LogMsgStoreReady, "driver", cfg.StoreDriver, "host", cfg.DBHost, "db", cfg.DBName)
		return &Store{
			Plants: postgres.NewPlantRepository(pool),
			close: func() error {
				pool.Close()
				return nil
			},
		}, nil

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStoreDriver, cfg.StoreDriver)
	}
}
