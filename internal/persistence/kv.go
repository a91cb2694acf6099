package persistence

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/elegance-studio/salon-service/internal/config"
)

// ErrKeyNotFound is returned by Get when no record exists for the key.
var ErrKeyNotFound = errors.New("key not found")

// Store is the durable key-value mirror behind the in-memory
// collections. Each collection is serialized in full under a single key
// on every mutation; the in-memory copy stays authoritative.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// Open constructs the Store selected by cfg.Backend.
func Open(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (Store, error) {
	switch cfg.Backend {
	case config.StorageBackendFile, "":
		fs, err := NewFileStore(cfg.DataDir, logger)
		if err != nil {
			return nil, err
		}
		return fs, nil
	case config.StorageBackendRedis:
		return NewRedis(cfg.Redis, logger), nil
	case config.StorageBackendPostgres:
		pg, err := NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			return nil, err
		}
		if cfg.Postgres.RunMigrations {
			if err := RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				pg.Close()
				return nil, err
			}
		}
		return pg, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
