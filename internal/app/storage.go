package app

import (
	"context"
	"fmt"

	"github.com/fastygo/dashboard/internal/config"
	"github.com/fastygo/dashboard/internal/infrastructure/localstore"
	"github.com/fastygo/dashboard/internal/infrastructure/memkv"
	redisInfra "github.com/fastygo/dashboard/internal/infrastructure/redis"
	"github.com/fastygo/dashboard/repository"
)

// OpenStorage opens the key-value store selected by STORAGE_DRIVER.
func OpenStorage(ctx context.Context, cfg *config.Config) (repository.KeyValueStore, error) {
	switch cfg.Storage.Driver {
	case config.DriverBolt:
		store, err := localstore.Open(cfg.Storage.BoltPath, cfg.Storage.BoltBucket)
		if err != nil {
			return nil, fmt.Errorf("open bolt store %s: %w", cfg.Storage.BoltPath, err)
		}
		return store, nil
	case config.DriverRedis:
		store, err := redisInfra.Dial(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return store, nil
	case config.DriverMemory:
		return memkv.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
