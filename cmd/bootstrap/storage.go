package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	"tour-storefront/internal/infra/kvstore"
	"tour-storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewKVStore,
	),
)

// NewKVStore picks the visitor storage backend; memory is meant for local runs and tests.
func NewKVStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (kvstore.Store, error) {
	if strings.ToLower(cfg.Storage.Driver) == config.StorageMemory {
		logger.Warn("in-memory visitor storage: carts and sessions are lost on restart")
		return kvstore.NewMemoryStore(), nil
	}

	client, cleanup, err := kvstore.Connect(context.Background(), cfg.Storage)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return kvstore.NewRedisStore(client, cfg.Storage, logger), nil
}
