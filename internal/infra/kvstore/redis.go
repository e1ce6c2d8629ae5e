package kvstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"tour-storefront/internal/pkg/config"
	"tour-storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func Connect(ctx context.Context, cfg config.StorageConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		PoolSize: cfg.RedisPoolSize,
	})

	// Test the connection
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.RedisAddr, err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Error("Error closing redis client", "error", err)
		}
	}

	return client, cleanup, nil
}

type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisStore(client *redis.Client, cfg config.StorageConfig, logger *slog.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: cfg.KeyPrefix,
		ttl:    cfg.EntryTTL,
		logger: logger,
	}
}

func (s *RedisStore) Get(ctx context.Context, visitorID uuid.UUID, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, namespacedKey(s.prefix, visitorID, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		s.logger.Error("redis get failed", "key", key, "error", err)
		return nil, false, errs.Mark(errs.Wrap(err, "redis get "+key), errs.ErrStorageOperationFailed)
	}
	return val, true, nil
}

// Set writes the value; with a zero TTL the entry never expires.
func (s *RedisStore) Set(ctx context.Context, visitorID uuid.UUID, key string, value []byte) error {
	if err := s.client.Set(ctx, namespacedKey(s.prefix, visitorID, key), value, s.ttl).Err(); err != nil {
		s.logger.Error("redis set failed", "key", key, "error", err)
		return errs.Mark(errs.Wrap(err, "redis set "+key), errs.ErrStorageOperationFailed)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, visitorID uuid.UUID, key string) error {
	if err := s.client.Del(ctx, namespacedKey(s.prefix, visitorID, key)).Err(); err != nil {
		s.logger.Error("redis delete failed", "key", key, "error", err)
		return errs.Mark(errs.Wrap(err, "redis delete "+key), errs.ErrStorageOperationFailed)
	}
	return nil
}
