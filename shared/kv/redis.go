package kv

import (
	"context"
	"errors"
	"fmt"
	"paradise/config"
	"paradise/infras/otel"
	"paradise/shared/constant"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type redisStore struct {
	client *goRedis.Client
	otel   otel.Otel
}

// NewRedisStore persists values as plain Redis strings without expiry.
func NewRedisStore(client *goRedis.Client, ot otel.Otel) Store {
	return &redisStore{
		client: client,
		otel:   ot,
	}
}

// Get implements Store.
func (store *redisStore) Get(ctx context.Context, key string) (string, error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Get")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		constant.OtelKeyAttribute:    key,
		constant.OtelDriverAttribute: config.StorageDriverRedis,
	})

	value, err := store.client.Get(ctx, key).Result()
	if errors.Is(err, goRedis.Nil) {
		return "", Nil
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Str("RedisStore", "Get").Msg("failed to get value")

		return "", fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set implements Store.
func (store *redisStore) Set(ctx context.Context, key, value string) (err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Set")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		constant.OtelKeyAttribute:    key,
		constant.OtelDriverAttribute: config.StorageDriverRedis,
	})

	if err = store.client.Set(ctx, key, value, 0).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Str("RedisStore", "Set").Msg("failed to set value")

		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}
