package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"paradise/config"
	"paradise/infras/otel"
	"paradise/infras/postgres"
	"paradise/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	queryGetEntry    = `SELECT value FROM kv_entries WHERE key = $1`
	queryUpsertEntry = `INSERT INTO kv_entries (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
)

type postgresStore struct {
	db   postgres.DB
	otel otel.Otel
}

// NewPostgresStore keeps values as rows of the kv_entries table. Get and Set
// run on the same primary so a read always sees the last write.
func NewPostgresStore(db postgres.DB, ot otel.Otel) Store {
	return &postgresStore{
		db:   db,
		otel: ot,
	}
}

// Get implements Store.
func (store *postgresStore) Get(ctx context.Context, key string) (string, error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Get")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		constant.OtelKeyAttribute:    key,
		constant.OtelDriverAttribute: config.StorageDriverPostgres,
	})

	var value string

	err := store.db.GetContext(ctx, &value, queryGetEntry, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", Nil
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Str("PostgresStore", "Get").Msg("failed to get value")

		return "", fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set implements Store.
func (store *postgresStore) Set(ctx context.Context, key, value string) (err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Set")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		constant.OtelKeyAttribute:    key,
		constant.OtelDriverAttribute: config.StorageDriverPostgres,
	})

	if _, err = store.db.ExecContext(ctx, queryUpsertEntry, key, value); err != nil {
		log.Error().Err(err).Str("key", key).Str("PostgresStore", "Set").Msg("failed to set value")

		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}
