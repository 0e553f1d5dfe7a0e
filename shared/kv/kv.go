// Package kv persists plain-text values under string keys. It is the storage the
// booking list is written to: one key, one serialized value, whole-value rewrites.
package kv

//go:generate go run go.uber.org/mock/mockgen -source=./kv.go -destination=./mocks/kv_mock.go -package=mocks

import (
	"context"
	"errors"
	"paradise/config"
	"paradise/helper"
	"paradise/infras/otel"
	"paradise/infras/postgres"
	"paradise/infras/redis"
	"paradise/infras/s3"

	"github.com/rs/zerolog/log"
)

// Nil is returned by Get when the key holds no value.
var Nil = errors.New("kv: key not found")

type Store interface {
	Get(ctx context.Context, key string) (value string, err error)
	Set(ctx context.Context, key, value string) (err error)
}

// New opens the store selected by STORAGE_DRIVER.
func New(cfg *config.Config, ot otel.Otel) Store {
	driver := cfg.Storage.Driver

	log.Info().Str("driver", driver).Msg("Opening key-value store")

	switch driver {
	case config.StorageDriverRedis:
		return NewRedisStore(redis.New(cfg), ot)
	case config.StorageDriverS3:
		return NewS3Store(s3.New(cfg, ot), cfg.External.S3.BucketName, cfg.External.S3.Directory, ot)
	case config.StorageDriverPostgres:
		if cfg.DB.Postgres.AutoMigrate {
			if err := helper.Up(cfg); err != nil {
				log.Fatal().Err(err).Msg("Failed to migrate key-value table")
			}
		}

		return NewPostgresStore(postgres.New(cfg), ot)
	case config.StorageDriverMemory, "":
		return NewMemoryStore(ot)
	default:
		log.Fatal().Str("driver", driver).Msg("Unknown storage driver")

		return nil
	}
}
