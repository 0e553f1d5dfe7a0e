package kv

import (
	"context"
	"errors"
	"fmt"
	"paradise/config"
	"paradise/infras/otel"
	"paradise/infras/s3"
	"paradise/shared/constant"
)

const objectExtension = ".json"

type s3Store struct {
	client    s3.S3
	bucket    string
	directory string
	otel      otel.Otel
}

// NewS3Store keeps each key as one object named <directory>/<key>.json.
func NewS3Store(client s3.S3, bucket, directory string, ot otel.Otel) Store {
	return &s3Store{
		client:    client,
		bucket:    bucket,
		directory: directory,
		otel:      ot,
	}
}

func (store *s3Store) object(key string) string {
	return key + objectExtension
}

// Get implements Store.
func (store *s3Store) Get(ctx context.Context, key string) (string, error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Get")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		constant.OtelKeyAttribute:    key,
		constant.OtelDriverAttribute: config.StorageDriverS3,
	})

	data, err := store.client.GetObject(ctx, store.bucket, store.directory, store.object(key))
	if errors.Is(err, s3.ErrObjectNotFound) {
		return "", Nil
	}

	if err != nil {
		scope.TraceError(err)

		return "", fmt.Errorf("failed to get value: %w", err)
	}

	return string(data), nil
}

// Set implements Store.
func (store *s3Store) Set(ctx context.Context, key, value string) (err error) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Set")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		constant.OtelKeyAttribute:    key,
		constant.OtelDriverAttribute: config.StorageDriverS3,
	})

	err = store.client.PutObject(ctx, store.bucket, store.directory, store.object(key), constant.ContentTypeJSON, []byte(value))
	if err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}
