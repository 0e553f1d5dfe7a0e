package kv

import (
	"context"
	"paradise/config"
	"paradise/infras/otel"
	"paradise/shared/constant"
	"sync"
)

type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
	otel   otel.Otel
}

// NewMemoryStore keeps values for the lifetime of the process.
func NewMemoryStore(ot otel.Otel) Store {
	return &memoryStore{
		values: make(map[string]string),
		otel:   ot,
	}
}

// Get implements Store.
func (store *memoryStore) Get(ctx context.Context, key string) (string, error) {
	_, scope := store.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Get")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		constant.OtelKeyAttribute:    key,
		constant.OtelDriverAttribute: config.StorageDriverMemory,
	})

	store.mu.RLock()
	defer store.mu.RUnlock()

	value, ok := store.values[key]
	if !ok {
		return "", Nil
	}

	return value, nil
}

// Set implements Store.
func (store *memoryStore) Set(ctx context.Context, key, value string) error {
	_, scope := store.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+".Set")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		constant.OtelKeyAttribute:    key,
		constant.OtelDriverAttribute: config.StorageDriverMemory,
	})

	store.mu.Lock()
	defer store.mu.Unlock()

	store.values[key] = value

	return nil
}
