package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"paradise/config"
	"paradise/infras/otel"
	"paradise/internal/domains/booking/model"
	"paradise/shared/constant"
	"paradise/shared/kv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// Booking persists the whole booking list as one JSON array under one key.
type Booking interface {
	Load(ctx context.Context) ([]model.Booking, error)
	Append(ctx context.Context, booking model.Booking) error
	Remove(ctx context.Context, ref string) (bool, error)
}

type repositoryImpl struct {
	// mu serializes the load-modify-save cycle of Append and Remove.
	mu    sync.Mutex
	store kv.Store
	key   string
	otel  otel.Otel
}

func New(store kv.Store, cfg *config.Config, otel otel.Otel) Booking {
	return &repositoryImpl{
		store: store,
		key:   cfg.App.StorageKey,
		otel:  otel,
	}
}

// Load returns the stored list. A missing, empty or unreadable value is an
// empty list; only backend failures are errors.
func (repo *repositoryImpl) Load(ctx context.Context) (bookings []model.Booking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelKeyAttribute, repo.key)

	return repo.load(ctx)
}

func (repo *repositoryImpl) load(ctx context.Context) ([]model.Booking, error) {
	raw, err := repo.store.Get(ctx, repo.key)
	if errors.Is(err, kv.Nil) {
		return []model.Booking{}, nil
	}

	if err != nil {
		log.Error().Err(err).Str("key", repo.key).Msg("failed to read bookings")

		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}

	if strings.TrimSpace(raw) == constant.Empty {
		return []model.Booking{}, nil
	}

	var bookings []model.Booking
	if err := json.Unmarshal([]byte(raw), &bookings); err != nil {
		log.Warn().Err(err).Str("key", repo.key).Msg("stored bookings are unreadable, starting from an empty list")

		return []model.Booking{}, nil
	}

	if bookings == nil {
		bookings = []model.Booking{}
	}

	return bookings, nil
}

func (repo *repositoryImpl) save(ctx context.Context, bookings []model.Booking) error {
	raw, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("failed to encode bookings: %w", err)
	}

	if err := repo.store.Set(ctx, repo.key, string(raw)); err != nil {
		log.Error().Err(err).Str("key", repo.key).Msg("failed to write bookings")

		return fmt.Errorf("failed to write bookings: %w", err)
	}

	return nil
}

// Append adds booking to the end of the list and rewrites the list.
func (repo *repositoryImpl) Append(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Append")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		constant.OtelKeyAttribute: repo.key,
		constant.OtelRefAttribute: booking.Ref,
	})

	repo.mu.Lock()
	defer repo.mu.Unlock()

	bookings, err := repo.load(ctx)
	if err != nil {
		return err
	}

	return repo.save(ctx, append(bookings, booking))
}

// Remove drops every booking with ref and rewrites the list, even when
// nothing matched. It reports whether anything was dropped.
func (repo *repositoryImpl) Remove(ctx context.Context, ref string) (removed bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		constant.OtelKeyAttribute: repo.key,
		constant.OtelRefAttribute: ref,
	})

	repo.mu.Lock()
	defer repo.mu.Unlock()

	bookings, err := repo.load(ctx)
	if err != nil {
		return false, err
	}

	kept := make([]model.Booking, 0, len(bookings))
	for _, booking := range bookings {
		if booking.Ref != ref {
			kept = append(kept, booking)
		}
	}

	if err := repo.save(ctx, kept); err != nil {
		return false, err
	}

	return len(kept) < len(bookings), nil
}
