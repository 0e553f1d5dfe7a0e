package repository_test

import (
	"context"
	"errors"
	"fmt"
	"paradise/config"
	"paradise/infras/otel/mocks"
	"paradise/internal/domains/booking/model"
	"paradise/internal/domains/booking/repository"
	"paradise/shared/kv"
	kvMocks "paradise/shared/kv/mocks"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const storageKey = "paradise_bookings_v1"

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.StorageKey = storageKey

	return cfg
}

func booking(ref string) model.Booking {
	return model.Booking{
		Ref:       ref,
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Room:      "Deluxe",
		Guests:    2,
		Checkin:   "2030-01-01",
		Checkout:  "2030-01-03",
		CreatedAt: "2029-12-01T10:00:00Z",
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name   string
		stored *string
		want   []model.Booking
	}{
		{name: "absent key", want: []model.Booking{}},
		{name: "empty value", stored: ptr(""), want: []model.Booking{}},
		{name: "json null", stored: ptr("null"), want: []model.Booking{}},
		{name: "corrupt value", stored: ptr("{not json"), want: []model.Booking{}},
		{name: "object instead of list", stored: ptr(`{"ref":"AB12-CD34"}`), want: []model.Booking{}},
		{
			name:   "stored list",
			stored: ptr(`[{"ref":"AB12-CD34","name":"Ada Lovelace","email":"ada@example.com","room":"Deluxe","guests":2,"checkin":"2030-01-01","checkout":"2030-01-03","createdAt":"2029-12-01T10:00:00Z"}]`),
			want:   []model.Booking{booking("AB12-CD34")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := kv.NewMemoryStore(mocks.NewOtel())

			if tt.stored != nil {
				require.NoError(t, store.Set(ctx, storageKey, *tt.stored))
			}

			repo := repository.New(store, newConfig(), mocks.NewOtel())

			got, err := repo.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAppendPreservesOrder(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore(mocks.NewOtel())
	repo := repository.New(store, newConfig(), mocks.NewOtel())

	require.NoError(t, repo.Append(ctx, booking("AAAA-0001")))
	require.NoError(t, repo.Append(ctx, booking("AAAA-0002")))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Booking{booking("AAAA-0001"), booking("AAAA-0002")}, got)

	raw, err := store.Get(ctx, storageKey)
	require.NoError(t, err)
	assert.Contains(t, raw, `"createdAt":"2029-12-01T10:00:00Z"`)
	assert.Contains(t, raw, `"guests":2`)
}

func TestConcurrentAppendKeepsEveryBooking(t *testing.T) {
	const writers = 50

	ctx := context.Background()
	repo := repository.New(kv.NewMemoryStore(mocks.NewOtel()), newConfig(), mocks.NewOtel())

	var wg sync.WaitGroup

	for i := range writers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			assert.NoError(t, repo.Append(ctx, booking(fmt.Sprintf("AAAA-%04d", i))))
		}()
	}

	wg.Wait()

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, writers)

	removed := make(chan bool, writers/2)

	for i := range writers / 2 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			ok, err := repo.Remove(ctx, fmt.Sprintf("AAAA-%04d", i))
			assert.NoError(t, err)
			removed <- ok
		}()
	}

	wg.Wait()
	close(removed)

	for ok := range removed {
		assert.True(t, ok)
	}

	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, writers-writers/2)
}

func TestAppendOverwritesCorruptValue(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore(mocks.NewOtel())
	require.NoError(t, store.Set(ctx, storageKey, "garbage"))

	repo := repository.New(store, newConfig(), mocks.NewOtel())
	require.NoError(t, repo.Append(ctx, booking("AAAA-0001")))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Booking{booking("AAAA-0001")}, got)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore(mocks.NewOtel())
	repo := repository.New(store, newConfig(), mocks.NewOtel())

	for _, ref := range []string{"AAAA-0001", "AAAA-0002", "AAAA-0003"} {
		require.NoError(t, repo.Append(ctx, booking(ref)))
	}

	removed, err := repo.Remove(ctx, "AAAA-0002")
	require.NoError(t, err)
	assert.True(t, removed)

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.Booking{booking("AAAA-0001"), booking("AAAA-0003")}, got)

	removed, err = repo.Remove(ctx, "ZZZZ-9999")
	require.NoError(t, err)
	assert.False(t, removed)

	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRemoveRewritesEvenWithoutMatch(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore(mocks.NewOtel())
	require.NoError(t, store.Set(ctx, storageKey, "null"))

	repo := repository.New(store, newConfig(), mocks.NewOtel())

	removed, err := repo.Remove(ctx, "AAAA-0001")
	require.NoError(t, err)
	assert.False(t, removed)

	raw, err := store.Get(ctx, storageKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
}

func TestBackendErrors(t *testing.T) {
	errBackend := errors.New("connection refused")

	tests := []struct {
		name    string
		prepare func(store *kvMocks.MockStore)
		run     func(repo repository.Booking) error
	}{
		{
			name: "load",
			prepare: func(store *kvMocks.MockStore) {
				store.EXPECT().Get(gomock.Any(), storageKey).Return("", errBackend)
			},
			run: func(repo repository.Booking) error {
				_, err := repo.Load(context.Background())

				return err
			},
		},
		{
			name: "append does not write after a failed read",
			prepare: func(store *kvMocks.MockStore) {
				store.EXPECT().Get(gomock.Any(), storageKey).Return("", errBackend)
			},
			run: func(repo repository.Booking) error {
				return repo.Append(context.Background(), booking("AAAA-0001"))
			},
		},
		{
			name: "append write failure",
			prepare: func(store *kvMocks.MockStore) {
				store.EXPECT().Get(gomock.Any(), storageKey).Return("[]", nil)
				store.EXPECT().Set(gomock.Any(), storageKey, gomock.Any()).Return(errBackend)
			},
			run: func(repo repository.Booking) error {
				return repo.Append(context.Background(), booking("AAAA-0001"))
			},
		},
		{
			name: "remove write failure",
			prepare: func(store *kvMocks.MockStore) {
				store.EXPECT().Get(gomock.Any(), storageKey).Return("[]", nil)
				store.EXPECT().Set(gomock.Any(), storageKey, "[]").Return(errBackend)
			},
			run: func(repo repository.Booking) error {
				_, err := repo.Remove(context.Background(), "AAAA-0001")

				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := kvMocks.NewMockStore(ctrl)
			tt.prepare(store)

			err := tt.run(repository.New(store, newConfig(), mocks.NewOtel()))
			assert.ErrorIs(t, err, errBackend)
		})
	}
}

func ptr(value string) *string {
	return &value
}
