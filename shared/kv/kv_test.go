package kv_test

import (
	"context"
	"errors"
	"paradise/config"
	"paradise/infras/otel/mocks"
	"paradise/infras/s3"
	s3Mocks "paradise/infras/s3/mocks"
	"paradise/shared/constant"
	"paradise/shared/kv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := kv.NewMemoryStore(mocks.NewOtel())

	_, err := store.Get(ctx, "bookings")
	require.ErrorIs(t, err, kv.Nil)

	require.NoError(t, store.Set(ctx, "bookings", `[{"ref":"AB12-CD34"}]`))

	value, err := store.Get(ctx, "bookings")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"ref":"AB12-CD34"}]`, value)

	require.NoError(t, store.Set(ctx, "bookings", `[]`))

	value, err = store.Get(ctx, "bookings")
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)

	_, err = store.Get(ctx, "other")
	assert.ErrorIs(t, err, kv.Nil)
}

func TestNewDefaultsToMemory(t *testing.T) {
	cfg := &config.Config{}
	store := kv.New(cfg, mocks.NewOtel())

	require.NoError(t, store.Set(context.Background(), "k", "v"))

	value, err := store.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "v", value)
}

func TestS3Store(t *testing.T) {
	errUnavailable := errors.New("unavailable")

	tests := []struct {
		name    string
		prepare func(client *s3Mocks.MockS3)
		run     func(t *testing.T, store kv.Store)
	}{
		{
			name: "get maps missing objects to Nil",
			prepare: func(client *s3Mocks.MockS3) {
				client.EXPECT().GetObject(gomock.Any(), "bucket", "bookings", "paradise.json").Return(nil, s3.ErrObjectNotFound)
			},
			run: func(t *testing.T, store kv.Store) {
				_, err := store.Get(context.Background(), "paradise")
				assert.ErrorIs(t, err, kv.Nil)
			},
		},
		{
			name: "get returns the object body",
			prepare: func(client *s3Mocks.MockS3) {
				client.EXPECT().GetObject(gomock.Any(), "bucket", "bookings", "paradise.json").Return([]byte(`[]`), nil)
			},
			run: func(t *testing.T, store kv.Store) {
				value, err := store.Get(context.Background(), "paradise")
				require.NoError(t, err)
				assert.Equal(t, `[]`, value)
			},
		},
		{
			name: "get propagates backend errors",
			prepare: func(client *s3Mocks.MockS3) {
				client.EXPECT().GetObject(gomock.Any(), "bucket", "bookings", "paradise.json").Return(nil, errUnavailable)
			},
			run: func(t *testing.T, store kv.Store) {
				_, err := store.Get(context.Background(), "paradise")
				require.ErrorIs(t, err, errUnavailable)
				assert.NotErrorIs(t, err, kv.Nil)
			},
		},
		{
			name: "set writes a JSON object",
			prepare: func(client *s3Mocks.MockS3) {
				client.EXPECT().
					PutObject(gomock.Any(), "bucket", "bookings", "paradise.json", constant.ContentTypeJSON, []byte(`[1]`)).
					Return(nil)
			},
			run: func(t *testing.T, store kv.Store) {
				assert.NoError(t, store.Set(context.Background(), "paradise", `[1]`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := s3Mocks.NewMockS3(ctrl)
			tt.prepare(client)

			tt.run(t, kv.NewS3Store(client, "bucket", "bookings", mocks.NewOtel()))
		})
	}
}
