package repo

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insurancebot/model"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := NewRedisStore(context.Background(), mr.Addr(), "", ttl)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	app := &model.Application{
		UserID:      42,
		CurrentStep: model.StepVehicleBrand,
		SamePerson:  true,
		Insured:     model.Person{Name: "Иванов Иван Иванович"},
		Drivers: []model.Driver{
			{Name: "Петров Пётр", License: "1234 567890"},
		},
	}
	require.NoError(t, store.Put(ctx, app))

	got, err := store.Get(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, model.StepVehicleBrand, got.CurrentStep)
	assert.True(t, got.SamePerson)
	assert.Equal(t, "Иванов Иван Иванович", got.Insured.Name)
	require.Len(t, got.Drivers, 1)
	assert.Equal(t, "Петров Пётр", got.Drivers[0].Name)
}

func TestRedisStoreMissingSession(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)

	_, err := store.Get(context.Background(), 7)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestRedisStoreDelete(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &model.Application{UserID: 9}))
	require.NoError(t, store.Delete(ctx, 9))

	_, err := store.Get(ctx, 9)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestRedisStoreSlidingTTL(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, &model.Application{UserID: 5}))
	assert.Equal(t, time.Minute, mr.TTL(sessionKey(5)))

	// Each write resets the clock on the session.
	mr.FastForward(30 * time.Second)
	require.NoError(t, store.Put(ctx, &model.Application{UserID: 5}))
	assert.Equal(t, time.Minute, mr.TTL(sessionKey(5)))

	// After expiry the session is gone.
	mr.FastForward(2 * time.Minute)
	_, err := store.Get(ctx, 5)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}
