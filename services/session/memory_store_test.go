package session

import (
	"context"
	"testing"
	"time"

	"travelsure/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreGetOrCreate(t *testing.T) {
	store := NewMemoryStore(time.Minute, time.Minute)
	ctx := context.Background()

	sess, err := store.GetOrCreate(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", sess.SessionID)
	assert.Equal(t, models.StepTripIntake, sess.Step)
	assert.False(t, sess.CreatedAt.IsZero())

	again, err := store.GetOrCreate(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, sess.CreatedAt, again.CreatedAt)
	assert.Equal(t, 1, store.Count())
}

func TestMemoryStoreGeneratesID(t *testing.T) {
	store := NewMemoryStore(time.Minute, time.Minute)
	sess, err := store.GetOrCreate(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.SessionID)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore(time.Minute, time.Minute)
	ctx := context.Background()

	sess, err := store.GetOrCreate(ctx, "copy")
	require.NoError(t, err)
	sess.TripData.Destination = "Japan"

	stored, err := store.Get(ctx, "copy")
	require.NoError(t, err)
	assert.Empty(t, stored.TripData.Destination)

	require.NoError(t, store.Update(ctx, sess))
	stored, err = store.Get(ctx, "copy")
	require.NoError(t, err)
	assert.Equal(t, "Japan", stored.TripData.Destination)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore(time.Minute, time.Minute)
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreEvictAndExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(time.Minute, time.Minute)
	_, err := store.GetOrCreate(ctx, "gone")
	require.NoError(t, err)
	require.NoError(t, store.Evict(ctx, "gone"))
	_, err = store.Get(ctx, "gone")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	short := NewMemoryStore(20*time.Millisecond, time.Hour)
	_, err = short.GetOrCreate(ctx, "ttl")
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	_, err = short.Get(ctx, "ttl")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemoryStoreUpdateRequiresID(t *testing.T) {
	store := NewMemoryStore(time.Minute, time.Minute)
	assert.Error(t, store.Update(context.Background(), &models.Session{}))
}
