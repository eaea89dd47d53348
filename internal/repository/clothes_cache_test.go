package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/clothes-service/internal/domain"
)

func newTestCache(t *testing.T, ttl time.Duration) (ClothesCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewClothesCache(client, ttl), mr
}

func TestClothesCache_MissOnEmpty(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)

	_, err := cache.GetList(context.Background())
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestClothesCache_SetThenGet(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()
	photo := "https://cdn.example.com/p.png"
	items := []domain.Clothes{
		{ID: 1, Name: "Summer dress", Color: domain.ColorPink, Size: domain.SizeM, PhotoURL: &photo},
		{ID: 2, Name: "Black hoodie", Color: domain.ColorBlack, Size: domain.SizeXL},
	}

	require.NoError(t, cache.SetList(ctx, 0, items))

	got, err := cache.GetList(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Summer dress", got[0].Name)
	require.NotNil(t, got[0].PhotoURL)
	assert.Equal(t, photo, *got[0].PhotoURL)
	assert.Nil(t, got[1].PhotoURL)
}

func TestClothesCache_EmptyListIsAHit(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SetList(ctx, 0, []domain.Clothes{}))

	got, err := cache.GetList(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClothesCache_Invalidate(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SetList(ctx, 0, []domain.Clothes{{ID: 1}}))
	require.NoError(t, cache.Invalidate(ctx))

	_, err := cache.GetList(ctx)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestClothesCache_FillAfterInvalidateIsDropped(t *testing.T) {
	cache, _ := newTestCache(t, time.Minute)
	ctx := context.Background()

	gen, err := cache.Generation(ctx)
	require.NoError(t, err)
	assert.Zero(t, gen)

	require.NoError(t, cache.Invalidate(ctx))

	err = cache.SetList(ctx, gen, []domain.Clothes{{ID: 1}})
	assert.ErrorIs(t, err, ErrStaleFill)
	_, err = cache.GetList(ctx)
	assert.ErrorIs(t, err, ErrCacheMiss)

	gen, err = cache.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen)
	require.NoError(t, cache.SetList(ctx, gen, []domain.Clothes{{ID: 1}}))
	got, err := cache.GetList(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestClothesCache_ExpiresAfterTTL(t *testing.T) {
	cache, mr := newTestCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SetList(ctx, 0, []domain.Clothes{{ID: 1}}))
	mr.FastForward(2 * time.Minute)

	_, err := cache.GetList(ctx)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestClothesCache_BackendDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	t.Cleanup(func() { _ = client.Close() })
	cache := NewClothesCache(client, time.Minute)

	_, err := cache.GetList(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}
