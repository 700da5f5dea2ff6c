package rediscache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradepath/gradepath-api/internal/domain"
	"github.com/gradepath/gradepath-api/internal/testutils"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache := NewWithClient(client, testutils.NewTestLogger())
	t.Cleanup(func() { _ = cache.Close() })

	return cache, mr
}

func TestCacheCatalogRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cat := testutils.ZACatalog(t)
	require.NoError(t, cache.SetCatalog(ctx, cat, time.Hour))

	got, err := cache.GetCatalog(ctx, "ZA")
	require.NoError(t, err)
	assert.Equal(t, cat, got)
}

func TestCacheCatalogMiss(t *testing.T) {
	cache, _ := newTestCache(t)

	_, err := cache.GetCatalog(context.Background(), "ZA")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestCacheCareerRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	career := &domain.Career{
		Name:        "Engineer",
		CountryCode: "ZA",
		Requirements: []domain.CareerRequirement{
			{Level: domain.LevelDegree, MinGrades: map[string]float64{"Math": 70}},
		},
	}
	require.NoError(t, cache.SetCareer(ctx, career, time.Hour))

	got, err := cache.GetCareer(ctx, "Engineer", "ZA")
	require.NoError(t, err)
	assert.Equal(t, career, got)

	_, err = cache.GetCareer(ctx, "Engineer", "KE")
	assert.ErrorIs(t, err, ErrMiss, "careers are keyed per country")
}

func TestCacheExpiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetCatalog(ctx, testutils.ZACatalog(t), time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := cache.GetCatalog(ctx, "ZA")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestCacheCorruptSnapshotIsAMiss(t *testing.T) {
	cache, mr := newTestCache(t)

	require.NoError(t, mr.Set("catalog:v1:ZA", "{not json"))

	_, err := cache.GetCatalog(context.Background(), "ZA")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestCachePing(t *testing.T) {
	cache, mr := newTestCache(t)

	assert.NoError(t, cache.Ping(context.Background()))

	mr.Close()
	assert.Error(t, cache.Ping(context.Background()))
}

func TestNewWithClientPanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { NewWithClient(nil, nil) })
}
