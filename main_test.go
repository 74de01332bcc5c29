package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snip/internal/cache"
	"snip/internal/config"
	"snip/internal/metrics"
	"snip/internal/shortener"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenBackend_Memory(t *testing.T) {
	gen, err := shortener.New()
	require.NoError(t, err)

	cfg := &config.Config{Store: config.StoreConfig{Backend: config.BackendMemory}}
	b, err := openBackend(context.Background(), cfg, gen, testLogger())
	require.NoError(t, err)
	defer b.close()

	assert.Nil(t, b.pool)

	entry, err := b.store.Create(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, entry.Key)
}

func TestOpenBackend_MemoryFileSurvivesRestart(t *testing.T) {
	gen, err := shortener.New()
	require.NoError(t, err)

	cfg := &config.Config{Store: config.StoreConfig{
		Backend:  config.BackendMemory,
		FilePath: filepath.Join(t.TempDir(), "urls.jsonl"),
	}}
	ctx := context.Background()

	b, err := openBackend(ctx, cfg, gen, testLogger())
	require.NoError(t, err)
	created, err := b.store.Create(ctx, "https://example.com/persisted")
	require.NoError(t, err)
	b.close()

	b, err = openBackend(ctx, cfg, gen, testLogger())
	require.NoError(t, err)
	defer b.close()

	got, found, err := b.store.GetByKey(ctx, created.Key)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "https://example.com/persisted", got.Original)
}

func TestOpenBackend_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	gen, err := shortener.New()
	require.NoError(t, err)

	cfg := &config.Config{
		Store: config.StoreConfig{Backend: config.BackendRedis},
		Redis: config.RedisConfig{Addr: mr.Addr(), KeyPrefix: "snip"},
	}
	b, err := openBackend(context.Background(), cfg, gen, testLogger())
	require.NoError(t, err)
	defer b.close()

	entry, err := b.store.Create(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", mustGet(t, mr, "snip:key:"+entry.Key))
}

func mustGet(t *testing.T, mr *miniredis.Miniredis, key string) string {
	t.Helper()

	v, err := mr.Get(key)
	require.NoError(t, err)
	return v
}

func TestOpenBackend_RedisUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	gen, err := shortener.New()
	require.NoError(t, err)

	cfg := &config.Config{
		Store: config.StoreConfig{Backend: config.BackendRedis},
		Redis: config.RedisConfig{Addr: addr, KeyPrefix: "snip"},
	}
	_, err = openBackend(context.Background(), cfg, gen, testLogger())
	require.Error(t, err)
}

func TestSnapshotInfra_WithoutPool(t *testing.T) {
	urlCache, err := cache.New(10)
	require.NoError(t, err)
	defer urlCache.Close()

	urlCache.Set("UkLWZg", "https://example.com")
	urlCache.Wait()
	urlCache.Get("UkLWZg")
	urlCache.Get("missing")

	m := snapshotInfra(nil, urlCache)

	assert.False(t, m.Time.IsZero())
	assert.Equal(t, int64(1), m.CacheHits)
	assert.Equal(t, int64(1), m.CacheMisses)
	assert.InDelta(t, 0.5, m.CacheHitRatio, 0.001)
	assert.Positive(t, m.Goroutines)
	assert.Zero(t, m.PoolMax)
}

func TestScheduleInfraMetrics_InvalidSchedule(t *testing.T) {
	urlCache, err := cache.New(10)
	require.NoError(t, err)
	defer urlCache.Close()

	recorder := metrics.NewRecorder(nil, &config.MetricsConfig{BufferSize: 1}, testLogger())

	_, err = scheduleInfraMetrics("every now and then", recorder, nil, urlCache)
	require.Error(t, err)

	c, err := scheduleInfraMetrics("@every 10s", recorder, nil, urlCache)
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
}
