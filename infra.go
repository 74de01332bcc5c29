package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"

	"snip/internal/cache"
	"snip/internal/metrics"
)

func scheduleInfraMetrics(schedule string, recorder *metrics.Recorder, pool *pgxpool.Pool, urlCache *cache.URLCache) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		recorder.RecordInfra(snapshotInfra(pool, urlCache))
	}); err != nil {
		return nil, fmt.Errorf("invalid infra metrics schedule %q: %w", schedule, err)
	}
	return c, nil
}

func snapshotInfra(pool *pgxpool.Pool, urlCache *cache.URLCache) metrics.InfraMetric {
	cacheHits, cacheMisses, cacheRatio := urlCache.Stats()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	m := metrics.InfraMetric{
		Time:          time.Now(),
		CacheHits:     int64(cacheHits),
		CacheMisses:   int64(cacheMisses),
		CacheHitRatio: cacheRatio,
		Goroutines:    runtime.NumGoroutine(),
		HeapAllocMB:   float64(memStats.HeapAlloc) / 1024 / 1024,
	}

	if pool != nil {
		poolStat := pool.Stat()
		m.PoolAcquired = int(poolStat.AcquiredConns())
		m.PoolIdle = int(poolStat.IdleConns())
		m.PoolTotal = int(poolStat.TotalConns())
		m.PoolMax = int(poolStat.MaxConns())
	}

	return m
}
