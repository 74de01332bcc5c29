package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"snip/internal/config"
	"snip/internal/service"
	"snip/internal/shortener"
	"snip/internal/store/memory"
	"snip/internal/store/postgres"
	redisstore "snip/internal/store/redis"
)

// backend is the store selected by STORE_BACKEND. pool is set only for
// postgres and doubles as the metrics sink.
type backend struct {
	store service.Store
	pool  *pgxpool.Pool
	close func()
}

func openBackend(ctx context.Context, cfg *config.Config, gen *shortener.Shortener, logger *slog.Logger) (*backend, error) {
	switch cfg.Store.Backend {
	case config.BackendPostgres:
		st, err := postgres.New(ctx, cfg.Postgres.DSN(), gen)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		return &backend{store: st, pool: st.Pool(), close: st.Close}, nil

	case config.BackendRedis:
		rdb, err := redisstore.Dial(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to open redis store: %w", err)
		}
		st := redisstore.New(rdb, cfg.Redis.KeyPrefix, gen)
		return &backend{store: st, close: func() {
			if err := rdb.Close(); err != nil {
				logger.Error("failed to close redis client", slog.String("error", err.Error()))
			}
		}}, nil

	default:
		if cfg.Store.FilePath == "" {
			return &backend{store: memory.New(gen), close: func() {}}, nil
		}
		st, err := memory.Open(cfg.Store.FilePath, gen)
		if err != nil {
			return nil, fmt.Errorf("failed to open memory store: %w", err)
		}
		logger.Info("memory store loaded",
			slog.String("path", cfg.Store.FilePath),
			slog.Int("entries", st.Len()))
		return &backend{store: st, close: func() {
			if err := st.Close(); err != nil {
				logger.Error("failed to close memory store", slog.String("error", err.Error()))
			}
		}}, nil
	}
}
