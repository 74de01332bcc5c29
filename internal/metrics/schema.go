package metrics

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS http_metrics (
		time        TIMESTAMPTZ      NOT NULL,
		method      TEXT             NOT NULL,
		path        TEXT             NOT NULL,
		status_code INTEGER          NOT NULL,
		duration_ms DOUBLE PRECISION NOT NULL,
		client_ip   TEXT             NOT NULL,
		request_id  TEXT             NOT NULL,
		error       TEXT             NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS infra_metrics (
		time            TIMESTAMPTZ      NOT NULL,
		pool_acquired   INTEGER          NOT NULL,
		pool_idle       INTEGER          NOT NULL,
		pool_total      INTEGER          NOT NULL,
		pool_max        INTEGER          NOT NULL,
		cache_hits      BIGINT           NOT NULL,
		cache_misses    BIGINT           NOT NULL,
		cache_hit_ratio DOUBLE PRECISION NOT NULL,
		goroutines      INTEGER          NOT NULL,
		heap_alloc_mb   DOUBLE PRECISION NOT NULL
	)`,
}

// CreateTables creates the metric tables if they are missing.
func CreateTables(ctx context.Context, db Execer) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create metrics tables: %w", err)
		}
	}
	return nil
}
