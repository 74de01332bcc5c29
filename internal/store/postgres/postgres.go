package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"snip/internal/domain"
	"snip/internal/store"
)

var migrations = []string{
	`CREATE SEQUENCE IF NOT EXISTS urls_id_seq`,
	`CREATE TABLE IF NOT EXISTS urls (
		id         BIGINT      PRIMARY KEY,
		short_key  TEXT        NOT NULL UNIQUE,
		original   TEXT        NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

type Store struct {
	pool *pgxpool.Pool
	gen  store.CodeGenerator
}

func New(ctx context.Context, dsn string, gen store.CodeGenerator) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Store{pool: pool, gen: gen}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	for _, stmt := range migrations {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}
	return nil
}

func (s *Store) FindByOriginal(ctx context.Context, original string) (domain.URLEntry, bool, error) {
	var key string
	err := s.pool.QueryRow(ctx, `SELECT short_key FROM urls WHERE original = $1`, original).Scan(&key)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.URLEntry{}, false, nil
	}
	if err != nil {
		return domain.URLEntry{}, false, fmt.Errorf("failed to query by original: %w", err)
	}
	return domain.URLEntry{Key: key, Original: original}, true, nil
}

func (s *Store) GetByKey(ctx context.Context, key string) (domain.URLEntry, bool, error) {
	var original string
	err := s.pool.QueryRow(ctx, `SELECT original FROM urls WHERE short_key = $1`, key).Scan(&original)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.URLEntry{}, false, nil
	}
	if err != nil {
		return domain.URLEntry{}, false, fmt.Errorf("failed to query by key: %w", err)
	}
	return domain.URLEntry{Key: key, Original: original}, true, nil
}

// Create relies on the unique constraint on original: a concurrent insert of
// the same URL loses the conflict and reads back the winner's key.
func (s *Store) Create(ctx context.Context, original string) (domain.URLEntry, error) {
	var id int64
	if err := s.pool.QueryRow(ctx, `SELECT nextval('urls_id_seq')`).Scan(&id); err != nil {
		return domain.URLEntry{}, fmt.Errorf("failed to get next id: %w", err)
	}

	key, err := s.gen.Generate(uint(id))
	if err != nil {
		return domain.URLEntry{}, fmt.Errorf("failed to generate key: %w", err)
	}

	var stored string
	err = s.pool.QueryRow(ctx,
		`INSERT INTO urls (id, short_key, original) VALUES ($1, $2, $3)
		 ON CONFLICT (original) DO NOTHING
		 RETURNING short_key`,
		id, key, original,
	).Scan(&stored)
	if errors.Is(err, pgx.ErrNoRows) {
		entry, found, err := s.FindByOriginal(ctx, original)
		if err != nil {
			return domain.URLEntry{}, err
		}
		if !found {
			return domain.URLEntry{}, fmt.Errorf("conflicting row for %q disappeared", original)
		}
		return entry, nil
	}
	if err != nil {
		return domain.URLEntry{}, fmt.Errorf("failed to insert url: %w", err)
	}

	return domain.URLEntry{Key: stored, Original: original}, nil
}

func (s *Store) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *Store) Close() {
	s.pool.Close()
}
