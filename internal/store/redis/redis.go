package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"snip/internal/domain"
	"snip/internal/store"
)

// Store keeps two string keys per entry, <prefix>:key:<key> and
// <prefix>:original:<url>, plus the id counter <prefix>:seq.
type Store struct {
	rdb    goredis.UniversalClient
	prefix string
	gen    store.CodeGenerator
}

func New(rdb goredis.UniversalClient, prefix string, gen store.CodeGenerator) *Store {
	return &Store{rdb: rdb, prefix: prefix, gen: gen}
}

// Dial connects to a single Redis server and checks it answers.
func Dial(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}

func (s *Store) seqKey() string { return s.prefix + ":seq" }
func (s *Store) keyKey(key string) string { return s.prefix + ":key:" + key }
func (s *Store) originalKey(url string) string { return s.prefix + ":original:" + url }

func (s *Store) FindByOriginal(ctx context.Context, original string) (domain.URLEntry, bool, error) {
	key, err := s.rdb.Get(ctx, s.originalKey(original)).Result()
	if errors.Is(err, goredis.Nil) {
		return domain.URLEntry{}, false, nil
	}
	if err != nil {
		return domain.URLEntry{}, false, fmt.Errorf("failed to get by original: %w", err)
	}
	return domain.URLEntry{Key: key, Original: original}, true, nil
}

func (s *Store) GetByKey(ctx context.Context, key string) (domain.URLEntry, bool, error) {
	original, err := s.rdb.Get(ctx, s.keyKey(key)).Result()
	if errors.Is(err, goredis.Nil) {
		return domain.URLEntry{}, false, nil
	}
	if err != nil {
		return domain.URLEntry{}, false, fmt.Errorf("failed to get by key: %w", err)
	}
	return domain.URLEntry{Key: key, Original: original}, true, nil
}

// Create writes the key entry first and then claims the original with SETNX.
// The loser of a race deletes its unreferenced key entry and returns the
// winner's key.
func (s *Store) Create(ctx context.Context, original string) (domain.URLEntry, error) {
	key, err := s.claimKey(ctx, original)
	if err != nil {
		return domain.URLEntry{}, err
	}

	won, err := s.rdb.SetNX(ctx, s.originalKey(original), key, 0).Result()
	if err != nil {
		return domain.URLEntry{}, fmt.Errorf("failed to claim original: %w", err)
	}
	if won {
		return domain.URLEntry{Key: key, Original: original}, nil
	}

	if err := s.rdb.Del(ctx, s.keyKey(key)).Err(); err != nil {
		return domain.URLEntry{}, fmt.Errorf("failed to release key: %w", err)
	}

	entry, found, err := s.FindByOriginal(ctx, original)
	if err != nil {
		return domain.URLEntry{}, err
	}
	if !found {
		return domain.URLEntry{}, fmt.Errorf("claimed original %q disappeared", original)
	}
	return entry, nil
}

func (s *Store) claimKey(ctx context.Context, original string) (string, error) {
	for {
		id, err := s.rdb.Incr(ctx, s.seqKey()).Result()
		if err != nil {
			return "", fmt.Errorf("failed to get next id: %w", err)
		}

		key, err := s.gen.Generate(uint(id))
		if err != nil {
			return "", fmt.Errorf("failed to generate key: %w", err)
		}

		ok, err := s.rdb.SetNX(ctx, s.keyKey(key), original, 0).Result()
		if err != nil {
			return "", fmt.Errorf("failed to store key: %w", err)
		}
		if ok {
			return key, nil
		}
	}
}
