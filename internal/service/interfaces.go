package service

//go:generate go tool mockery

import (
	"context"
	"net/url"

	"snip/internal/domain"
)

// Store is implemented by every storage backend. found=false with a nil error
// means the entry does not exist; a non-nil error means the backend could not
// answer.
type Store interface {
	FindByOriginal(ctx context.Context, original string) (domain.URLEntry, bool, error)
	Create(ctx context.Context, original string) (domain.URLEntry, error)
	GetByKey(ctx context.Context, key string) (domain.URLEntry, bool, error)
}

type Cache interface {
	Get(key string) (string, bool)
	Set(key, original string)
}

type URLValidator interface {
	Parse(rawURL string) (*url.URL, error)
}
