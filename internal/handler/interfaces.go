package handler

//go:generate go tool mockery

import (
	"context"

	"snip/internal/domain"
)

type URLService interface {
	Submit(ctx context.Context, rawURL string) (*domain.ShortLink, error)
	Resolve(ctx context.Context, key string) (string, error)
}
