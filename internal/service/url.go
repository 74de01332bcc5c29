package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"snip/internal/domain"
)

var (
	ErrURLNotFound = errors.New("url not found")
	ErrStorage     = errors.New("storage unavailable")
)

// InvalidURLError reports a submission that is not an absolute http or https
// URL. Err holds the validation reason.
type InvalidURLError struct {
	Input string
	Err   error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid url %q: %v", e.Input, e.Err)
}

func (e *InvalidURLError) Unwrap() error {
	return e.Err
}

type URLService struct {
	store        Store
	cache        Cache
	validator    URLValidator
	baseURL      string
	storeTimeout time.Duration
}

func NewURLService(store Store, cache Cache, validator URLValidator, baseURL string, storeTimeout time.Duration) *URLService {
	return &URLService{
		store:        store,
		cache:        cache,
		validator:    validator,
		baseURL:      strings.TrimRight(baseURL, "/"),
		storeTimeout: storeTimeout,
	}
}

// Submit returns the short link for rawURL, creating an entry only when the
// URL has not been submitted before.
func (s *URLService) Submit(ctx context.Context, rawURL string) (*domain.ShortLink, error) {
	parsed, err := s.validator.Parse(rawURL)
	if err != nil {
		return nil, &InvalidURLError{Input: rawURL, Err: err}
	}
	original := parsed.String()

	ctx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	entry, found, err := s.store.FindByOriginal(ctx, original)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find url: %w", ErrStorage, err)
	}

	if !found {
		entry, err = s.store.Create(ctx, original)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to create url: %w", ErrStorage, err)
		}
	}

	s.cache.Set(entry.Key, entry.Original)

	return s.shortLink(entry), nil
}

// Resolve returns the original URL stored under key.
func (s *URLService) Resolve(ctx context.Context, key string) (string, error) {
	if original, ok := s.cache.Get(key); ok {
		return original, nil
	}

	ctx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	entry, found, err := s.store.GetByKey(ctx, key)
	if err != nil {
		return "", fmt.Errorf("%w: failed to find key: %w", ErrStorage, err)
	}
	if !found {
		return "", ErrURLNotFound
	}

	s.cache.Set(entry.Key, entry.Original)

	return entry.Original, nil
}

func (s *URLService) shortLink(entry domain.URLEntry) *domain.ShortLink {
	path := "/" + entry.Key
	return &domain.ShortLink{
		Key:      entry.Key,
		Original: entry.Original,
		Path:     path,
		URL:      s.baseURL + path,
	}
}

func (s *URLService) withStoreTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}
