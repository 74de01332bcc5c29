package seed_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bench/internal/seed"
)

func TestRun(t *testing.T) {
	var (
		mu   sync.Mutex
		seen = map[string]string{}
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "letmein", r.Header.Get("X-Rate-Limit-Bypass"))

		original := r.FormValue("original")
		mu.Lock()
		key := fmt.Sprintf("k%d", len(seen))
		if prev, ok := seen[original]; ok {
			key = prev
		}
		seen[original] = key
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"link":{"key":%q,"original":%q}}`, key, original)
	}))
	defer srv.Close()

	keys, err := seed.Run(context.Background(), seed.Options{
		BaseURL:      srv.URL,
		Count:        50,
		Workers:      4,
		BypassSecret: "letmein",
		Timeout:      time.Second,
	})
	require.NoError(t, err)

	assert.Len(t, keys, 50)
	assert.Len(t, seen, 50)
	assert.Equal(t, seen["https://example.com/seed/7"], keys[7])
}

func TestRun_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"error":"Invalid URL: invalid url format"}`)
	}))
	defer srv.Close()

	_, err := seed.Run(context.Background(), seed.Options{BaseURL: srv.URL, Count: 3, Workers: 1, Timeout: time.Second})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid url format")
}

func TestRun_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := seed.Run(context.Background(), seed.Options{BaseURL: srv.URL, Count: 3, Workers: 1, Timeout: time.Second})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status: 500")
}
