package seed

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

const bypassHeader = "X-Rate-Limit-Bypass"

type Options struct {
	BaseURL            string
	Count              int
	Workers            int
	BypassSecret       string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

type indexView struct {
	Link *struct {
		Key string `json:"key"`
	} `json:"link"`
	Error string `json:"error"`
}

// Run submits opts.Count distinct URLs through the index form and returns
// the keys the server assigned, in submission order.
func Run(ctx context.Context, opts Options) ([]string, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	fmt.Printf("Seeding %d URLs (workers: %d)...\n", opts.Count, workers)

	client := &http.Client{
		Timeout: opts.Timeout,
		// Keep the 302 of an accidental redirect visible instead of following it.
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
		Transport: &http.Transport{
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: opts.InsecureSkipVerify},
			MaxIdleConns:        workers * 2,
			MaxIdleConnsPerHost: workers * 2,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}

	keys := make([]string, opts.Count)
	var progress atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range opts.Count {
		g.Go(func() error {
			original := fmt.Sprintf("https://example.com/seed/%d", i)
			key, err := submit(ctx, client, opts.BaseURL, original, opts.BypassSecret)
			if err != nil {
				return fmt.Errorf("failed to seed %s: %w", original, err)
			}
			keys[i] = key
			if done := progress.Add(1); done%1000 == 0 || int(done) == opts.Count {
				fmt.Printf("\rProgress: %d/%d", done, opts.Count)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmt.Printf("\nSeeding complete: %d keys\n", len(keys))
	return keys, nil
}

func submit(ctx context.Context, client *http.Client, baseURL, original, bypassSecret string) (string, error) {
	form := url.Values{"original": {original}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if bypassSecret != "" {
		req.Header.Set(bypassHeader, bypassSecret)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var view indexView
	if err := json.NewDecoder(resp.Body).Decode(&view); err != nil {
		return "", err
	}
	if view.Link == nil {
		return "", fmt.Errorf("rejected: %s", view.Error)
	}
	return view.Link.Key, nil
}
