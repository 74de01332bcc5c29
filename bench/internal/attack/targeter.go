package attack

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const bypassHeader = "X-Rate-Limit-Bypass"

var urlCounter atomic.Uint64

// CreateTargeter submits a fresh URL through the index form on every hit.
func CreateTargeter(baseURL, bypassSecret string) vegeta.Targeter {
	header := http.Header{
		"Content-Type": []string{"application/x-www-form-urlencoded"},
		"Accept":       []string{"application/json"},
	}
	if bypassSecret != "" {
		header.Set(bypassHeader, bypassSecret)
	}
	target := baseURL + "/"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = target
		t.Header = header
		original := fmt.Sprintf("https://example.com/bench/%d", urlCounter.Add(1))
		t.Body = []byte("original=" + url.QueryEscape(original))
		return nil
	}
}

func RedirectTargeter(baseURL string, keys []string, bypassSecret string) vegeta.Targeter {
	var header http.Header
	if bypassSecret != "" {
		header = http.Header{bypassHeader: []string{bypassSecret}}
	}

	return func(t *vegeta.Target) error {
		key := keys[rand.IntN(len(keys))]
		t.Method = http.MethodGet
		t.URL = baseURL + "/" + key
		t.Header = header
		t.Body = nil
		return nil
	}
}

func MixedTargeter(baseURL string, keys []string, createRatio float64, bypassSecret string) vegeta.Targeter {
	createTarget := CreateTargeter(baseURL, bypassSecret)
	redirectTarget := RedirectTargeter(baseURL, keys, bypassSecret)

	return func(t *vegeta.Target) error {
		if rand.Float64() < createRatio {
			return createTarget(t)
		}
		return redirectTarget(t)
	}
}
