package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snip/internal/cache"
	"snip/internal/handler"
	"snip/internal/service"
	"snip/internal/shortener"
	"snip/internal/store/memory"
	"snip/internal/validation"
)

func newRealServer(t *testing.T) *echo.Echo {
	t.Helper()

	gen, err := shortener.New()
	require.NoError(t, err)

	urlCache, err := cache.New(20)
	require.NoError(t, err)
	t.Cleanup(urlCache.Close)

	svc := service.NewURLService(
		memory.New(gen),
		urlCache,
		validation.NewURLValidator(2048, true),
		"http://snip.test",
		time.Second,
	)

	e := echo.New()
	handler.New(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(e)
	return e
}

func TestSubmitThenRedirect(t *testing.T) {
	e := newRealServer(t)

	first := decodeView(t, serve(e, submitRequest("https://example.com/a?b=c", echo.MIMEApplicationJSON)))
	require.NotNil(t, first.Link)
	assert.Equal(t, "http://snip.test"+first.Link.Path, first.Link.URL)

	again := decodeView(t, serve(e, submitRequest("https://example.com/a?b=c", echo.MIMEApplicationJSON)))
	require.NotNil(t, again.Link)
	assert.Equal(t, first.Link.Path, again.Link.Path)

	rec := serve(e, httptest.NewRequest(http.MethodGet, first.Link.Path, nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://example.com/a?b=c", rec.Header().Get(echo.HeaderLocation))
}

func TestSubmitRejectsNonHTTP(t *testing.T) {
	e := newRealServer(t)

	for _, input := range []string{"ftp://x.com", "not a url", "javascript:alert(1)"} {
		rec := serve(e, submitRequest(input, echo.MIMEApplicationJSON))

		assert.Equal(t, http.StatusOK, rec.Code, input)
		view := decodeView(t, rec)
		assert.Nil(t, view.Link, input)
		assert.Contains(t, view.Error, "Invalid URL", input)
	}

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/bMZn4Y", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
