package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"snip/internal/metrics"
	"snip/internal/middleware"
	"snip/internal/middleware/mocks"
)

// captureMetric serves req through an echo instance wired with the Metrics
// middleware and returns the single metric it recorded.
func captureMetric(t *testing.T, setup func(e *echo.Echo), req *http.Request) (metrics.HTTPMetric, *httptest.ResponseRecorder) {
	t.Helper()

	rec := mocks.NewMockHTTPRecorder(t)
	var captured metrics.HTTPMetric
	rec.EXPECT().RecordHTTP(mock.Anything).
		Run(func(m metrics.HTTPMetric) {
			captured = m
		}).Return().Once()

	e := echo.New()
	setup(e)
	e.Use(middleware.Metrics(rec))

	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)
	return captured, resp
}

func TestMetrics_Redirect(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/UkLWZg", nil)
	req.RemoteAddr = "192.168.1.1:12345"

	m, resp := captureMetric(t, func(e *echo.Echo) {
		e.GET("/:key", func(c echo.Context) error {
			return c.Redirect(http.StatusFound, "https://example.com")
		})
	}, req)

	assert.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, http.MethodGet, m.Method)
	assert.Equal(t, "/:key", m.Path)
	assert.Equal(t, http.StatusFound, m.StatusCode)
	assert.Equal(t, "192.168.1.1", m.ClientIP)
	assert.GreaterOrEqual(t, m.DurationMs, 0.0)
	assert.Less(t, m.DurationMs, 1000.0)
	assert.Empty(t, m.Error)
	assert.False(t, m.Time.IsZero())
}

func TestMetrics_Errors(t *testing.T) {
	tests := []struct {
		name       string
		handlerErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "plain error",
			handlerErr: errors.New("something went wrong"),
			wantStatus: http.StatusOK,
			wantError:  "something went wrong",
		},
		{
			name:       "http error",
			handlerErr: echo.NewHTTPError(http.StatusNotFound, "not found"),
			wantStatus: http.StatusNotFound,
			wantError:  "code=404, message=not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/fail", nil)
			m, _ := captureMetric(t, func(e *echo.Echo) {
				e.GET("/fail", func(c echo.Context) error {
					return tt.handlerErr
				})
			}, req)

			assert.Equal(t, tt.wantStatus, m.StatusCode)
			assert.Equal(t, tt.wantError, m.Error)
		})
	}
}

func TestMetrics_UnmatchedRouteUsesRoot(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	m, _ := captureMetric(t, func(e *echo.Echo) {
		e.PUT("/", func(c echo.Context) error {
			c.SetPath("")
			return c.NoContent(http.StatusNoContent)
		})
	}, req)

	assert.Equal(t, "/", m.Path)
	assert.Equal(t, http.MethodPut, m.Method)
}

func TestMetrics_RequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	m, resp := captureMetric(t, func(e *echo.Echo) {
		e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
			Generator: func() string { return "req-42" },
		}))
		e.POST("/", func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
	}, req)

	assert.Equal(t, "req-42", resp.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, "req-42", m.RequestID)
}
