package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"snip/internal/domain"
	"snip/internal/service"
)

const (
	msgNotFound      = "no snip found for that link"
	msgStorageFailed = "something went wrong, please try again"
)

var respHealthOK = map[string]string{"status": "ok"}

type Handler struct {
	urlService URLService
	logger     *slog.Logger
}

func New(urlService URLService, logger *slog.Logger) *Handler {
	return &Handler{
		urlService: urlService,
		logger:     logger,
	}
}

// Register installs the routes and the html renderer on e.
func (h *Handler) Register(e *echo.Echo) {
	e.Renderer = Renderer{}

	e.GET("/api/v1/health", h.Health)
	e.GET("/", h.Index)
	e.POST("/", h.Submit)
	e.GET("/:key", h.Redirect)
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, respHealthOK)
}

func (h *Handler) Index(c echo.Context) error {
	return renderIndex(c, http.StatusOK, domain.IndexView{})
}

func (h *Handler) Submit(c echo.Context) error {
	link, err := h.urlService.Submit(c.Request().Context(), c.FormValue("original"))
	if err != nil {
		var invalid *service.InvalidURLError
		if errors.As(err, &invalid) {
			return renderIndex(c, http.StatusOK, domain.IndexView{
				Error: fmt.Sprintf("Invalid URL: %v", invalid.Err),
			})
		}
		h.logger.Error("failed to submit url", slog.String("error", err.Error()))
		return renderIndex(c, http.StatusInternalServerError, domain.IndexView{Error: msgStorageFailed})
	}

	return renderIndex(c, http.StatusOK, domain.IndexView{Link: link})
}

func (h *Handler) Redirect(c echo.Context) error {
	key := c.Param("key")

	original, err := h.urlService.Resolve(c.Request().Context(), key)
	if err != nil {
		if errors.Is(err, service.ErrURLNotFound) {
			return renderIndex(c, http.StatusNotFound, domain.IndexView{Error: msgNotFound})
		}
		h.logger.Error("failed to resolve key",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return renderIndex(c, http.StatusInternalServerError, domain.IndexView{Error: msgStorageFailed})
	}

	return c.Redirect(http.StatusFound, original)
}
