package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"snip/internal/cache"
	"snip/internal/config"
	"snip/internal/handler"
	"snip/internal/metrics"
	custommiddleware "snip/internal/middleware"
	"snip/internal/service"
	"snip/internal/shortener"
	"snip/internal/validation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	gen, err := shortener.New()
	if err != nil {
		return fmt.Errorf("failed to create shortener: %w", err)
	}

	b, err := openBackend(ctx, cfg, gen, logger)
	if err != nil {
		return err
	}
	defer b.close()
	logger.Info("store ready", slog.String("backend", cfg.Store.Backend))

	urlCache, err := cache.New(cfg.Cache.MaxSizePow2)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}
	defer urlCache.Close()

	var sink metrics.Sink
	if cfg.Metrics.Enabled {
		if b.pool == nil {
			logger.Warn("metrics need the postgres backend, recording disabled",
				slog.String("backend", cfg.Store.Backend))
		} else {
			if err := metrics.CreateTables(ctx, b.pool); err != nil {
				return err
			}
			sink = b.pool
		}
	}

	recorder := metrics.NewRecorder(sink, &cfg.Metrics, logger)
	recorder.Start(ctx)
	defer recorder.Close()

	if recorder.Enabled() {
		scheduler, err := scheduleInfraMetrics(cfg.Metrics.InfraSchedule, recorder, b.pool, urlCache)
		if err != nil {
			return err
		}
		scheduler.Start()
		defer func() { <-scheduler.Stop().Done() }()
	}

	urlValidator := validation.NewURLValidator(cfg.Validation.MaxURLLength, cfg.Validation.AllowPrivateIPs)
	urlService := service.NewURLService(b.store, urlCache, urlValidator, cfg.App.BaseURL, cfg.Store.Timeout)
	h := handler.New(urlService, logger)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	if recorder.Enabled() {
		e.Use(custommiddleware.Metrics(recorder))
	}
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, logger))

	h.Register(e)

	if cfg.Pprof.Enabled {
		pprofGroup := e.Group("/debug/pprof", custommiddleware.PprofAuth(cfg.Pprof.Secret))
		custommiddleware.RegisterPprof(pprofGroup)
		logger.Info("pprof endpoints enabled", slog.String("path", "/debug/pprof/*"))
	}

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpListener, err := listen(httpAddr, cfg.Server.MaxConnections)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.String("base_url", cfg.App.BaseURL),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	servers := []*http.Server{serve(newServer(e), httpListener, logger)}

	if cfg.TLS.Enabled {
		httpsAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.TLS.Port)
		tlsListener, err := listenTLS(httpsAddr, cfg.Server.MaxConnections, &cfg.TLS)
		if err != nil {
			return err
		}
		logger.Info("starting HTTPS server", slog.String("addr", httpsAddr))

		servers = append(servers, serve(newServer(e), tlsListener, logger))
	}

	<-ctx.Done()
	logger.Info("shutting down servers")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
	}

	return nil
}
