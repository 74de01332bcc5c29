package metrics

//go:generate go tool mockery

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"snip/internal/config"
)

// Sink receives metric batches. *pgxpool.Pool satisfies it.
type Sink interface {
	CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error)
}

type Recorder struct {
	sink         Sink
	logger       *slog.Logger
	cfg          *config.MetricsConfig
	httpCh       chan HTTPMetric
	infraCh      chan InfraMetric
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func NewRecorder(sink Sink, cfg *config.MetricsConfig, logger *slog.Logger) *Recorder {
	return &Recorder{
		sink:       sink,
		logger:     logger,
		cfg:        cfg,
		httpCh:     make(chan HTTPMetric, cfg.BufferSize),
		infraCh:    make(chan InfraMetric, cfg.BufferSize),
		shutdownCh: make(chan struct{}),
	}
}

func (r *Recorder) Enabled() bool {
	return r.cfg.Enabled && r.sink != nil
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	if !r.Enabled() {
		return
	}
	select {
	case r.httpCh <- m:
	default:
		r.logger.Warn("http metrics buffer full, dropping metric")
	}
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	if !r.Enabled() {
		return
	}
	select {
	case r.infraCh <- m:
	default:
		r.logger.Warn("infra metrics buffer full, dropping metric")
	}
}

func (r *Recorder) Start(ctx context.Context) {
	if !r.Enabled() {
		r.logger.Info("metrics recording disabled")
		return
	}

	flushInterval := time.Duration(r.cfg.FlushInterval) * time.Millisecond

	r.wg.Add(2)
	go func() {
		defer r.wg.Done()
		runFlusher(ctx, r, r.httpCh, "http_metrics", httpColumns, flushInterval)
	}()
	go func() {
		defer r.wg.Done()
		runFlusher(ctx, r, r.infraCh, "infra_metrics", infraColumns, flushInterval)
	}()

	r.logger.Info("metrics recorder started",
		slog.Int("buffer_size", r.cfg.BufferSize),
		slog.Int("flush_interval_ms", r.cfg.FlushInterval))
}

// Close stops the flushers after writing whatever is still buffered.
func (r *Recorder) Close() {
	r.shutdownOnce.Do(func() {
		close(r.shutdownCh)
		r.wg.Wait()
	})
}

type rower interface {
	row() []any
}

func runFlusher[T rower](ctx context.Context, r *Recorder, ch <-chan T, table string, columns []string, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	batch := make([]T, 0, r.cfg.FlushThreshold)

	for {
		select {
		case <-ctx.Done():
			drainAndFlush(r, ch, batch, table, columns)
			return
		case <-r.shutdownCh:
			drainAndFlush(r, ch, batch, table, columns)
			return
		case m := <-ch:
			batch = append(batch, m)
			if len(batch) >= r.cfg.FlushThreshold {
				writeBatch(ctx, r, batch, table, columns)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				writeBatch(ctx, r, batch, table, columns)
				batch = batch[:0]
			}
		}
	}
}

func drainAndFlush[T rower](r *Recorder, ch <-chan T, batch []T, table string, columns []string) {
	for {
		select {
		case m := <-ch:
			batch = append(batch, m)
		default:
			if len(batch) > 0 {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				writeBatch(ctx, r, batch, table, columns)
				cancel()
			}
			return
		}
	}
}

func writeBatch[T rower](ctx context.Context, r *Recorder, batch []T, table string, columns []string) {
	if len(batch) == 0 {
		return
	}

	rows := make([][]any, len(batch))
	for i, m := range batch {
		rows[i] = m.row()
	}

	if _, err := r.sink.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows)); err != nil {
		r.logger.Error("failed to write metrics batch",
			slog.String("table", table),
			slog.String("error", err.Error()))
	}
}
