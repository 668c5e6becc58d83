package idempotency

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/domain"
	"github.com/vladislavdragonenkov/shop/internal/metrics"
)

const (
	defaultCleanupInterval  = 10 * time.Minute
	defaultCleanupBatchSize = 500
	defaultStaleAfter       = 5 * time.Minute
)

// CleanupOptions задает параметры воркера обслуживания ключей.
type CleanupOptions struct {
	Logger     *log.Entry
	Metrics    *metrics.ShopMetrics
	Interval   time.Duration
	BatchSize  int
	StaleAfter time.Duration
}

// CleanupOption настраивает CleanupWorker.
type CleanupOption func(*CleanupOptions)

func WithLogger(logger *log.Entry) CleanupOption {
	return func(opts *CleanupOptions) {
		opts.Logger = logger
	}
}

func WithMetrics(m *metrics.ShopMetrics) CleanupOption {
	return func(opts *CleanupOptions) {
		opts.Metrics = m
	}
}

// WithInterval задает интервал между проходами.
func WithInterval(interval time.Duration) CleanupOption {
	return func(opts *CleanupOptions) {
		opts.Interval = interval
	}
}

// WithBatchSize ограничивает число записей, обрабатываемых одним запросом к хранилищу.
func WithBatchSize(batchSize int) CleanupOption {
	return func(opts *CleanupOptions) {
		opts.BatchSize = batchSize
	}
}

// WithStaleAfter задает, сколько ключ может провисеть в processing.
// Дольше обработчик не живёт: checkout укладывается в три попытки по 100ms.
func WithStaleAfter(d time.Duration) CleanupOption {
	return func(opts *CleanupOptions) {
		opts.StaleAfter = d
	}
}

// CleanupWorker обслуживает ключи идемпотентности checkout, оплаты и отмены:
// освобождает брошенные в processing и удаляет просроченные.
type CleanupWorker struct {
	repo       domain.IdempotencyRepository
	logger     *log.Entry
	metrics    *metrics.ShopMetrics
	interval   time.Duration
	batchSize  int
	staleAfter time.Duration
}

func NewCleanupWorker(repo domain.IdempotencyRepository, options ...CleanupOption) *CleanupWorker {
	opts := CleanupOptions{
		Interval:   defaultCleanupInterval,
		BatchSize:  defaultCleanupBatchSize,
		StaleAfter: defaultStaleAfter,
	}
	for _, option := range options {
		option(&opts)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.WithField("component", "idempotency-cleanup-worker")
	}
	if opts.Interval <= 0 {
		opts.Interval = defaultCleanupInterval
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaultCleanupBatchSize
	}
	if opts.StaleAfter <= 0 {
		opts.StaleAfter = defaultStaleAfter
	}

	return &CleanupWorker{
		repo:       repo,
		logger:     logger,
		metrics:    opts.Metrics,
		interval:   opts.Interval,
		batchSize:  opts.BatchSize,
		staleAfter: opts.StaleAfter,
	}
}

// Run выполняет проход сразу и затем каждые interval до отмены ctx.
func (w *CleanupWorker) Run(ctx context.Context) {
	if w.repo == nil {
		w.logger.Warn("idempotency cleanup worker is disabled: repo is nil")
		return
	}

	w.pass(ctx, time.Now().UTC())

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.pass(ctx, time.Now().UTC())
		}
	}
}

func (w *CleanupWorker) pass(ctx context.Context, now time.Time) {
	released, err := w.ReleaseStale(ctx, now)
	if err != nil && !errors.Is(err, context.Canceled) {
		w.logger.WithError(err).Warn("release of stale idempotency keys failed")
	}
	if released > 0 {
		w.logger.WithField("released", released).Warn("idempotency keys were stuck in processing")
	}

	deleted, err := w.DeleteExpired(ctx, now)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		w.metrics.RecordIdempotencyCleanup("error", 0)
		w.logger.WithError(err).Warn("idempotency cleanup run failed")
		return
	}

	w.metrics.RecordIdempotencyCleanup("ok", deleted)
	if deleted > 0 {
		w.logger.WithField("deleted", deleted).Info("idempotency cleanup completed")
	}
}

// ReleaseStale переводит в retryable ключи, не обновлявшиеся дольше staleAfter.
// Клиент, повторивший тот же checkout, снова дойдёт до обработчика вместо вечного AlreadyExists.
func (w *CleanupWorker) ReleaseStale(ctx context.Context, now time.Time) (int, error) {
	if now.IsZero() {
		now = time.Now().UTC()
	}
	cutoff := now.Add(-w.staleAfter)

	total := 0
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		released, err := w.repo.ReleaseStale(ctx, cutoff, w.batchSize)
		if err != nil {
			return total, err
		}
		total += released
		w.metrics.RecordIdempotencyReleased(released)

		if released < w.batchSize {
			return total, nil
		}
	}
}

// DeleteExpired удаляет записи с ttl <= before порциями batchSize.
func (w *CleanupWorker) DeleteExpired(ctx context.Context, before time.Time) (int, error) {
	if before.IsZero() {
		before = time.Now().UTC()
	}

	total := 0
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		deleted, err := w.repo.DeleteExpired(ctx, before, w.batchSize)
		if err != nil {
			return total, err
		}
		total += deleted
		w.metrics.RecordIdempotencyDeleted(deleted)

		if deleted < w.batchSize {
			return total, nil
		}
	}
}
