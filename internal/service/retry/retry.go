// Package retry повторяет транзакционные операции при optimistic-конфликтах.
package retry

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/shop/internal/domain"
	"github.com/vladislavdragonenkov/shop/internal/metrics"
)

// Config задаёт границы повторов.
type Config struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultConfig: три попытки с фиксированной паузой 100ms.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		Delay:       100 * time.Millisecond,
	}
}

// Retrier перезапускает операцию целиком, пока она завершается конфликтом версий.
type Retrier struct {
	config  Config
	logger  *log.Entry
	metrics *metrics.ShopMetrics
	sleep   func(ctx context.Context, d time.Duration) error
}

// New создаёт Retrier. Нулевые поля config заменяются значениями по умолчанию.
func New(config Config, logger *log.Entry, m *metrics.ShopMetrics) *Retrier {
	defaults := DefaultConfig()
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = defaults.MaxAttempts
	}
	if config.Delay < 0 {
		config.Delay = defaults.Delay
	}
	if logger == nil {
		logger = log.New().WithField("component", "retry")
	}
	return &Retrier{
		config:  config,
		logger:  logger,
		metrics: m,
		sleep:   sleepContext,
	}
}

// WithSleep подменяет ожидание между попытками (для тестов).
func (r *Retrier) WithSleep(sleep func(ctx context.Context, d time.Duration) error) *Retrier {
	r.sleep = sleep
	return r
}

// Config возвращает действующую конфигурацию.
func (r *Retrier) Config() Config {
	return r.config
}

// Do выполняет fn. Конфликт версий (domain.IsVersionConflict) повторяется до MaxAttempts раз,
// после чего возвращается ошибка, оборачивающая domain.ErrConcurrencyConflict.
// Остальные ошибки возвращаются сразу.
func (r *Retrier) Do(ctx context.Context, operation string, fn func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 1; attempt <= r.config.MaxAttempts; attempt++ {
		err := fn(ctx)
		if err == nil {
			if attempt > 1 {
				r.logger.WithFields(log.Fields{
					"operation": operation,
					"attempt":   attempt,
				}).Debug("operation succeeded after conflict retry")
			}
			return nil
		}
		if !domain.IsVersionConflict(err) {
			return err
		}

		lastErr = err
		if attempt == r.config.MaxAttempts {
			break
		}

		r.metrics.RecordRetry(operation)
		r.logger.WithFields(log.Fields{
			"operation": operation,
			"attempt":   attempt,
			"delay":     r.config.Delay,
			"error":     err,
		}).Warn("concurrent modification, retrying")

		if err := r.sleep(ctx, r.config.Delay); err != nil {
			return fmt.Errorf("%s: retry interrupted: %w", operation, err)
		}
	}

	r.logger.WithFields(log.Fields{
		"operation":    operation,
		"max_attempts": r.config.MaxAttempts,
		"error":        lastErr,
	}).Error("concurrent modification, retries exhausted")
	return fmt.Errorf("%w: %s after %d attempts: %v", domain.ErrConcurrencyConflict, operation, r.config.MaxAttempts, lastErr)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
