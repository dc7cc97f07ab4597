package resilience

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"kisanmitra/internal/logger"
)

var retryAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "kisanmitra_retry_attempts_total",
	Help: "Total number of retried operations by name and outcome",
}, []string{"operation", "outcome"})

// RetryConfig bounds a retried operation.
type RetryConfig struct {
	Name           string
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Multiplier     float64

	// RetryableChecker decides whether err deserves another attempt. Nil retries everything.
	RetryableChecker func(err error) bool
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		Name:           "default",
		MaxAttempts:    3,
		InitialBackoff: 200 * time.Millisecond,
		MaxBackoff:     2 * time.Second,
		Multiplier:     2,
	}
}

// Retry runs op until it succeeds, returns a non-retryable error, runs out of
// attempts, or ctx is done. The last error is returned unchanged.
func Retry[T any](ctx context.Context, cfg RetryConfig, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	attempts := cfg.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	backoff := cfg.InitialBackoff

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		result, err := op(ctx)
		if err == nil {
			if attempt > 1 {
				retryAttemptsTotal.WithLabelValues(cfg.Name, "recovered").Inc()
			}
			return result, nil
		}
		lastErr = err

		if cfg.RetryableChecker != nil && !cfg.RetryableChecker(err) {
			retryAttemptsTotal.WithLabelValues(cfg.Name, "permanent").Inc()
			return zero, err
		}
		if attempt == attempts {
			break
		}

		logger.WithContext(ctx).Warn("operation failed, retrying",
			zap.String("operation", cfg.Name),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", backoff),
			zap.Error(err),
		)

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
		backoff = nextBackoff(backoff, cfg)
	}

	retryAttemptsTotal.WithLabelValues(cfg.Name, "exhausted").Inc()
	return zero, lastErr
}

func nextBackoff(current time.Duration, cfg RetryConfig) time.Duration {
	mult := cfg.Multiplier
	if mult < 1 {
		mult = 1
	}
	next := time.Duration(float64(current) * mult)
	if cfg.MaxBackoff > 0 && next > cfg.MaxBackoff {
		return cfg.MaxBackoff
	}
	return next
}
