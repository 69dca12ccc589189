package retry

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/piresc/wheelshare/internal/pkg/logger"
)

// Func is an operation that may be attempted more than once
type Func func(ctx context.Context) error

// Config holds retry configuration
type Config struct {
	MaxRetries int           // attempts after the first one
	BaseDelay  time.Duration // delay before the first retry
	MaxDelay   time.Duration
	Multiplier float64
	Jitter     bool
	// Retryable decides whether err is worth another attempt; nil retries everything
	Retryable func(err error) bool
}

// DefaultConfig returns the backoff used for broker publishes
func DefaultConfig() Config {
	return Config{
		MaxRetries: 2,
		BaseDelay:  50 * time.Millisecond,
		MaxDelay:   time.Second,
		Multiplier: 2.0,
		Jitter:     true,
	}
}

// Retrier runs a Func with exponential backoff
type Retrier struct {
	config Config
	logger *logger.ZapLogger
}

// New creates a retrier; a nil logger falls back to the global one
func New(config Config, l *logger.ZapLogger) *Retrier {
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	if config.Multiplier < 1 {
		config.Multiplier = 1
	}
	return &Retrier{config: config, logger: l}
}

// Execute runs fn until it succeeds, returns a non-retryable error, exhausts the
// retries or ctx is done
func (r *Retrier) Execute(ctx context.Context, fn Func) error {
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			if attempt > 0 {
				r.logger.Info("Operation succeeded after retries", logger.Int("attempt", attempt+1))
			}
			return nil
		}
		lastErr = err

		if r.config.Retryable != nil && !r.config.Retryable(err) {
			return err
		}
		if attempt == r.config.MaxRetries {
			break
		}

		delay := r.delay(attempt)
		r.logger.Debug("Operation failed, retrying",
			logger.Err(err),
			logger.Int("attempt", attempt+1),
			logger.Duration("delay", delay))

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	if r.config.MaxRetries == 0 {
		return lastErr
	}
	return fmt.Errorf("retry limit exceeded after %d attempts: %w", r.config.MaxRetries+1, lastErr)
}

// delay is BaseDelay*Multiplier^attempt capped at MaxDelay, plus up to 10% jitter
func (r *Retrier) delay(attempt int) time.Duration {
	d := float64(r.config.BaseDelay) * math.Pow(r.config.Multiplier, float64(attempt))
	if r.config.MaxDelay > 0 && d > float64(r.config.MaxDelay) {
		d = float64(r.config.MaxDelay)
	}
	if r.config.Jitter {
		d += d * 0.1 * rand.Float64()
	}
	return time.Duration(d)
}
