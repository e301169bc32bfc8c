package upstream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/zapdeals/console/internal/config"
)

// CircuitBreaker guards upstream round-trips so a dead dispatch service
// degrades the console to a stale view instead of hammering it every tick.
type CircuitBreaker struct {
	cb     *gobreaker.CircuitBreaker
	logger *zap.Logger
}

func NewCircuitBreaker(cfg *config.CircuitBreakerConfig, logger *zap.Logger) *CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        "upstream-circuit-breaker",
		MaxRequests: cfg.MaxRequests,
		Interval:    time.Duration(cfg.Interval) * time.Second,
		Timeout:     time.Duration(cfg.Timeout) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.ConsecutiveFails && failureRatio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			return err == nil
		},
	}

	return &CircuitBreaker{
		cb:     gobreaker.NewCircuitBreaker(settings),
		logger: logger,
	}
}

// Execute runs the given function through the circuit breaker.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	_, err := cb.cb.Execute(func() (interface{}, error) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			return nil, fn()
		}
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) {
			cb.logger.Warn("Circuit breaker is open, upstream request blocked")
			return fmt.Errorf("upstream unavailable: %w", ErrUpstreamUnavailable)
		}
		if errors.Is(err, gobreaker.ErrTooManyRequests) {
			cb.logger.Warn("Circuit breaker: too many requests")
			return fmt.Errorf("upstream unavailable: %w", ErrUpstreamUnavailable)
		}
		return err
	}

	return nil
}

// State returns the current circuit breaker state.
func (cb *CircuitBreaker) State() gobreaker.State {
	return cb.cb.State()
}

// Counts returns the current request and failure counts.
func (cb *CircuitBreaker) Counts() (requests, failures uint32) {
	counts := cb.cb.Counts()
	return counts.Requests, counts.TotalFailures
}
