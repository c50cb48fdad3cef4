// Package events fans completion signals out to the engine's handlers.
package events

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wagering/internal/domain"
	"github.com/GlebRadaev/wagering/internal/metrics"
)

type Signal string

const (
	SignalOrderCompleted   Signal = "order.completed"
	SignalDepositCompleted Signal = "deposit.completed"
	SignalVipUpgraded      Signal = "vip.level_upgraded"
)

const (
	resultSuccess   = "success"
	resultPermanent = "permanent"
	resultFailed    = "failed"
)

// Handler is one entry of a signal's dispatch list. Every attempt gets its
// own Timeout; MaxAttempts bounds the total number of attempts.
type Handler[T any] struct {
	Name        string
	MaxAttempts int
	Timeout     time.Duration
	Handle      func(ctx context.Context, payload T) error
}

func defaultBackoff() retry.Backoff {
	b := retry.NewExponential(200 * time.Millisecond)
	b = retry.WithJitterPercent(20, b)
	return retry.WithCappedDuration(10*time.Second, b)
}

// run executes h until it succeeds, fails permanently or runs out of
// attempts. The outcome is logged and counted here, so it never returns
// the handler's error.
func run[T any](ctx context.Context, backoff retry.Backoff, signal Signal, h Handler[T], payload T) string {
	start := time.Now()
	attempts := 0
	maxAttempts := h.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	err := retry.Do(ctx, retry.WithMaxRetries(uint64(maxAttempts-1), backoff), func(ctx context.Context) error {
		attempts++
		attemptCtx := ctx
		if h.Timeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, h.Timeout)
			defer cancel()
		}

		err := h.Handle(attemptCtx, payload)
		switch {
		case err == nil, errors.Is(err, domain.ErrDuplicateEvent):
			return nil
		case domain.Permanent(err):
			return err
		default:
			return retry.RetryableError(err)
		}
	})

	metrics.HandlerDuration.WithLabelValues(string(signal), h.Name).Observe(time.Since(start).Seconds())

	result := resultSuccess
	switch {
	case err == nil:
	case domain.Permanent(err):
		result = resultPermanent
		zap.L().Warn("handler stopped",
			zap.String("signal", string(signal)),
			zap.String("handler", h.Name),
			zap.Int("attempt", attempts),
			zap.Error(err),
		)
	default:
		result = resultFailed
		zap.L().Error("handler gave up",
			zap.String("signal", string(signal)),
			zap.String("handler", h.Name),
			zap.Int("attempts", attempts),
			zap.Error(err),
		)
	}
	metrics.HandlerRuns.WithLabelValues(string(signal), h.Name, result).Inc()
	return result
}
