package util

import (
	"context"
	"interview_prep_backend/pkg/logger"
	"time"

	"go.uber.org/zap"
)

// Retry invokes fn up to maxRetries+1 times. After each failed attempt except
// the last it sleeps baseDelay * 2^attempt before trying again; the sleep is
// context-aware so cancelled requests stop waiting. The final error is
// returned unchanged. The wrapper does not inspect the error, so permanent
// failures burn attempts just like transient ones; callers choose the attempt
// ceiling accordingly.
func Retry[T any](ctx context.Context, maxRetries int, baseDelay time.Duration, fn func() (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == maxRetries {
			break
		}

		delay := baseDelay << attempt
		logger.Log.Warn("attempt failed, retrying",
			zap.Int("attempt", attempt+1),
			zap.Duration("delay", delay),
			zap.Error(err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	return zero, lastErr
}
