package util

import (
	"context"
	"errors"
	"testing"
	"time"

	"interview_prep_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	logger.Log = zap.NewNop()
}

func TestRetrySucceedsFirstAttempt(t *testing.T) {
	calls := 0
	result, err := Retry(context.Background(), 3, time.Millisecond, func() (string, error) {
		calls++
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, calls)
}

func TestRetryRecoversAfterFailure(t *testing.T) {
	calls := 0
	result, err := Retry(context.Background(), 3, time.Millisecond, func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
	assert.Equal(t, 3, calls)
}

func TestRetryExhaustsAttempts(t *testing.T) {
	wantErr := errors.New("still broken")
	calls := 0
	_, err := Retry(context.Background(), 2, time.Millisecond, func() (string, error) {
		calls++
		return "", wantErr
	})

	// maxRetries=2 means 3 attempts total, last error returned unchanged.
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, wantErr)
}

func TestRetryBackoffDoubles(t *testing.T) {
	base := 10 * time.Millisecond
	start := time.Now()
	_, err := Retry(context.Background(), 2, base, func() (struct{}, error) {
		return struct{}{}, errors.New("nope")
	})
	elapsed := time.Since(start)

	require.Error(t, err)
	// Two sleeps: base and 2*base.
	assert.GreaterOrEqual(t, elapsed, 3*base)
}

func TestRetryStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := Retry(ctx, 5, time.Minute, func() (string, error) {
			calls++
			return "", errors.New("fail")
		})
		assert.ErrorIs(t, err, context.Canceled)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("retry did not stop after cancellation")
	}
	assert.Equal(t, 1, calls)
}
