package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRetry_SucceedsAfterTransientFailures(t *testing.T) {
	t.Parallel()

	attempts := 0
	got, err := Retry(context.Background(), RetryConfig{MaxRetries: 3, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond}, func() (string, error) {
		attempts++
		if attempts < 3 {
			return "", errProvider
		}
		return "ok", nil
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ok" || attempts != 3 {
		t.Fatalf("expected ok after 3 attempts, got %q after %d", got, attempts)
	}
}

func TestRetry_StopsOnPermanent(t *testing.T) {
	t.Parallel()

	attempts := 0
	_, err := Retry(context.Background(), RetryConfig{MaxRetries: 5, InitialInterval: time.Millisecond}, func() (int, error) {
		attempts++
		return 0, Permanent(errProvider)
	}, nil)
	if !errors.Is(err, errProvider) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("expected a single attempt, got %d", attempts)
	}
}

func TestRetry_HonoursMaxRetries(t *testing.T) {
	t.Parallel()

	attempts := 0
	_, err := Retry(context.Background(), RetryConfig{MaxRetries: 2, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond}, func() (int, error) {
		attempts++
		return 0, errProvider
	}, nil)
	if !errors.Is(err, errProvider) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}
