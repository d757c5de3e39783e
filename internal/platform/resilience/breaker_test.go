package resilience

import (
	"errors"
	"testing"
	"time"
)

var errProvider = errors.New("provider down")

func TestBreaker_Transitions(t *testing.T) {
	b := NewBreaker(BreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: 5 * time.Second, HalfOpenMaxReq: 1})

	now := time.Date(2026, 8, 16, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	failing := func() error { return errProvider }
	succeeding := func() error { return nil }

	if err := b.Execute(failing, nil); !errors.Is(err, errProvider) {
		t.Fatalf("expected provider error, got %v", err)
	}
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	_ = b.Execute(failing, nil)
	if state := b.State(); state != StateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Execute(succeeding, nil); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if state := b.State(); state != StateHalfOpen {
		t.Fatalf("expected half-open state, got %s", state)
	}
	if err := b.Execute(succeeding, nil); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}
}

func TestBreaker_IgnoresNonFailureErrors(t *testing.T) {
	b := NewBreaker(BreakerConfig{Enabled: true, FailureThreshold: 1})
	notFound := errors.New("not found")

	for i := 0; i < 3; i++ {
		_ = b.Execute(func() error { return notFound }, func(err error) bool { return errors.Is(err, errProvider) })
	}
	if state := b.State(); state != StateClosed {
		t.Fatalf("expected closed state when errors are not failures, got %s", state)
	}
}

func TestBreaker_DisabledPassesThrough(t *testing.T) {
	b := NewBreaker(BreakerConfig{Enabled: false, FailureThreshold: 1})
	for i := 0; i < 5; i++ {
		if err := b.Execute(func() error { return errProvider }, nil); !errors.Is(err, errProvider) {
			t.Fatalf("expected raw error from disabled breaker, got %v", err)
		}
	}
}
