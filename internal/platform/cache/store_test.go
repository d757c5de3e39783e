package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "season:snapshot", loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore[int](0)
	var calls atomic.Int32

	failing := func(context.Context) (int, error) {
		calls.Add(1)
		return 0, errUnexpectedValue
	}
	if _, err := store.GetOrLoad(context.Background(), "k", failing); !errors.Is(err, errUnexpectedValue) {
		t.Fatalf("expected loader error, got %v", err)
	}

	ok := func(context.Context) (int, error) {
		calls.Add(1)
		return 7, nil
	}
	got, err := store.GetOrLoad(context.Background(), "k", ok)
	if err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}
	if got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected loader to run twice, got %d", calls.Load())
	}
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()

	store := NewStore[string](0)
	now := time.Date(2026, 8, 16, 11, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "k", "v")
	now = now.Add(365 * 24 * time.Hour)

	if _, ok := store.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected entry to survive with zero ttl")
	}
}

func TestStore_TTLExpiry(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	now := time.Date(2026, 8, 16, 11, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "k", "v")
	now = now.Add(2 * time.Minute)

	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected entry to expire")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired entry to be evicted")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore[int](0)
	ctx := context.Background()
	store.Set(ctx, "roster:1:3", 1)
	store.Set(ctx, "roster:1:2", 2)
	store.Set(ctx, "season:snapshot", 3)

	store.DeletePrefix(ctx, "roster:")
	if store.Len() != 1 {
		t.Fatalf("expected only season entry to remain, got %d", store.Len())
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
