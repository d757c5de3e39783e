package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/fpl-ownership/internal/domain/roster"
	rostermock "github.com/riskibarqy/fpl-ownership/internal/mocks/domain/roster"
)

func intPtr(v int) *int { return &v }

func TestRosterResolver_NilGameweekReturnsEmptyWithoutFetching(t *testing.T) {
	t.Parallel()

	provider := rostermock.NewProvider(t)
	resolver := NewRosterResolver(provider)

	got, err := resolver.ResolveLatestRoster(context.Background(), 42, nil)
	if err != nil {
		t.Fatalf("resolve roster: %v", err)
	}
	if !got.IsEmpty() || got.ManagerID != 42 {
		t.Fatalf("expected empty roster for manager 42, got %+v", got)
	}
	provider.AssertNotCalled(t, "FetchManagerRoster", mock.Anything, mock.Anything, mock.Anything)
}

func TestRosterResolver_RejectsOutOfRangeGameweek(t *testing.T) {
	t.Parallel()

	for _, gw := range []int{0, -1, 39} {
		provider := rostermock.NewProvider(t)
		resolver := NewRosterResolver(provider)

		_, err := resolver.ResolveLatestRoster(context.Background(), 42, intPtr(gw))
		if !errors.Is(err, ErrInvalidGameweek) {
			t.Fatalf("gameweek %d: expected ErrInvalidGameweek, got %v", gw, err)
		}
	}
}

func TestRosterResolver_ReturnsGenuineRosterAtRequestedGameweek(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := rostermock.NewProvider(t)
	provider.
		On("FetchManagerRoster", ctx, int64(42), 5).
		Return(roster.Roster{PlayerIDs: []int64{1, 2, 3}}, true, nil).
		Once()

	got, err := NewRosterResolver(provider).ResolveLatestRoster(ctx, 42, intPtr(5))
	if err != nil {
		t.Fatalf("resolve roster: %v", err)
	}
	if got.Gameweek != 5 || got.ManagerID != 42 || len(got.PlayerIDs) != 3 {
		t.Fatalf("unexpected roster: %+v", got)
	}
}

func TestRosterResolver_SkipsFreeHitAndAbsentWeeks(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := rostermock.NewProvider(t)
	provider.
		On("FetchManagerRoster", ctx, int64(42), 5).
		Return(roster.Roster{ActiveChip: roster.ChipFreeHit, PlayerIDs: []int64{9}}, true, nil).
		Once()
	provider.
		On("FetchManagerRoster", ctx, int64(42), 4).
		Return(roster.Roster{}, false, nil).
		Once()
	provider.
		On("FetchManagerRoster", ctx, int64(42), 3).
		Return(roster.Roster{ActiveChip: "wildcard", PlayerIDs: []int64{7, 8}}, true, nil).
		Once()

	got, err := NewRosterResolver(provider).ResolveLatestRoster(ctx, 42, intPtr(5))
	if err != nil {
		t.Fatalf("resolve roster: %v", err)
	}
	if got.Gameweek != 3 || got.IsFreeHit() {
		t.Fatalf("expected genuine gw3 roster, got %+v", got)
	}
	if len(got.PlayerIDs) != 2 || got.PlayerIDs[0] != 7 {
		t.Fatalf("unexpected player ids: %v", got.PlayerIDs)
	}
}

func TestRosterResolver_ExhaustedSearchIsEmptyAndBounded(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := rostermock.NewProvider(t)
	provider.
		On("FetchManagerRoster", ctx, int64(42), mock.AnythingOfType("int")).
		Return(roster.Roster{}, false, nil).
		Times(4)

	got, err := NewRosterResolver(provider).ResolveLatestRoster(ctx, 42, intPtr(4))
	if err != nil {
		t.Fatalf("resolve roster: %v", err)
	}
	if !got.IsEmpty() {
		t.Fatalf("expected empty roster, got %+v", got)
	}
	provider.AssertNumberOfCalls(t, "FetchManagerRoster", 4)
}

func TestRosterResolver_FreeHitInFirstGameweekIsEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := rostermock.NewProvider(t)
	provider.
		On("FetchManagerRoster", ctx, int64(42), 1).
		Return(roster.Roster{ActiveChip: roster.ChipFreeHit, PlayerIDs: []int64{1}}, true, nil).
		Once()

	got, err := NewRosterResolver(provider).ResolveLatestRoster(ctx, 42, intPtr(1))
	if err != nil {
		t.Fatalf("resolve roster: %v", err)
	}
	if !got.IsEmpty() {
		t.Fatalf("expected empty roster, got %+v", got)
	}
}

func TestRosterResolver_ProviderErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	errBreaker := errors.New("circuit open")
	provider := rostermock.NewProvider(t)
	provider.
		On("FetchManagerRoster", ctx, int64(42), 2).
		Return(roster.Roster{}, false, errBreaker).
		Once()

	_, err := NewRosterResolver(provider).ResolveLatestRoster(ctx, 42, intPtr(2))
	if !errors.Is(err, ErrProviderUnavailable) || !errors.Is(err, errBreaker) {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
}

func TestRosterResolver_ContextCancellationPropagates(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	provider := rostermock.NewProvider(t)
	provider.
		On("FetchManagerRoster", ctx, int64(42), 2).
		Return(roster.Roster{}, false, context.Canceled).
		Once()

	_, err := NewRosterResolver(provider).ResolveLatestRoster(ctx, 42, intPtr(2))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled, got %v", err)
	}
	if errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("cancellation must not be reported as provider unavailable: %v", err)
	}
}
