package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/fpl-ownership/internal/domain/league"
	"github.com/riskibarqy/fpl-ownership/internal/domain/roster"
	"github.com/riskibarqy/fpl-ownership/internal/infrastructure/repository/memory"
	rostermock "github.com/riskibarqy/fpl-ownership/internal/mocks/domain/roster"
	seasonmock "github.com/riskibarqy/fpl-ownership/internal/mocks/domain/season"
	"github.com/riskibarqy/fpl-ownership/internal/platform/logging"
)

func seededRegistry() league.Registry {
	return league.Registry{
		Name: "Test League",
		Managers: []league.Manager{
			{ID: memory.ManagerJoel, Label: "joel"},
			{ID: memory.ManagerAlex, Label: "alex"},
			{ID: memory.ManagerRob, Label: "rob"},
			{ID: memory.ManagerDanny, Label: "danny"},
		},
	}
}

func newSeededOwnership(t *testing.T, registry league.Registry, maxConcurrency int) *OwnershipService {
	t.Helper()

	seasons := NewSeasonService(memory.NewSeasonProvider(memory.SeedSnapshot()), logging.NewNop())
	resolver := NewRosterResolver(memory.NewRosterProvider(memory.SeedRosters()))
	return NewOwnershipService(resolver, seasons, registry, OwnershipOptions{MaxConcurrency: maxConcurrency}, logging.NewNop())
}

func TestOwnershipService_IndexFromSeededLeague(t *testing.T) {
	t.Parallel()

	service := newSeededOwnership(t, seededRegistry(), 4)
	index, err := service.Index(context.Background())
	if err != nil {
		t.Fatalf("build index: %v", err)
	}

	cases := []struct {
		playerID int64
		owner    string
		owned    bool
	}{
		{playerID: 8, owner: "joel", owned: true},
		{playerID: 30, owner: "alex", owned: true},
		{playerID: 34, owner: "rob", owned: true},
		{playerID: 41, owned: false},
		{playerID: 9999, owned: false},
	}
	for _, tc := range cases {
		owner, ok := index.Owner(tc.playerID)
		if ok != tc.owned || owner != tc.owner {
			t.Fatalf("player %d: got owner=%q owned=%v want owner=%q owned=%v", tc.playerID, owner, ok, tc.owner, tc.owned)
		}
	}
	if index.Len() != 14 {
		t.Fatalf("unexpected index size: %d", index.Len())
	}
}

func TestOwnershipService_LastManagerWinsInRegistryOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	provider := memory.NewRosterProvider([]roster.Roster{
		{ManagerID: 1, Gameweek: 2, PlayerIDs: []int64{100, 101}},
		{ManagerID: 2, Gameweek: 2, PlayerIDs: []int64{101, 102}},
		{ManagerID: 3, Gameweek: 1, PlayerIDs: []int64{102}},
	})
	registry := league.Registry{Managers: []league.Manager{
		{ID: 1, Label: "first"},
		{ID: 2, Label: "second"},
		{ID: 3, Label: "third"},
	}}

	for _, workers := range []int{1, 3} {
		service := NewOwnershipService(NewRosterResolver(provider), nil, registry, OwnershipOptions{MaxConcurrency: workers}, logging.NewNop())
		for run := 0; run < 10; run++ {
			index, err := service.BuildIndex(ctx, registry, intPtr(2))
			if err != nil {
				t.Fatalf("build index: %v", err)
			}
			if owner, _ := index.Owner(101); owner != "second" {
				t.Fatalf("workers=%d: expected second to own 101, got %q", workers, owner)
			}
			if owner, _ := index.Owner(102); owner != "third" {
				t.Fatalf("workers=%d: expected third to own 102, got %q", workers, owner)
			}
		}
	}
}

func TestOwnershipService_NoCurrentGameweekIsEmpty(t *testing.T) {
	t.Parallel()

	provider := rostermock.NewProvider(t)
	service := NewOwnershipService(NewRosterResolver(provider), nil, seededRegistry(), OwnershipOptions{}, logging.NewNop())

	index, err := service.BuildIndex(context.Background(), seededRegistry(), nil)
	if err != nil {
		t.Fatalf("build index: %v", err)
	}
	if index.Len() != 0 {
		t.Fatalf("expected empty index, got %d entries", index.Len())
	}
	provider.AssertNotCalled(t, "FetchManagerRoster", mock.Anything, mock.Anything, mock.Anything)
}

func TestOwnershipService_InvalidGameweekFailsBuild(t *testing.T) {
	t.Parallel()

	provider := rostermock.NewProvider(t)
	service := NewOwnershipService(NewRosterResolver(provider), nil, seededRegistry(), OwnershipOptions{}, logging.NewNop())

	_, err := service.BuildIndex(context.Background(), seededRegistry(), intPtr(39))
	if !errors.Is(err, ErrInvalidGameweek) {
		t.Fatalf("expected ErrInvalidGameweek, got %v", err)
	}
}

func TestOwnershipService_IndexIsBuiltOnce(t *testing.T) {
	t.Parallel()

	seasonProvider := seasonmock.NewProvider(t)
	seasonProvider.On("FetchSeasonSnapshot", mock.Anything).Return(memory.SeedSnapshot(), nil).Once()

	rosterProvider := rostermock.NewProvider(t)
	rosterProvider.
		On("FetchManagerRoster", mock.Anything, int64(1), memory.SeedCurrentGameweek).
		Return(roster.Roster{PlayerIDs: []int64{5}}, true, nil).
		Once()

	registry := league.Registry{Managers: []league.Manager{{ID: 1, Label: "solo"}}}
	service := NewOwnershipService(
		NewRosterResolver(rosterProvider),
		NewSeasonService(seasonProvider, logging.NewNop()),
		registry,
		OwnershipOptions{},
		logging.NewNop(),
	)

	for i := 0; i < 3; i++ {
		index, err := service.Index(context.Background())
		if err != nil {
			t.Fatalf("index: %v", err)
		}
		if owner, _ := index.Owner(5); owner != "solo" {
			t.Fatalf("unexpected owner: %q", owner)
		}
	}
}
