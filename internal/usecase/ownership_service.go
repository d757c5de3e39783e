package usecase

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/iter"

	"github.com/riskibarqy/fpl-ownership/internal/domain/league"
	"github.com/riskibarqy/fpl-ownership/internal/domain/ownership"
	"github.com/riskibarqy/fpl-ownership/internal/domain/roster"
	"github.com/riskibarqy/fpl-ownership/internal/platform/cache"
	"github.com/riskibarqy/fpl-ownership/internal/platform/logging"
)

const (
	ownershipIndexCacheKey        = "ownership:index"
	defaultOwnershipMaxConcurrent = 4
)

type OwnershipService struct {
	resolver       *RosterResolver
	seasons        *SeasonService
	registry       league.Registry
	maxConcurrency int
	cache          *cache.Store[ownership.Index]
	logger         *logging.Logger
}

type OwnershipOptions struct {
	MaxConcurrency int
}

func NewOwnershipService(
	resolver *RosterResolver,
	seasons *SeasonService,
	registry league.Registry,
	opts OwnershipOptions,
	logger *logging.Logger,
) *OwnershipService {
	if logger == nil {
		logger = logging.Default()
	}
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = defaultOwnershipMaxConcurrent
	}

	return &OwnershipService{
		resolver:       resolver,
		seasons:        seasons,
		registry:       registry,
		maxConcurrency: opts.MaxConcurrency,
		cache:          cache.NewStore[ownership.Index](0),
		logger:         logger,
	}
}

func (s *OwnershipService) Registry() league.Registry {
	return s.registry
}

// Index returns the league ownership index for the current gameweek. It is
// built on first use and reused afterwards.
func (s *OwnershipService) Index(ctx context.Context) (ownership.Index, error) {
	return s.cache.GetOrLoad(ctx, ownershipIndexCacheKey, func(ctx context.Context) (ownership.Index, error) {
		gameweeks, err := s.seasons.Gameweeks(ctx)
		if err != nil {
			return ownership.Index{}, fmt.Errorf("resolve gameweeks: %w", err)
		}
		return s.BuildIndex(ctx, s.registry, gameweeks.Current)
	})
}

// Reset drops the cached index.
func (s *OwnershipService) Reset() {
	s.cache.Delete(context.Background(), ownershipIndexCacheKey)
}

type resolvedRoster struct {
	manager league.Manager
	roster  roster.Roster
	err     error
}

// BuildIndex resolves every manager's roster and merges them in registry
// order. Fetches run concurrently; a later manager overwrites an earlier one
// on collision.
func (s *OwnershipService) BuildIndex(ctx context.Context, registry league.Registry, current *int) (ownership.Index, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OwnershipService.BuildIndex")
	defer span.End()

	mapper := iter.Mapper[league.Manager, resolvedRoster]{MaxGoroutines: s.maxConcurrency}
	results := mapper.Map(registry.Managers, func(m *league.Manager) resolvedRoster {
		item, err := s.resolver.ResolveLatestRoster(ctx, m.ID, current)
		return resolvedRoster{manager: *m, roster: item, err: err}
	})

	builder := ownership.NewBuilder()
	for _, res := range results {
		if res.err != nil {
			return ownership.Index{}, fmt.Errorf("resolve roster manager=%d: %w", res.manager.ID, res.err)
		}
		for _, playerID := range res.roster.PlayerIDs {
			previous, replaced := builder.Assign(playerID, res.manager.Label)
			if replaced && previous != res.manager.Label {
				s.logger.WarnContext(ctx, "player owned by more than one manager",
					"player_id", playerID,
					"previous_owner", previous,
					"owner", res.manager.Label,
				)
			}
		}
	}

	index := builder.Build()
	s.logger.InfoContext(ctx, "ownership index built",
		"managers", len(registry.Managers),
		"owned_players", index.Len(),
	)
	return index, nil
}
