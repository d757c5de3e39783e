package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/fpl-ownership/internal/domain/season"
	"github.com/riskibarqy/fpl-ownership/internal/platform/cache"
	"github.com/riskibarqy/fpl-ownership/internal/platform/logging"
)

const seasonSnapshotCacheKey = "season:snapshot"

// SeasonService loads the season snapshot once and serves it read-only.
type SeasonService struct {
	provider season.Provider
	cache    *cache.Store[season.Snapshot]
	logger   *logging.Logger
}

func NewSeasonService(provider season.Provider, logger *logging.Logger) *SeasonService {
	if logger == nil {
		logger = logging.Default()
	}

	return &SeasonService{
		provider: provider,
		cache:    cache.NewStore[season.Snapshot](0),
		logger:   logger,
	}
}

func (s *SeasonService) Snapshot(ctx context.Context) (season.Snapshot, error) {
	return s.cache.GetOrLoad(ctx, seasonSnapshotCacheKey, s.load)
}

func (s *SeasonService) load(ctx context.Context) (season.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.load")
	defer span.End()

	snapshot, err := s.provider.FetchSeasonSnapshot(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return season.Snapshot{}, fmt.Errorf("fetch season snapshot: %w", err)
		}
		return season.Snapshot{}, fmt.Errorf("%w: fetch season snapshot: %w", ErrProviderUnavailable, err)
	}
	if err := snapshot.Validate(); err != nil {
		return season.Snapshot{}, fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	s.logger.InfoContext(ctx, "season snapshot loaded",
		"teams", len(snapshot.Teams),
		"players", len(snapshot.Players),
		"gameweeks", len(snapshot.Gameweeks),
	)
	return snapshot, nil
}

// Gameweeks resolves previous/current/next from the cached snapshot.
func (s *SeasonService) Gameweeks(ctx context.Context) (season.GameweekNumbers, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return season.GameweekNumbers{}, err
	}
	return season.ResolveGameweeks(snapshot), nil
}

// Reset drops the cached snapshot so the next call reloads it.
func (s *SeasonService) Reset() {
	s.cache.Delete(context.Background(), seasonSnapshotCacheKey)
}
