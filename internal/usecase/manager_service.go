package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/fpl-ownership/internal/domain/league"
	"github.com/riskibarqy/fpl-ownership/internal/domain/manager"
	"github.com/riskibarqy/fpl-ownership/internal/domain/roster"
	"github.com/riskibarqy/fpl-ownership/internal/platform/logging"
)

const defaultManagerSummaryWorkers = 4

// ManagerSummary is a manager's season at a glance. Error is set when the
// manager's records could not be fetched.
type ManagerSummary struct {
	ManagerID        int64
	Label            string
	TotalPoints      int
	OverallRank      int64
	LatestGameweek   int
	LatestPoints     int
	TransfersMade    int
	TransfersCost    int
	Chips            []manager.ChipUsage
	FreeHitGameweeks []int
	Error            string
	DurationMs       int64
}

type ManagerService struct {
	provider manager.Provider
	registry league.Registry
	workers  int
	logger   *logging.Logger
}

func NewManagerService(provider manager.Provider, registry league.Registry, workers int, logger *logging.Logger) *ManagerService {
	if workers <= 0 {
		workers = defaultManagerSummaryWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &ManagerService{
		provider: provider,
		registry: registry,
		workers:  workers,
		logger:   logger,
	}
}

func (s *ManagerService) Registry() league.Registry {
	return s.registry
}

// ListSummaries returns one row per registry manager in registry order.
func (s *ManagerService) ListSummaries(ctx context.Context) ([]ManagerSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ManagerService.ListSummaries")
	defer span.End()

	managers := s.registry.Managers
	out := make([]ManagerSummary, len(managers))
	if len(managers) == 0 {
		return out, nil
	}

	pool, err := ants.NewPool(min(s.workers, len(managers)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, m := range managers {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			out[i] = s.summarize(ctx, m)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit summary task: %w", err)
		}
	}
	workers.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list manager summaries: %w", err)
	}
	return out, nil
}

func (s *ManagerService) summarize(ctx context.Context, m league.Manager) ManagerSummary {
	start := time.Now()
	row := ManagerSummary{ManagerID: m.ID, Label: m.Label}

	history, err := s.provider.FetchManagerHistory(ctx, m.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch manager history failed", "manager_id", m.ID, "error", err)
		row.Error = fmt.Sprintf("fetch history: %v", err)
		row.DurationMs = time.Since(start).Milliseconds()
		return row
	}
	transfers, err := s.provider.FetchManagerTransfers(ctx, m.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch manager transfers failed", "manager_id", m.ID, "error", err)
		row.Error = fmt.Sprintf("fetch transfers: %v", err)
		row.DurationMs = time.Since(start).Milliseconds()
		return row
	}

	if latest, ok := history.Latest(); ok {
		row.TotalPoints = latest.TotalPoints
		row.OverallRank = latest.OverallRank
		row.LatestGameweek = latest.Gameweek
		row.LatestPoints = latest.Points
	}
	for _, gw := range history.Gameweeks {
		row.TransfersCost += gw.TransfersCost
	}
	row.TransfersMade = len(transfers)
	row.Chips = append([]manager.ChipUsage(nil), history.Chips...)
	row.FreeHitGameweeks = history.ChipGameweeks(roster.ChipFreeHit)

	row.DurationMs = time.Since(start).Milliseconds()
	return row
}
