package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/fpl-ownership/internal/config"
	"github.com/riskibarqy/fpl-ownership/internal/interfaces/httpapi"
	"github.com/riskibarqy/fpl-ownership/internal/platform/logging"
	"github.com/riskibarqy/fpl-ownership/internal/usecase"
)

// Services is the usecase graph shared by the HTTP and MCP entrypoints.
type Services struct {
	Seasons   *usecase.SeasonService
	Ownership *usecase.OwnershipService
	Catalog   *usecase.CatalogService
	Managers  *usecase.ManagerService
}

func NewServices(cfg config.Config, logger *logging.Logger) (Services, error) {
	if logger == nil {
		logger = logging.Default()
	}

	registry := cfg.League.Registry
	if err := registry.Validate(); err != nil {
		return Services{}, fmt.Errorf("validate league registry: %w", err)
	}

	p, err := newProviders(cfg, logger)
	if err != nil {
		return Services{}, err
	}

	seasons := usecase.NewSeasonService(p.seasons, logger)
	owners := usecase.NewOwnershipService(
		usecase.NewRosterResolver(p.rosters),
		seasons,
		registry,
		usecase.OwnershipOptions{MaxConcurrency: cfg.OwnershipMaxConcurrency},
		logger,
	)

	return Services{
		Seasons:   seasons,
		Ownership: owners,
		Catalog:   usecase.NewCatalogService(seasons, owners, cfg.League.Positions, cfg.League.ManagerPosition),
		Managers:  usecase.NewManagerService(p.managers, registry, cfg.ManagerSummaryWorkers, logger),
	}, nil
}

// Warm loads the season snapshot and the ownership index. A failed snapshot
// is fatal; a failed index build is retried lazily on the next request.
func (s Services) Warm(ctx context.Context, logger *logging.Logger) error {
	if logger == nil {
		logger = logging.Default()
	}

	if _, err := s.Seasons.Snapshot(ctx); err != nil {
		return fmt.Errorf("load season snapshot: %w", err)
	}

	index, err := s.Ownership.Index(ctx)
	if err != nil {
		logger.WarnContext(ctx, "warm ownership index failed", "error", err)
		return nil
	}
	logger.InfoContext(ctx, "ownership index ready",
		"league", s.Ownership.Registry().Name,
		"owned_players", index.Len(),
	)
	return nil
}

func NewHTTPServer(cfg config.Config, services Services, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	handler := httpapi.NewHandler(services.Seasons, services.Catalog, services.Ownership, services.Managers, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
