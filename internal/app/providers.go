package app

import (
	"fmt"

	"github.com/riskibarqy/fpl-ownership/external/fplapi"
	"github.com/riskibarqy/fpl-ownership/internal/config"
	"github.com/riskibarqy/fpl-ownership/internal/domain/manager"
	"github.com/riskibarqy/fpl-ownership/internal/domain/roster"
	"github.com/riskibarqy/fpl-ownership/internal/domain/season"
	"github.com/riskibarqy/fpl-ownership/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fpl-ownership/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fpl-ownership/internal/platform/logging"
	"github.com/riskibarqy/fpl-ownership/internal/platform/resilience"
)

type providers struct {
	seasons  season.Provider
	rosters  roster.Provider
	managers manager.Provider
}

func newProviders(cfg config.Config, logger *logging.Logger) (providers, error) {
	var out providers
	switch cfg.SeasonProvider {
	case config.SeasonProviderMemory:
		out = providers{
			seasons:  memory.NewSeasonProvider(memory.SeedSnapshot()),
			rosters:  memory.NewRosterProvider(memory.SeedRosters()),
			managers: memory.NewManagerProvider(memory.SeedHistories(), memory.SeedTransfers()),
		}
	case config.SeasonProviderFPL, "":
		client := fplapi.NewClient(fplapi.ClientConfig{
			BaseURL:   cfg.FPLBaseURL,
			UserAgent: cfg.FPLUserAgent,
			Timeout:   cfg.FPLTimeout,
			Retry: resilience.RetryConfig{
				MaxRetries:      cfg.FPLMaxRetries,
				InitialInterval: cfg.FPLRetryInitialInterval,
			},
			RateLimitRPS:   cfg.FPLRateLimitRPS,
			RateLimitBurst: cfg.FPLRateLimitBurst,
			Logger:         logger.Named("fplapi"),
			CircuitBreaker: resilience.BreakerConfig{
				Enabled:          cfg.FPLCircuitEnabled,
				FailureThreshold: cfg.FPLCircuitFailureCount,
				OpenTimeout:      cfg.FPLCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.FPLCircuitHalfOpenMaxReq,
			},
		})
		out = providers{seasons: client, rosters: client, managers: client}
	default:
		return providers{}, fmt.Errorf("unsupported season provider %q", cfg.SeasonProvider)
	}

	if cfg.RosterCacheTTL > 0 {
		out.rosters = cache.NewRosterProvider(out.rosters, cfg.RosterCacheTTL)
		out.managers = cache.NewManagerProvider(out.managers, cfg.RosterCacheTTL)
	}

	logger.Info("season providers configured",
		"provider", cfg.SeasonProvider,
		"roster_cache_ttl", cfg.RosterCacheTTL.String(),
	)
	return out, nil
}
