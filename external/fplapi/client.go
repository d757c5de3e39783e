package fplapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/riskibarqy/fpl-ownership/internal/domain/manager"
	"github.com/riskibarqy/fpl-ownership/internal/domain/roster"
	"github.com/riskibarqy/fpl-ownership/internal/domain/season"
	"github.com/riskibarqy/fpl-ownership/internal/platform/logging"
	"github.com/riskibarqy/fpl-ownership/internal/platform/resilience"
	"github.com/riskibarqy/fpl-ownership/internal/usecase"
)

const (
	defaultBaseURL   = "https://fantasy.premierleague.com/api"
	defaultUserAgent = "fpl-ownership/1.0"
	maxResponseBytes = 8 << 20
)

var (
	errFPLTransient = crerr.New("fpl transient failure")
	errFPLNotFound  = crerr.New("fpl resource not found")
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	UserAgent      string
	Timeout        time.Duration
	Retry          resilience.RetryConfig
	RateLimitRPS   float64
	RateLimitBurst int
	Logger         *logging.Logger
	CircuitBreaker resilience.BreakerConfig
}

// Client reads the public Fantasy Premier League API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	retry      resilience.RetryConfig
	limiter    *rate.Limiter
	logger     *logging.Logger
	breaker    *resilience.Breaker
	flight     singleflight.Group
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	limit := rate.Inf
	if cfg.RateLimitRPS > 0 {
		limit = rate.Limit(cfg.RateLimitRPS)
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		retry:      cfg.Retry,
		limiter:    rate.NewLimiter(limit, burst),
		logger:     logger,
		breaker:    resilience.NewBreaker(cfg.CircuitBreaker),
	}
}

func (c *Client) FetchSeasonSnapshot(ctx context.Context) (season.Snapshot, error) {
	var payload bootstrapEnvelope
	if err := c.getJSON(ctx, "/bootstrap-static/", &payload); err != nil {
		return season.Snapshot{}, fmt.Errorf("fetch bootstrap-static: %w", err)
	}

	out := season.Snapshot{
		Teams:     make([]season.Team, 0, len(payload.Teams)),
		Players:   make([]season.Player, 0, len(payload.Elements)),
		Gameweeks: make([]season.Gameweek, 0, len(payload.Events)),
	}
	for _, t := range payload.Teams {
		out.Teams = append(out.Teams, season.Team{Code: t.Code, ID: t.ID, Name: t.Name, ShortName: t.ShortName})
	}
	for _, e := range payload.Elements {
		out.Players = append(out.Players, season.Player{
			ID:          e.ID,
			Code:        e.Code,
			TeamCode:    e.TeamCode,
			ElementType: e.ElementType,
			WebName:     e.WebName,
			FirstName:   e.FirstName,
			SecondName:  e.SecondName,
			Status:      e.Status,
		})
	}
	for _, ev := range payload.Events {
		out.Gameweeks = append(out.Gameweeks, season.Gameweek{
			ID:         ev.ID,
			Name:       ev.Name,
			IsPrevious: ev.IsPrevious,
			IsCurrent:  ev.IsCurrent,
			IsNext:     ev.IsNext,
			Finished:   ev.Finished,
		})
	}
	return out, nil
}

// FetchManagerRoster reports found=false for any non-2xx response or once
// retries are exhausted. Only cancellation and an open breaker are errors.
func (c *Client) FetchManagerRoster(ctx context.Context, managerID int64, gameweek int) (roster.Roster, bool, error) {
	path := fmt.Sprintf("/entry/%d/event/%d/picks/", managerID, gameweek)

	var payload picksEnvelope
	if err := c.getJSON(ctx, path, &payload); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return roster.Roster{}, false, ctxErr
		}
		if crerr.Is(err, usecase.ErrProviderUnavailable) {
			return roster.Roster{}, false, err
		}
		if !crerr.Is(err, errFPLNotFound) {
			c.logger.WarnContext(ctx, "fpl picks unavailable, treating as absent",
				"manager_id", managerID,
				"gameweek", gameweek,
				"error", err,
			)
		}
		return roster.Roster{}, false, nil
	}

	item := roster.Roster{
		ManagerID:  managerID,
		Gameweek:   gameweek,
		ActiveChip: payload.ActiveChip,
		PlayerIDs:  make([]int64, 0, len(payload.Picks)),
	}
	for _, p := range payload.Picks {
		item.PlayerIDs = append(item.PlayerIDs, p.Element)
	}
	return item, true, nil
}

func (c *Client) FetchManagerHistory(ctx context.Context, managerID int64) (manager.History, error) {
	var payload historyEnvelope
	if err := c.getJSON(ctx, fmt.Sprintf("/entry/%d/history/", managerID), &payload); err != nil {
		return manager.History{}, c.mapEntryError(err, managerID, "history")
	}

	out := manager.History{
		ManagerID: managerID,
		Gameweeks: make([]manager.GameweekHistory, 0, len(payload.Current)),
		Chips:     make([]manager.ChipUsage, 0, len(payload.Chips)),
	}
	for _, h := range payload.Current {
		out.Gameweeks = append(out.Gameweeks, manager.GameweekHistory{
			Gameweek:      h.Event,
			Points:        h.Points,
			TotalPoints:   h.TotalPoints,
			OverallRank:   h.OverallRank,
			Transfers:     h.EventTransfers,
			TransfersCost: h.EventTransfersCost,
			PointsOnBench: h.PointsOnBench,
			Bank:          h.Bank,
			Value:         h.Value,
		})
	}
	for _, chip := range payload.Chips {
		out.Chips = append(out.Chips, manager.ChipUsage{
			Name:     chip.Name,
			Gameweek: chip.Event,
			PlayedAt: parseProviderTime(chip.Time),
		})
	}
	return out, nil
}

func (c *Client) FetchManagerTransfers(ctx context.Context, managerID int64) ([]manager.Transfer, error) {
	var payload []transferItem
	if err := c.getJSON(ctx, fmt.Sprintf("/entry/%d/transfers/", managerID), &payload); err != nil {
		return nil, c.mapEntryError(err, managerID, "transfers")
	}

	out := make([]manager.Transfer, 0, len(payload))
	for _, t := range payload {
		out = append(out, manager.Transfer{
			ManagerID:  managerID,
			Gameweek:   t.Event,
			ElementIn:  t.ElementIn,
			ElementOut: t.ElementOut,
			CostIn:     t.ElementInCost,
			CostOut:    t.ElementOutCost,
			MadeAt:     parseProviderTime(t.Time),
		})
	}
	return out, nil
}

func (c *Client) mapEntryError(err error, managerID int64, resource string) error {
	if crerr.Is(err, errFPLNotFound) {
		return fmt.Errorf("%w: manager=%d %s", usecase.ErrNotFound, managerID, resource)
	}
	return fmt.Errorf("fetch manager=%d %s: %w", managerID, resource, err)
}

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	fullURL := c.baseURL + path

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		var raw []byte
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			raw, reqErr = c.executeRequest(ctx, fullURL)
			return reqErr
		}, isFPLCircuitFailure)
		return raw, execErr
	})
	if err != nil {
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "fpl circuit breaker rejected request", "state", c.breaker.State(), "path", path)
			return fmt.Errorf("%w: fpl api is temporarily unavailable", usecase.ErrProviderUnavailable)
		}
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return crerr.Newf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrap(err, "decode fpl payload")
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	notify := func(err error, wait time.Duration) {
		c.logger.DebugContext(ctx, "retrying fpl request", "url", fullURL, "wait", wait, "error", err)
	}

	raw, err := resilience.Retry(ctx, c.retry, func() ([]byte, error) {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, resilience.Permanent(crerr.Wrap(err, "wait for rate limiter"))
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, resilience.Permanent(crerr.Wrap(err, "build request"))
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, resilience.Permanent(ctxErr)
			}
			return nil, crerr.Mark(crerr.Wrap(err, "send request"), errFPLTransient)
		}

		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
		_ = resp.Body.Close()
		if readErr != nil {
			return nil, crerr.Mark(crerr.Wrap(readErr, "read response body"), errFPLTransient)
		}

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return body, nil
		case resp.StatusCode == http.StatusNotFound:
			return nil, resilience.Permanent(crerr.Mark(crerr.Newf("fpl status=%d", resp.StatusCode), errFPLNotFound))
		case isRetryableStatus(resp.StatusCode):
			return nil, crerr.Mark(crerr.Newf("fpl status=%d body=%s", resp.StatusCode, abbreviateBody(body)), errFPLTransient)
		default:
			return nil, resilience.Permanent(crerr.Newf("fpl status=%d body=%s", resp.StatusCode, abbreviateBody(body)))
		}
	}, notify)
	if err != nil {
		if !crerr.Is(err, errFPLNotFound) {
			c.logger.WarnContext(ctx, "fpl request failed", "url", fullURL, "error", err)
		}
		return nil, err
	}
	return raw, nil
}

func isFPLCircuitFailure(err error) bool {
	return err != nil && crerr.Is(err, errFPLTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func parseProviderTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
