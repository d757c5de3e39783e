package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/riskibarqy/fpl-ownership/internal/domain/manager"
	"github.com/riskibarqy/fpl-ownership/internal/domain/roster"
	basecache "github.com/riskibarqy/fpl-ownership/internal/platform/cache"
)

type RosterProvider struct {
	next  roster.Provider
	cache *basecache.Store[cachedRoster]
}

type cachedRoster struct {
	value roster.Roster
	found bool
}

// NewRosterProvider wraps next with a ttl cache. A zero ttl caches for the
// process lifetime.
func NewRosterProvider(next roster.Provider, ttl time.Duration) *RosterProvider {
	return &RosterProvider{next: next, cache: basecache.NewStore[cachedRoster](ttl)}
}

// FetchManagerRoster caches absent rosters too; errors are never cached.
func (p *RosterProvider) FetchManagerRoster(ctx context.Context, managerID int64, gameweek int) (roster.Roster, bool, error) {
	key := "roster:" + strconv.FormatInt(managerID, 10) + ":" + strconv.Itoa(gameweek)
	v, err := p.cache.GetOrLoad(ctx, key, func(ctx context.Context) (cachedRoster, error) {
		item, found, err := p.next.FetchManagerRoster(ctx, managerID, gameweek)
		if err != nil {
			return cachedRoster{}, err
		}
		item.PlayerIDs = append([]int64(nil), item.PlayerIDs...)
		return cachedRoster{value: item, found: found}, nil
	})
	if err != nil {
		return roster.Roster{}, false, err
	}

	out := v.value
	out.PlayerIDs = append([]int64(nil), out.PlayerIDs...)
	return out, v.found, nil
}

type ManagerProvider struct {
	next      manager.Provider
	histories *basecache.Store[manager.History]
	transfers *basecache.Store[[]manager.Transfer]
}

func NewManagerProvider(next manager.Provider, ttl time.Duration) *ManagerProvider {
	return &ManagerProvider{
		next:      next,
		histories: basecache.NewStore[manager.History](ttl),
		transfers: basecache.NewStore[[]manager.Transfer](ttl),
	}
}

func (p *ManagerProvider) FetchManagerHistory(ctx context.Context, managerID int64) (manager.History, error) {
	key := "manager:history:" + strconv.FormatInt(managerID, 10)
	return p.histories.GetOrLoad(ctx, key, func(ctx context.Context) (manager.History, error) {
		return p.next.FetchManagerHistory(ctx, managerID)
	})
}

func (p *ManagerProvider) FetchManagerTransfers(ctx context.Context, managerID int64) ([]manager.Transfer, error) {
	key := "manager:transfers:" + strconv.FormatInt(managerID, 10)
	items, err := p.transfers.GetOrLoad(ctx, key, func(ctx context.Context) ([]manager.Transfer, error) {
		return p.next.FetchManagerTransfers(ctx, managerID)
	})
	if err != nil {
		return nil, err
	}
	return append([]manager.Transfer(nil), items...), nil
}
