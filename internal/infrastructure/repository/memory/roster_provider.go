package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fpl-ownership/internal/domain/roster"
)

type rosterKey struct {
	managerID int64
	gameweek  int
}

type RosterProvider struct {
	mu    sync.RWMutex
	items map[rosterKey]roster.Roster
}

func NewRosterProvider(rosters []roster.Roster) *RosterProvider {
	p := &RosterProvider{items: make(map[rosterKey]roster.Roster, len(rosters))}
	for _, r := range rosters {
		p.Put(r)
	}
	return p
}

func (p *RosterProvider) FetchManagerRoster(ctx context.Context, managerID int64, gameweek int) (roster.Roster, bool, error) {
	if err := ctx.Err(); err != nil {
		return roster.Roster{}, false, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	item, ok := p.items[rosterKey{managerID: managerID, gameweek: gameweek}]
	if !ok {
		return roster.Roster{}, false, nil
	}
	item.PlayerIDs = append([]int64(nil), item.PlayerIDs...)
	return item, true, nil
}

func (p *RosterProvider) Put(r roster.Roster) {
	p.mu.Lock()
	defer p.mu.Unlock()

	r.PlayerIDs = append([]int64(nil), r.PlayerIDs...)
	p.items[rosterKey{managerID: r.ManagerID, gameweek: r.Gameweek}] = r
}
