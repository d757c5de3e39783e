package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fpl-ownership/internal/domain/season"
)

type SeasonProvider struct {
	mu       sync.RWMutex
	snapshot season.Snapshot
}

func NewSeasonProvider(snapshot season.Snapshot) *SeasonProvider {
	return &SeasonProvider{snapshot: cloneSnapshot(snapshot)}
}

func (p *SeasonProvider) FetchSeasonSnapshot(_ context.Context) (season.Snapshot, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return cloneSnapshot(p.snapshot), nil
}

func (p *SeasonProvider) Replace(snapshot season.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.snapshot = cloneSnapshot(snapshot)
}

func cloneSnapshot(s season.Snapshot) season.Snapshot {
	return season.Snapshot{
		Teams:     append([]season.Team(nil), s.Teams...),
		Players:   append([]season.Player(nil), s.Players...),
		Gameweeks: append([]season.Gameweek(nil), s.Gameweeks...),
	}
}
