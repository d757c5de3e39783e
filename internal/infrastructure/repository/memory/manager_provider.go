package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/fpl-ownership/internal/domain/manager"
)

type ManagerProvider struct {
	mu        sync.RWMutex
	histories map[int64]manager.History
	transfers map[int64][]manager.Transfer
}

func NewManagerProvider(histories []manager.History, transfers []manager.Transfer) *ManagerProvider {
	p := &ManagerProvider{
		histories: make(map[int64]manager.History, len(histories)),
		transfers: make(map[int64][]manager.Transfer),
	}
	for _, h := range histories {
		p.histories[h.ManagerID] = h
	}
	for _, t := range transfers {
		p.transfers[t.ManagerID] = append(p.transfers[t.ManagerID], t)
	}
	return p
}

// FetchManagerHistory returns an empty history for unknown managers.
func (p *ManagerProvider) FetchManagerHistory(ctx context.Context, managerID int64) (manager.History, error) {
	if err := ctx.Err(); err != nil {
		return manager.History{}, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	h, ok := p.histories[managerID]
	if !ok {
		return manager.History{ManagerID: managerID}, nil
	}
	return manager.History{
		ManagerID: h.ManagerID,
		Gameweeks: append([]manager.GameweekHistory(nil), h.Gameweeks...),
		Chips:     append([]manager.ChipUsage(nil), h.Chips...),
	}, nil
}

func (p *ManagerProvider) FetchManagerTransfers(ctx context.Context, managerID int64) ([]manager.Transfer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	return append([]manager.Transfer{}, p.transfers[managerID]...), nil
}
