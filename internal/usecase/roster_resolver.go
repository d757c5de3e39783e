package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/fpl-ownership/internal/domain/roster"
)

// RosterResolver finds the most recent roster that reflects season-long
// ownership, walking back past absent and free-hit gameweeks.
type RosterResolver struct {
	provider roster.Provider
}

func NewRosterResolver(provider roster.Provider) *RosterResolver {
	return &RosterResolver{provider: provider}
}

// ResolveLatestRoster returns an empty roster when gameweek is nil or when no
// genuine roster exists in [1, gameweek].
func (r *RosterResolver) ResolveLatestRoster(ctx context.Context, managerID int64, gameweek *int) (roster.Roster, error) {
	if gameweek == nil {
		return roster.Empty(managerID), nil
	}
	if !roster.ValidGameweek(*gameweek) {
		return roster.Roster{}, fmt.Errorf("%w: manager=%d gameweek=%d", ErrInvalidGameweek, managerID, *gameweek)
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.RosterResolver.ResolveLatestRoster")
	defer span.End()

	for g := *gameweek; g >= roster.MinGameweek; g-- {
		item, found, err := r.provider.FetchManagerRoster(ctx, managerID, g)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return roster.Roster{}, fmt.Errorf("fetch roster manager=%d gameweek=%d: %w", managerID, g, err)
			}
			return roster.Roster{}, fmt.Errorf("%w: fetch roster manager=%d gameweek=%d: %w", ErrProviderUnavailable, managerID, g, err)
		}
		if !found || item.IsFreeHit() {
			continue
		}

		item.ManagerID = managerID
		item.Gameweek = g
		if item.PlayerIDs == nil {
			item.PlayerIDs = []int64{}
		}
		return item, nil
	}

	return roster.Empty(managerID), nil
}
