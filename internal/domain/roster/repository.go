package roster

import "context"

// Provider fetches manager rosters. found is false when the source has no
// roster for the manager and gameweek; that is an expected outcome, not an
// error.
type Provider interface {
	FetchManagerRoster(ctx context.Context, managerID int64, gameweek int) (item Roster, found bool, err error)
}
