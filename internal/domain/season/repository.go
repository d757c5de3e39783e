package season

import "context"

// Provider loads the season snapshot from the data source.
type Provider interface {
	FetchSeasonSnapshot(ctx context.Context) (Snapshot, error)
}
