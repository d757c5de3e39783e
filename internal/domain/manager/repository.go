package manager

import "context"

// Provider fetches per-manager season history and transfers.
type Provider interface {
	FetchManagerHistory(ctx context.Context, managerID int64) (History, error)
	FetchManagerTransfers(ctx context.Context, managerID int64) ([]Transfer, error)
}
