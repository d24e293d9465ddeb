package adapters

import (
	"context"
	"fxsummary/internal/domain"
	"time"
)

// RatesClient talks to the remote rate provider.
type RatesClient interface {
	GetHistory(ctx context.Context, start, end time.Time) (domain.RateSeries, error)
	Ping(ctx context.Context) error
}

// SnapshotStore serves the bundled rate snapshot used when the remote
// provider is unreachable.
type SnapshotStore interface {
	Load() (domain.RateSeries, error)
}
