package summary

import (
	"context"
	"fmt"
	"time"

	"fxsummary/internal/adapters"
	"fxsummary/internal/domain"

	"github.com/sirupsen/logrus"
)

// SeriesFetcher is the retry-wrapped remote retrieval port.
type SeriesFetcher interface {
	Fetch(ctx context.Context, start, end time.Time) FetchResult
}

// RemoteProber reports whether the remote provider answers at all.
type RemoteProber interface {
	Ping(ctx context.Context) error
}

// Service runs the fetch → fallback → summarize flow for one request.
// It holds no mutable state; concurrent requests are fully independent.
type Service struct {
	fetcher      SeriesFetcher
	prober       RemoteProber
	snapshots    adapters.SnapshotStore
	probeTimeout time.Duration
}

func NewService(fetcher SeriesFetcher, prober RemoteProber, snapshots adapters.SnapshotStore, probeTimeout time.Duration) *Service {
	if probeTimeout <= 0 {
		probeTimeout = 5 * time.Second
	}
	return &Service{
		fetcher:      fetcher,
		prober:       prober,
		snapshots:    snapshots,
		probeTimeout: probeTimeout,
	}
}

// GetSummary validates the range, fetches the series from the remote
// provider and, when every attempt failed, serves the bundled snapshot
// instead. The source tag is the caller's only signal that a fallback
// happened.
func (s *Service) GetSummary(ctx context.Context, q Query) (domain.Summary, error) {
	if q.Start.After(q.End) {
		return domain.Summary{}, domain.ErrInvalidRange
	}

	var series domain.RateSeries
	source := domain.SourceAPI

	result := s.fetcher.Fetch(ctx, q.Start, q.End)
	if result.Available {
		series = result.Series
	} else {
		snap, err := s.snapshots.Load()
		if err != nil {
			return domain.Summary{}, fmt.Errorf("fallback snapshot unreadable: %w", err)
		}
		series = snap
		source = domain.SourceFallback
		logrus.Warn("Serving fallback snapshot instead of live rates")
	}

	return Summarize(series, q.Mode, source)
}

// RemoteReachable probes the remote provider with its own short timeout.
// It never interferes with summary handling.
func (s *Service) RemoteReachable(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, s.probeTimeout)
	defer cancel()

	if err := s.prober.Ping(probeCtx); err != nil {
		logrus.WithError(err).Debug("Remote rate provider probe failed")
		return false
	}
	return true
}
