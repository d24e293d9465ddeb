package summary

import (
	"context"
	"time"

	"fxsummary/internal/adapters"
	"fxsummary/internal/domain"

	"github.com/sethvargo/go-retry"
	"github.com/sirupsen/logrus"
)

const (
	defaultMaxAttempts = 3
	defaultBackoffBase = time.Second
)

// FetchResult is the two-variant outcome of a remote fetch: either a series
// or "remote unavailable". Callers must branch on Available; exhausted
// retries are not an error.
type FetchResult struct {
	Series    domain.RateSeries
	Available bool
}

func FetchedSeries(series domain.RateSeries) FetchResult {
	return FetchResult{Series: series, Available: true}
}

func Unavailable() FetchResult {
	return FetchResult{}
}

// Fetcher retrieves a rate series from the remote provider with bounded
// retries and exponential backoff (base, 2*base, ... between attempts).
// The per-attempt timeout lives on the client's underlying http.Client.
type Fetcher struct {
	client      adapters.RatesClient
	maxAttempts uint64
	backoffBase time.Duration
}

func NewFetcher(client adapters.RatesClient, maxAttempts int, backoffBase time.Duration) *Fetcher {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if backoffBase <= 0 {
		backoffBase = defaultBackoffBase
	}
	return &Fetcher{
		client:      client,
		maxAttempts: uint64(maxAttempts),
		backoffBase: backoffBase,
	}
}

// Fetch attempts the remote call up to maxAttempts times. The backoff sleep
// only parks the calling goroutine, so concurrent requests keep making
// progress.
func (f *Fetcher) Fetch(ctx context.Context, start, end time.Time) FetchResult {
	backoff := retry.WithMaxRetries(f.maxAttempts-1, retry.NewExponential(f.backoffBase))

	var series domain.RateSeries
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		fetched, fetchErr := f.client.GetHistory(ctx, start, end)
		if fetchErr != nil {
			return retry.RetryableError(fetchErr)
		}
		series = fetched
		return nil
	})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"start": start.Format(dateLayout),
			"end":   end.Format(dateLayout),
		}).Warn("Remote rate provider unavailable, all attempts exhausted")
		return Unavailable()
	}

	return FetchedSeries(series)
}
