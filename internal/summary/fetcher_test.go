package summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"fxsummary/internal/domain"

	"github.com/stretchr/testify/require"
)

// scriptedClient fails the first `failures` calls and records when each
// attempt happened, so tests can observe backoff delays.
type scriptedClient struct {
	failures int
	series   domain.RateSeries
	calls    []time.Time
}

func (c *scriptedClient) GetHistory(_ context.Context, _, _ time.Time) (domain.RateSeries, error) {
	c.calls = append(c.calls, time.Now())
	if len(c.calls) <= c.failures {
		return nil, errors.New("connection refused")
	}
	return c.series, nil
}

func (c *scriptedClient) Ping(_ context.Context) error { return nil }

func testRange(t *testing.T) (time.Time, time.Time) {
	t.Helper()
	start, err := time.Parse("2006-01-02", "2025-01-01")
	require.NoError(t, err)
	end, err := time.Parse("2006-01-02", "2025-01-10")
	require.NoError(t, err)
	return start, end
}

func TestFetcher_FirstAttemptSuccess(t *testing.T) {
	series := domain.RateSeries{"2025-01-01": 1.04}
	client := &scriptedClient{series: series}
	f := NewFetcher(client, 3, 10*time.Millisecond)

	start, end := testRange(t)
	began := time.Now()
	result := f.Fetch(context.Background(), start, end)

	require.True(t, result.Available)
	require.Equal(t, series, result.Series)
	require.Len(t, client.calls, 1)
	require.Less(t, time.Since(began), 10*time.Millisecond)
}

func TestFetcher_SecondAttemptSuccess_SingleBackoffDelay(t *testing.T) {
	series := domain.RateSeries{"2025-01-01": 1.04, "2025-01-02": 1.05}
	client := &scriptedClient{failures: 1, series: series}
	base := 60 * time.Millisecond
	f := NewFetcher(client, 3, base)

	start, end := testRange(t)
	result := f.Fetch(context.Background(), start, end)

	require.True(t, result.Available)
	require.Equal(t, series, result.Series)
	require.Len(t, client.calls, 2)

	// exactly one backoff delay of ~base between the two attempts
	gap := client.calls[1].Sub(client.calls[0])
	require.GreaterOrEqual(t, gap, base)
	require.Less(t, gap, 2*base)
}

func TestFetcher_AllAttemptsFail(t *testing.T) {
	client := &scriptedClient{failures: 10}
	f := NewFetcher(client, 3, time.Millisecond)

	start, end := testRange(t)
	result := f.Fetch(context.Background(), start, end)

	require.False(t, result.Available)
	require.Nil(t, result.Series)
	require.Len(t, client.calls, 3)
}

func TestFetcher_BackoffDoubles(t *testing.T) {
	client := &scriptedClient{failures: 2}
	base := 40 * time.Millisecond
	f := NewFetcher(client, 3, base)

	start, end := testRange(t)
	result := f.Fetch(context.Background(), start, end)

	require.True(t, result.Available)
	require.Len(t, client.calls, 3)

	firstGap := client.calls[1].Sub(client.calls[0])
	secondGap := client.calls[2].Sub(client.calls[1])
	require.GreaterOrEqual(t, firstGap, base)
	require.GreaterOrEqual(t, secondGap, 2*base)
}

func TestFetcher_ContextCanceledStopsRetrying(t *testing.T) {
	client := &scriptedClient{failures: 10}
	f := NewFetcher(client, 3, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start, end := testRange(t)
	result := f.Fetch(ctx, start, end)

	require.False(t, result.Available)
	// the 1s backoff never completed, so only the first attempt ran
	require.Len(t, client.calls, 1)
}

func TestNewFetcher_Defaults(t *testing.T) {
	client := &scriptedClient{failures: 10}
	f := NewFetcher(client, 0, 0)

	require.Equal(t, uint64(defaultMaxAttempts), f.maxAttempts)
	require.Equal(t, defaultBackoffBase, f.backoffBase)
}
