package frankfurter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func rangeDates(t *testing.T) (time.Time, time.Time) {
	t.Helper()
	start, err := time.Parse("2006-01-02", "2025-01-01")
	require.NoError(t, err)
	end, err := time.Parse("2006-01-02", "2025-01-03")
	require.NoError(t, err)
	return start, end
}

func TestClient_GetHistory_Success(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
            "base": "EUR",
            "start_date": "2025-01-01",
            "end_date": "2025-01-03",
            "rates": {
                "2025-01-02": {"USD": 1.0321},
                "2025-01-03": {"USD": 1.0299}
            }
        }`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)

	start, end := rangeDates(t)
	series, err := c.GetHistory(context.Background(), start, end)

	require.NoError(t, err)
	require.Equal(t, "/2025-01-01..2025-01-03", gotPath)
	require.Equal(t, "EUR", gotQuery.Get("from"))
	require.Equal(t, "USD", gotQuery.Get("to"))
	require.Len(t, series, 2)
	require.InDelta(t, 1.0321, series["2025-01-02"], 1e-9)
	require.InDelta(t, 1.0299, series["2025-01-03"], 1e-9)
}

func TestClient_GetHistory_MissingUSDQuoteIsZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"base": "EUR", "rates": {"2025-01-02": {}}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)

	start, end := rangeDates(t)
	series, err := c.GetHistory(context.Background(), start, end)

	require.NoError(t, err)
	require.Len(t, series, 1)
	require.Equal(t, 0.0, series["2025-01-02"])
}

func TestClient_GetHistory_StatusCodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)

	start, end := rangeDates(t)
	_, err := c.GetHistory(context.Background(), start, end)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unexpected status code 503")
}

func TestClient_GetHistory_JSONDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("{")) // invalid JSON
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)

	start, end := rangeDates(t)
	_, err := c.GetHistory(context.Background(), start, end)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to decode response")
}

func TestClient_GetHistory_BaseURLParseError(t *testing.T) {
	c := NewClient(&http.Client{}, "http://::1]")

	start, end := rangeDates(t)
	_, err := c.GetHistory(context.Background(), start, end)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse base URL")
}

func TestClient_Ping(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		// /latest keys rates by currency, not by date
		_, _ = w.Write([]byte(`{"amount": 1.0, "base": "EUR", "date": "2025-01-10", "rates": {"USD": 1.0304}}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)

	require.NoError(t, c.Ping(context.Background()))
	require.Equal(t, "/latest", gotPath)
}

func TestClient_Ping_IgnoresBodyShape(t *testing.T) {
	// reachability must not depend on the payload being parseable
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not json at all"))
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)

	require.NoError(t, c.Ping(context.Background()))
}

func TestClient_Ping_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.Client(), srv.URL)

	require.Error(t, c.Ping(context.Background()))
}
