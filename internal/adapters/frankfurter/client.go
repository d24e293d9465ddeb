package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fxsummary/internal/domain"
)

const (
	dateLayout    = "2006-01-02"
	baseCurrency  = "EUR"
	quoteCurrency = "USD"
)

// Client fetches EUR→USD rate history from the Frankfurter API.
type Client struct {
	http    *http.Client
	baseURL string
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{http: httpClient, baseURL: baseURL}
}

type historyResponse struct {
	Base      string                        `json:"base"`
	StartDate string                        `json:"start_date"`
	EndDate   string                        `json:"end_date"`
	Rates     map[string]map[string]float64 `json:"rates"`
}

// GetHistory requests the daily rate series for the inclusive date range.
// The response keys only dates the provider has rates for; a date whose
// entry lacks a USD quote yields 0.
func (c *Client) GetHistory(ctx context.Context, start, end time.Time) (domain.RateSeries, error) {
	rangePath := start.Format(dateLayout) + ".." + end.Format(dateLayout)

	resp, err := c.get(ctx, rangePath)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var body historyResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response for %q: %w", rangePath, err)
	}

	series := make(domain.RateSeries, len(body.Rates))
	for date, quotes := range body.Rates {
		series[date] = quotes[quoteCurrency]
	}
	return series, nil
}

// Ping performs a lightweight reachability probe against the latest-rates
// endpoint. Only the status class matters; /latest keys rates by currency
// rather than by date, so the body is not decoded.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.get(ctx, "latest")
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

// get issues the request and verifies the status class. The caller owns the
// response body on success.
func (c *Client) get(ctx context.Context, subPath string) (*http.Response, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + subPath
	q := url.Values{}
	q.Set("from", baseCurrency)
	q.Set("to", quoteCurrency)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %q: %w", subPath, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request for %q: %w", subPath, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d for %q: %s", resp.StatusCode, subPath, resp.Status)
	}

	return resp, nil
}
