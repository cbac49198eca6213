// Package espn fetches NFL scoreboard, injury, standings, and play-by-play
// data from the public ESPN site API. Every fetch has a bounded timeout and
// a typed safe default — a slow or broken feed degrades one cycle's data,
// it never propagates an error into the scoring path.
package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/kwhalen/nfl-edge/internal/telemetry"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	seasonYear int
}

func NewClient(baseURL string, timeout time.Duration, seasonYear int) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		// The site API is unauthenticated; stay polite.
		limiter:    rate.NewLimiter(rate.Limit(10), 10),
		seasonYear: seasonYear,
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("espn: %s -> status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}

	telemetry.Metrics.FeedLatency.Record(time.Since(start))
	telemetry.Debugf("espn: GET %s -> %d (%s)", path, resp.StatusCode, time.Since(start))
	return nil
}
