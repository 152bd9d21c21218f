// Package openelevation implements domain.ElevationProvider using the
// Open-Elevation lookup API.
package openelevation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/climate-risk-service/internal/observability"
)

const providerLabel = "open_elevation"

// Client looks up terrain elevation for a coordinate.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an Open-Elevation client.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		metrics:    metrics,
		logger:     logger,
	}
}

// FetchElevation returns the elevation in meters for a coordinate.
// An empty result set maps to 0m, matching the normalizer default.
func (c *Client) FetchElevation(ctx context.Context, lat, lon float64) (float64, error) {
	params := url.Values{
		"locations": {fmt.Sprintf("%.6f,%.6f", lat, lon)},
	}

	start := time.Now()
	decoded, err := c.doRequest(ctx, c.baseURL+"?"+params.Encode())
	c.metrics.ProviderDuration.WithLabelValues(providerLabel).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.ProviderRequests.WithLabelValues(providerLabel, "error").Inc()
		return 0, err
	}
	c.metrics.ProviderRequests.WithLabelValues(providerLabel, "success").Inc()

	if len(decoded.Results) == 0 {
		c.logger.Warn("elevation lookup returned no results", "lat", lat, "lon", lon)
		return 0, nil
	}
	return decoded.Results[0].Elevation, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("elevation request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("open-elevation API error: status %d: %s", resp.StatusCode, body)
	}

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &decoded, nil
}

type response struct {
	Results []result `json:"results"`
}

type result struct {
	Elevation float64 `json:"elevation"`
}
