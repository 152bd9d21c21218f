// Package openmeteo implements domain.SignalProvider using the Open-Meteo
// forecast API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/climate-risk-service/internal/domain"
	"github.com/couchcryptid/climate-risk-service/internal/observability"
)

const providerLabel = "open_meteo"

// Client fetches current conditions and the hourly precipitation series
// from Open-Meteo.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an Open-Meteo client.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		metrics:    metrics,
		logger:     logger,
	}
}

// FetchSignal retrieves the raw environmental signal for a coordinate.
// Fields the API omits stay nil; normalization downstream applies defaults.
func (c *Client) FetchSignal(ctx context.Context, lat, lon float64) (domain.RawSignal, error) {
	params := url.Values{
		"latitude":  {fmt.Sprintf("%.4f", lat)},
		"longitude": {fmt.Sprintf("%.4f", lon)},
		"current":   {"temperature_2m,relative_humidity_2m,precipitation,wind_speed_10m"},
		"hourly":    {"precipitation"},
		"timezone":  {"auto"},
	}

	start := time.Now()
	resp, err := c.doRequest(ctx, c.baseURL+"?"+params.Encode())
	c.metrics.ProviderDuration.WithLabelValues(providerLabel).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.ProviderRequests.WithLabelValues(providerLabel, "error").Inc()
		return domain.RawSignal{}, err
	}
	c.metrics.ProviderRequests.WithLabelValues(providerLabel, "success").Inc()

	return domain.RawSignal{
		Temperature:         resp.Current.Temperature2m,
		Humidity:            resp.Current.RelativeHumidity2m,
		Precipitation:       resp.Current.Precipitation,
		HourlyPrecipitation: resp.Hourly.Precipitation,
		WindSpeed:           resp.Current.WindSpeed10m,
		Latitude:            lat,
		Longitude:           lon,
	}, nil
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("open-meteo API error: status %d: %s", resp.StatusCode, body)
	}

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &decoded, nil
}

// Open-Meteo API response types. Current fields are pointers because the
// API omits values it cannot measure.

type response struct {
	Current current `json:"current"`
	Hourly  hourly  `json:"hourly"`
}

type current struct {
	Temperature2m      *float64 `json:"temperature_2m"`
	RelativeHumidity2m *float64 `json:"relative_humidity_2m"`
	Precipitation      *float64 `json:"precipitation"`
	WindSpeed10m       *float64 `json:"wind_speed_10m"`
}

type hourly struct {
	Precipitation []float64 `json:"precipitation"`
}
