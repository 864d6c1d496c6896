package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	apperrors "lavajato/internal/errors"
)

const currentParams = "temperature_2m,relative_humidity_2m,weather_code,wind_speed_10m"

// Current holds the current-conditions block returned by the provider.
type Current struct {
	Temperature2m      float64 `json:"temperature_2m"`
	RelativeHumidity2m float64 `json:"relative_humidity_2m"`
	WeatherCode        int     `json:"weather_code"`
	WindSpeed10m       float64 `json:"wind_speed_10m"`
}

// Report is the upstream forecast response forwarded as-is to clients.
type Report struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Current   Current `json:"current"`
}

// Client fetches current conditions from an Open-Meteo compatible provider.
// Responses are never cached and failed calls are not retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a weather client against the given base URL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// GetCurrent fetches the current weather for the given coordinates.
func (c *Client) GetCurrent(ctx context.Context, latitude, longitude float64) (*Report, error) {
	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%g", latitude))
	query.Set("longitude", fmt.Sprintf("%g", longitude))
	query.Set("current", currentParams)
	query.Set("timezone", "auto")

	endpoint := c.baseURL + "/v1/forecast?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.ErrWeatherUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.ErrWeatherUnavailable
	}

	var report Report
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, apperrors.ErrWeatherUnavailable
	}
	return &report, nil
}
