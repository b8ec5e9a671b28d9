// Package weatherclient fetches hourly forecasts from the National Weather
// Service API (api.weather.gov). The API is keyless but requires a
// User-Agent identifying the caller.
package weatherclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://api.weather.gov"
	userAgent      = "daybreak (personal daily-routine tool)"
)

// Period is one hour of forecast.
type Period struct {
	Name            string
	StartTime       time.Time
	Temperature     int
	TemperatureUnit string
	ShortForecast   string
}

// Client calls the NWS points and hourly-forecast endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	now        func() time.Time
}

// NewClient creates a client against the public NWS API.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		now:        time.Now,
	}
}

// HourlyForecast returns the hourly periods for the given coordinates,
// limited to those starting within the window from now. The NWS API is
// two-step: the points endpoint maps coordinates to a grid-specific forecast
// URL, which then serves the periods.
func (c *Client) HourlyForecast(ctx context.Context, lat, lon float64, window time.Duration) ([]Period, error) {
	pointsURL := fmt.Sprintf("%s/points/%f,%f", c.baseURL, lat, lon)

	var points struct {
		Properties struct {
			ForecastHourly string `json:"forecastHourly"`
		} `json:"properties"`
	}
	if err := c.getJSON(ctx, pointsURL, &points); err != nil {
		return nil, fmt.Errorf("failed to resolve forecast URL: %w", err)
	}
	if points.Properties.ForecastHourly == "" {
		return nil, fmt.Errorf("points response has no hourly forecast URL")
	}

	var forecast struct {
		Properties struct {
			Periods []struct {
				Name            string `json:"name"`
				StartTime       string `json:"startTime"`
				Temperature     int    `json:"temperature"`
				TemperatureUnit string `json:"temperatureUnit"`
				ShortForecast   string `json:"shortForecast"`
			} `json:"periods"`
		} `json:"properties"`
	}
	if err := c.getJSON(ctx, points.Properties.ForecastHourly, &forecast); err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	cutoff := c.now().Add(window)
	var periods []Period
	for _, p := range forecast.Properties.Periods {
		start, err := parseStartTime(p.StartTime)
		if err != nil {
			continue
		}
		if !start.Before(cutoff) {
			break
		}
		periods = append(periods, Period{
			Name:            p.Name,
			StartTime:       start,
			Temperature:     p.Temperature,
			TemperatureUnit: p.TemperatureUnit,
			ShortForecast:   p.ShortForecast,
		})
	}
	return periods, nil
}

func (c *Client) getJSON(ctx context.Context, url string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// parseStartTime handles both the RFC 3339 timestamps NWS normally sends and
// offset-less values, which are taken as UTC.
func parseStartTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}
