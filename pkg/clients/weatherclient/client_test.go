package weatherclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, now time.Time) (*Client, *httptest.Server) {
	t.Helper()

	mux := http.NewServeMux()
	var server *httptest.Server
	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)

	mux.HandleFunc("/points/", func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		fmt.Fprintf(w, `{"properties": {"forecastHourly": "%s/forecast/hourly"}}`, server.URL)
	})
	mux.HandleFunc("/forecast/hourly", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"properties": {"periods": [
			{"name": "This Hour", "startTime": %q, "temperature": 71, "temperatureUnit": "F", "shortForecast": "Sunny"},
			{"name": "Tonight", "startTime": %q, "temperature": 58, "temperatureUnit": "F", "shortForecast": "Clear"},
			{"name": "Later", "startTime": %q, "temperature": 64, "temperatureUnit": "F", "shortForecast": "Rain"}
		]}}`,
			now.Add(time.Hour).Format(time.RFC3339),
			now.Add(10*time.Hour).Format(time.RFC3339),
			now.Add(72*time.Hour).Format(time.RFC3339))
	})

	client := NewClient()
	client.baseURL = server.URL
	client.now = func() time.Time { return now }
	return client, server
}

func TestHourlyForecast_FiltersToWindow(t *testing.T) {
	now := time.Date(2026, 8, 25, 7, 0, 0, 0, time.UTC)
	client, _ := newTestClient(t, now)

	periods, err := client.HourlyForecast(context.Background(), 32.683556, -97.414222, 48*time.Hour)
	require.NoError(t, err)
	require.Len(t, periods, 2)
	assert.Equal(t, "This Hour", periods[0].Name)
	assert.Equal(t, 71, periods[0].Temperature)
	assert.Equal(t, "F", periods[0].TemperatureUnit)
	assert.Equal(t, "Sunny", periods[0].ShortForecast)
	assert.Equal(t, "Tonight", periods[1].Name)
}

func TestHourlyForecast_PointsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient()
	client.baseURL = server.URL

	_, err := client.HourlyForecast(context.Background(), 0, 0, 48*time.Hour)
	assert.ErrorContains(t, err, "failed to resolve forecast URL")
}

func TestHourlyForecast_MissingForecastURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"properties": {}}`)
	}))
	defer server.Close()

	client := NewClient()
	client.baseURL = server.URL

	_, err := client.HourlyForecast(context.Background(), 0, 0, 48*time.Hour)
	assert.ErrorContains(t, err, "no hourly forecast URL")
}

func TestParseStartTime(t *testing.T) {
	withOffset, err := parseStartTime("2026-08-25T07:00:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, 7, withOffset.Hour())

	withoutOffset, err := parseStartTime("2026-08-25T07:00:00")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, withoutOffset.Location())

	_, err = parseStartTime("yesterday")
	assert.Error(t, err)
}
