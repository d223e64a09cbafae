package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyglass/skyglass/internal/common"
)

const forecastPayload = `{
	"current": {
		"time": "2025-01-15T15:00",
		"temperature_2m": 21.4,
		"apparent_temperature": 22.6,
		"relative_humidity_2m": 64,
		"precipitation": 0.1,
		"weather_code": 1,
		"wind_speed_10m": 12.4,
		"wind_direction_10m": 180
	},
	"hourly": {
		"time": ["2025-01-15T15:00", "2025-01-15T16:00"],
		"temperature_2m": [21.4, 20.9],
		"precipitation_probability": [10, null],
		"weather_code": [1, 2],
		"wind_speed_10m": [12.4, 11.0]
	},
	"daily": {
		"time": ["2025-01-15", "2025-01-16"],
		"weather_code": [1, 61],
		"temperature_2m_max": [22.1, 18.0],
		"temperature_2m_min": [11.3, 9.5],
		"precipitation_probability_max": [10, 80]
	}
}`

func testClient() *http.Client {
	return &http.Client{Timeout: 2 * time.Second}
}

func TestFetch(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"current":  q.Get("current"),
			"hourly":   q.Get("hourly"),
			"daily":    q.Get("daily"),
			"timezone": q.Get("timezone"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(forecastPayload))
	}))
	defer srv.Close()

	c := NewClient(testClient(), srv.URL)
	snap, err := c.Fetch(context.Background(), 48.85, 2.35)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"current":  "temperature_2m,apparent_temperature,relative_humidity_2m,precipitation,weather_code,wind_speed_10m,wind_direction_10m",
		"hourly":   "temperature_2m,precipitation_probability,weather_code,wind_speed_10m",
		"daily":    "weather_code,temperature_2m_max,temperature_2m_min,precipitation_probability_max",
		"timezone": "auto",
	}, gotQuery)

	assert.InDelta(t, 21.4, snap.Current.Temperature, 0.001)
	assert.Equal(t, 1, int(snap.Current.Code))
	assert.InDelta(t, 64, snap.Current.Humidity, 0.001)

	require.Len(t, snap.Hourly.Time, 2)
	require.Len(t, snap.Hourly.PrecipProbability, 2)
	require.NotNil(t, snap.Hourly.PrecipProbability[0])
	assert.Equal(t, 10, *snap.Hourly.PrecipProbability[0])
	assert.Nil(t, snap.Hourly.PrecipProbability[1])

	require.Len(t, snap.Daily.Time, 2)
	assert.Equal(t, 61, int(snap.Daily.Code[1]))
	assert.InDelta(t, 9.5, snap.Daily.TempMin[1], 0.001)
}

func TestFetchAbsentFacetsTolerated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current":{"time":"2025-01-15T15:00","temperature_2m":5,"weather_code":0}}`))
	}))
	defer srv.Close()

	c := NewClient(testClient(), srv.URL)
	snap, err := c.Fetch(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, snap.Hourly.Time)
	assert.Empty(t, snap.Daily.Time)
}

func TestFetchServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(testClient(), srv.URL)
	_, err := c.Fetch(context.Background(), 0, 0)
	require.Error(t, err)

	var svcErr *common.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "Weather API", svcErr.Service)
	assert.Equal(t, http.StatusBadGateway, svcErr.Status)
}
