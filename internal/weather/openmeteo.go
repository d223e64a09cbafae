package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/skyglass/skyglass/internal/common"
)

// DefaultBaseURL is the Open-Meteo forecast endpoint.
const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// Field lists requested per facet. timezone=auto makes the service return
// wall-clock strings local to the queried coordinates.
var (
	currentFields = []string{
		"temperature_2m",
		"apparent_temperature",
		"relative_humidity_2m",
		"precipitation",
		"weather_code",
		"wind_speed_10m",
		"wind_direction_10m",
	}
	hourlyFields = []string{
		"temperature_2m",
		"precipitation_probability",
		"weather_code",
		"wind_speed_10m",
	}
	dailyFields = []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_probability_max",
	}
)

// Client fetches forecasts from Open-Meteo. It does not retry and does not
// cache; a non-success status surfaces as *geo.ServiceError.
type Client struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewClient creates a Client. baseURL may be empty to use the public
// endpoint; tests point it at a stub server.
func NewClient(client *http.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openmeteo",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
	return &Client{
		baseURL: baseURL,
		client:  client,
		circuit: cb,
	}
}

// Fetch retrieves the current, hourly and daily facets for one coordinate
// pair in a single request.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (ForecastSnapshot, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", lat))
	values.Set("longitude", fmt.Sprintf("%f", lon))
	values.Set("current", strings.Join(currentFields, ","))
	values.Set("hourly", strings.Join(hourlyFields, ","))
	values.Set("daily", strings.Join(dailyFields, ","))
	values.Set("timezone", "auto")

	u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return ForecastSnapshot{}, err
	}

	result, err := c.circuit.Execute(func() (interface{}, error) {
		resp, execErr := c.client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, &common.ServiceError{Service: "Weather API", Status: resp.StatusCode}
		}
		return resp, nil
	})
	if err != nil {
		return ForecastSnapshot{}, err
	}
	resp := result.(*http.Response)
	defer resp.Body.Close()

	var snapshot ForecastSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return ForecastSnapshot{}, err
	}
	return snapshot, nil
}
