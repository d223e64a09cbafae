package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/skyglass/skyglass/internal/common"
)

// DefaultBaseURL is the Open-Meteo geocoding search endpoint.
const DefaultBaseURL = "https://geocoding-api.open-meteo.com/v1/search"

// ErrPlaceNotFound is returned when the geocoding service has no match for
// the queried name. The text is user-facing.
var ErrPlaceNotFound = errors.New("Place not found")

// Location is one resolved place: coordinates plus a display label.
// It is created once per resolution and never mutated.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Label     string  `json:"label"`
}

// Geocoder resolves free-text place names via the Open-Meteo geocoding API.
type Geocoder struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

// NewGeocoder creates a Geocoder. baseURL may be empty to use the public
// endpoint; tests point it at a stub server.
func NewGeocoder(client *http.Client, baseURL string) *Geocoder {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "geocoding",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
	return &Geocoder{
		baseURL: baseURL,
		client:  client,
		circuit: cb,
	}
}

// ResolveByName resolves a place name to its best-ranked match. The label is
// "<name>, <country>" when a country is present, otherwise just "<name>".
func (g *Geocoder) ResolveByName(ctx context.Context, query string) (Location, error) {
	values := url.Values{}
	values.Set("name", query)
	values.Set("count", "1")
	values.Set("language", "en")
	values.Set("format", "json")

	u := fmt.Sprintf("%s?%s", g.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Location{}, err
	}

	result, err := g.circuit.Execute(func() (interface{}, error) {
		resp, execErr := g.client.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, &common.ServiceError{Service: "Geocoding", Status: resp.StatusCode}
		}
		return resp, nil
	})
	if err != nil {
		return Location{}, err
	}
	resp := result.(*http.Response)
	defer resp.Body.Close()

	var payload struct {
		Results []struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Name      string  `json:"name"`
			Country   string  `json:"country"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Location{}, err
	}

	if len(payload.Results) == 0 {
		return Location{}, ErrPlaceNotFound
	}

	best := payload.Results[0]
	label := best.Name
	if best.Country != "" {
		label = fmt.Sprintf("%s, %s", best.Name, best.Country)
	}

	return Location{
		Latitude:  best.Latitude,
		Longitude: best.Longitude,
		Label:     label,
	}, nil
}
