package weather

import "github.com/skyglass/skyglass/internal/conditions"

// CurrentConditions is the single current reading of a snapshot.
type CurrentConditions struct {
	Time          string          `json:"time"`
	Temperature   float64         `json:"temperature_2m"`
	FeelsLike     float64         `json:"apparent_temperature"`
	Humidity      float64         `json:"relative_humidity_2m"`
	Precipitation float64         `json:"precipitation"`
	Code          conditions.Code `json:"weather_code"`
	WindSpeed     float64         `json:"wind_speed_10m"`
	WindDirection float64         `json:"wind_direction_10m"`
}

// HourlyFacet holds parallel, chronologically ascending series; index i
// refers to the same instant across all of them. PrecipProbability entries
// may be nil when the service omits them.
type HourlyFacet struct {
	Time              []string          `json:"time"`
	Temperature       []float64         `json:"temperature_2m"`
	PrecipProbability []*int            `json:"precipitation_probability"`
	Code              []conditions.Code `json:"weather_code"`
	WindSpeed         []float64         `json:"wind_speed_10m"`
}

// DailyFacet holds parallel, chronologically ascending per-day series.
type DailyFacet struct {
	Time              []string          `json:"time"`
	Code              []conditions.Code `json:"weather_code"`
	TempMax           []float64         `json:"temperature_2m_max"`
	TempMin           []float64         `json:"temperature_2m_min"`
	PrecipProbability []int             `json:"precipitation_probability_max"`
}

// ForecastSnapshot is the result of one forecast fetch. A new successful
// fetch replaces the whole snapshot; facets are never merged.
type ForecastSnapshot struct {
	Current CurrentConditions `json:"current"`
	Hourly  HourlyFacet       `json:"hourly"`
	Daily   DailyFacet        `json:"daily"`
}
