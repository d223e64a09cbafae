package view

import (
	"fmt"
	"math"

	"github.com/skyglass/skyglass/internal/conditions"
	"github.com/skyglass/skyglass/internal/timefmt"
	"github.com/skyglass/skyglass/internal/weather"
)

const (
	maxHourly = 12
	maxDaily  = 7
)

// CurrentView is the rendered current-conditions card.
type CurrentView struct {
	Temperature string          `json:"temperature"`
	Condition   string          `json:"condition"`
	Place       string          `json:"place"`
	FeelsLike   string          `json:"feelsLike"`
	Humidity    string          `json:"humidity"`
	Wind        string          `json:"wind"`
	Icon        IconComposition `json:"icon"`
	Theme       ThemeSpec       `json:"theme"`
}

// HourView is one entry of the 12-hour strip.
type HourView struct {
	Time        string `json:"time"`
	Temperature string `json:"temperature"`
	Rain        string `json:"rain"`
}

// DayView is one entry of the 7-day list.
type DayView struct {
	Name      string `json:"name"`
	Condition string `json:"condition"`
	Low       string `json:"low"`
	High      string `json:"high"`
}

func degrees(v float64) string {
	return fmt.Sprintf("%d°", int(math.Round(v)))
}

// floatAt tolerates short or absent parallel arrays, rendering zero instead
// of failing.
func floatAt(s []float64, i int) float64 {
	if i < len(s) {
		return s[i]
	}
	return 0
}

func codeAt(s []conditions.Code, i int) conditions.Code {
	if i < len(s) {
		return s[i]
	}
	return -1
}

// hourLabel formats an instant string, falling back to the catalog
// placeholder when the service returns something unparsable.
func hourLabel(instant string) string {
	t, err := timefmt.ParseLocal(instant)
	if err != nil {
		return conditions.Placeholder
	}
	return timefmt.HourLabel(t)
}

func dayName(instant string) string {
	t, err := timefmt.ParseLocal(instant)
	if err != nil {
		return conditions.Placeholder
	}
	return timefmt.Weekday(t)
}

// RenderCurrent builds the current-conditions card. The theme hour comes
// from the snapshot's observation time, so night theming follows the
// displayed location rather than the server clock.
func RenderCurrent(snap weather.ForecastSnapshot, label string) CurrentView {
	code := snap.Current.Code

	hour := 12
	if t, err := timefmt.ParseLocal(snap.Current.Time); err == nil {
		hour = t.Hour()
	}

	if label == "" {
		label = "Your location"
	}

	return CurrentView{
		Temperature: degrees(snap.Current.Temperature),
		Condition:   conditions.Describe(code),
		Place:       label,
		FeelsLike:   degrees(snap.Current.FeelsLike),
		Humidity:    fmt.Sprintf("%.0f%%", snap.Current.Humidity),
		Wind:        fmt.Sprintf("%d km/h", int(math.Round(snap.Current.WindSpeed))),
		Icon:        IconFor(code),
		Theme:       ThemeFor(code, hour),
	}
}

// RenderHourly builds up to the first 12 hourly entries. Fewer entries
// render as-is; the strip is never padded.
func RenderHourly(snap weather.ForecastSnapshot) []HourView {
	n := len(snap.Hourly.Time)
	if n > maxHourly {
		n = maxHourly
	}

	views := make([]HourView, 0, n)
	for i := 0; i < n; i++ {
		prob := 0
		if i < len(snap.Hourly.PrecipProbability) && snap.Hourly.PrecipProbability[i] != nil {
			prob = *snap.Hourly.PrecipProbability[i]
		}
		views = append(views, HourView{
			Time:        hourLabel(snap.Hourly.Time[i]),
			Temperature: degrees(floatAt(snap.Hourly.Temperature, i)),
			Rain:        fmt.Sprintf("%d%% rain", prob),
		})
	}
	return views
}

// RenderDaily builds up to the first 7 daily entries.
func RenderDaily(snap weather.ForecastSnapshot) []DayView {
	n := len(snap.Daily.Time)
	if n > maxDaily {
		n = maxDaily
	}

	views := make([]DayView, 0, n)
	for i := 0; i < n; i++ {
		views = append(views, DayView{
			Name:      dayName(snap.Daily.Time[i]),
			Condition: conditions.Describe(codeAt(snap.Daily.Code, i)),
			Low:       degrees(floatAt(snap.Daily.TempMin, i)),
			High:      degrees(floatAt(snap.Daily.TempMax, i)),
		})
	}
	return views
}
