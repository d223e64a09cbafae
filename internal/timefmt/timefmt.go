// Package timefmt formats the local-time strings returned by Open-Meteo
// for display.
package timefmt

import (
	"strconv"
	"time"
)

const (
	// Open-Meteo returns wall-clock strings without a zone offset when
	// timezone=auto is requested.
	layoutMinute = "2006-01-02T15:04"
	layoutDate   = "2006-01-02"
)

// ParseLocal parses an Open-Meteo local-time string, accepting both the
// minute-resolution and date-only forms.
func ParseLocal(s string) (time.Time, error) {
	if t, err := time.Parse(layoutMinute, s); err == nil {
		return t, nil
	}
	return time.Parse(layoutDate, s)
}

// HourLabel renders t on a 12-hour clock, e.g. "12am", "3pm", "11pm".
func HourLabel(t time.Time) string {
	h := t.Hour()
	suffix := "am"
	if h >= 12 {
		suffix = "pm"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return strconv.Itoa(h) + suffix
}

// Weekday renders the short weekday name, e.g. "Mon".
func Weekday(t time.Time) string {
	return t.Format("Mon")
}
