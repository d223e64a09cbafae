// Package view shapes forecast data into display-ready view models. It is
// pure: the HTTP layer (or any other adapter) decides how the models reach
// the screen.
package view

import "github.com/skyglass/skyglass/internal/conditions"

// ThemeSpec is a background gradient, recomputed on every render.
type ThemeSpec struct {
	BackgroundStart string `json:"backgroundStart"`
	BackgroundEnd   string `json:"backgroundEnd"`
}

// Fixed themes, keyed by condition group.
var (
	themeNight   = ThemeSpec{"#0a0f2c", "#1a237e"}
	themeClear   = ThemeSpec{"#90caf9", "#e3f2fd"}
	themeCloudy  = ThemeSpec{"#81d4fa", "#cfd8dc"}
	themeRain    = ThemeSpec{"#78909c", "#b0bec5"}
	themeSnow    = ThemeSpec{"#cfd8dc", "#90caf9"}
	themeDefault = ThemeSpec{"#90caf9", "#d1c4e9"}
)

var (
	clearCodes  = codeSet(0, 1)
	cloudyCodes = codeSet(2, 3)
	rainCodes   = codeSet(51, 53, 55, 56, 57, 61, 63, 65, 80, 81, 82)
	snowCodes   = codeSet(71, 73, 75, 77, 85, 86)

	iconCloudCodes = codeSet(2, 3, 45, 48)
	stormCodes     = codeSet(95, 96, 99)
)

func codeSet(codes ...conditions.Code) map[conditions.Code]bool {
	set := make(map[conditions.Code]bool, len(codes))
	for _, c := range codes {
		set[c] = true
	}
	return set
}

// IsNightHour reports whether a local hour gets the night theme.
func IsNightHour(hour int) bool {
	return hour < 6 || hour >= 19
}

// ThemeFor selects the background gradient for a condition code and local
// hour. Night wins over every condition; otherwise the first matching
// condition group applies, and unmatched codes (fog, thunder) get the
// default light theme.
func ThemeFor(code conditions.Code, hour int) ThemeSpec {
	switch {
	case IsNightHour(hour):
		return themeNight
	case clearCodes[code]:
		return themeClear
	case cloudyCodes[code]:
		return themeCloudy
	case rainCodes[code]:
		return themeRain
	case snowCodes[code]:
		return themeSnow
	default:
		return themeDefault
	}
}

// IconComposition describes the layered condition icon: a base shape plus
// zero or more repeated precipitation marks.
type IconComposition struct {
	Base  string `json:"base"`
	Mark  string `json:"mark,omitempty"`
	Marks int    `json:"marks,omitempty"`
}

// IconFor selects the icon composition for a condition code. Thunderstorm
// codes share the two-rain-mark composition; this is a deliberate
// simplification carried from the original visual design.
func IconFor(code conditions.Code) IconComposition {
	switch {
	case clearCodes[code]:
		return IconComposition{Base: "sun"}
	case iconCloudCodes[code]:
		return IconComposition{Base: "cloud"}
	case rainCodes[code]:
		return IconComposition{Base: "cloud", Mark: "rain", Marks: 3}
	case snowCodes[code]:
		return IconComposition{Base: "cloud", Mark: "snow", Marks: 3}
	case stormCodes[code]:
		return IconComposition{Base: "cloud", Mark: "rain", Marks: 2}
	default:
		return IconComposition{Base: "cloud"}
	}
}
