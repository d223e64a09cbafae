package conditions

// Code is a WMO weather interpretation code as reported by Open-Meteo.
type Code int

// Category is a coarse grouping of codes used for icon and theme selection.
type Category string

const (
	CategoryClear  Category = "clear"
	CategoryCloudy Category = "cloudy"
	CategoryRainy  Category = "rainy"
	CategorySnowy  Category = "snowy"
	CategoryStormy Category = "stormy"
)

// Placeholder is rendered for codes outside the catalog.
const Placeholder = "—"

// descriptions maps WMO codes to display text (https://open-meteo.com/en/docs).
var descriptions = map[Code]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Drizzle: light",
	53: "Drizzle: moderate",
	55: "Drizzle: dense",
	56: "Freezing drizzle: light",
	57: "Freezing drizzle: dense",
	61: "Rain: slight",
	63: "Rain: moderate",
	65: "Rain: heavy",
	66: "Freezing rain: light",
	67: "Freezing rain: heavy",
	71: "Snow fall: slight",
	73: "Snow fall: moderate",
	75: "Snow fall: heavy",
	77: "Snow grains",
	80: "Rain showers: slight",
	81: "Rain showers: moderate",
	82: "Rain showers: violent",
	85: "Snow showers: slight",
	86: "Snow showers: heavy",
	95: "Thunderstorm",
	96: "Thunderstorm w/ slight hail",
	99: "Thunderstorm w/ heavy hail",
}

var categories = map[Code]Category{
	0:  CategoryClear,
	1:  CategoryClear,
	2:  CategoryCloudy,
	3:  CategoryCloudy,
	45: CategoryCloudy,
	48: CategoryCloudy,
	51: CategoryRainy,
	53: CategoryRainy,
	55: CategoryRainy,
	56: CategoryRainy,
	57: CategoryRainy,
	61: CategoryRainy,
	63: CategoryRainy,
	65: CategoryRainy,
	66: CategoryRainy,
	67: CategoryRainy,
	71: CategorySnowy,
	73: CategorySnowy,
	75: CategorySnowy,
	77: CategorySnowy,
	80: CategoryRainy,
	81: CategoryRainy,
	82: CategoryRainy,
	85: CategorySnowy,
	86: CategorySnowy,
	95: CategoryStormy,
	96: CategoryStormy,
	99: CategoryStormy,
}

// Describe returns the display text for a code, or the placeholder for
// codes outside the catalog.
func Describe(code Code) string {
	if text, ok := descriptions[code]; ok {
		return text
	}
	return Placeholder
}

// Classify maps a code to its category. Unlisted codes are treated as cloudy
// so every consumer has a usable default.
func Classify(code Code) Category {
	if cat, ok := categories[code]; ok {
		return cat
	}
	return CategoryCloudy
}

// Known reports whether a code is part of the catalog.
func Known(code Code) bool {
	_, ok := descriptions[code]
	return ok
}
