package geo

import (
	"context"
	"errors"
)

// DeviceLabel is the fixed display label for device-derived positions; no
// reverse geocoding is performed.
const DeviceLabel = "Your location"

// Device positioning failure modes.
var (
	ErrNoCapability        = errors.New("Geolocation not available")
	ErrPermissionDenied    = errors.New("Geolocation permission denied")
	ErrPositionUnavailable = errors.New("Position unavailable")
)

// Coordinates is a raw latitude/longitude pair from a positioning source.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// DeviceLocator is a one-shot, high-accuracy positioning capability. Locate
// resolves exactly once per call; it is not a subscription and never watches
// position continuously.
type DeviceLocator interface {
	Locate(ctx context.Context) (Coordinates, error)
}

// StaticLocator serves fixed coordinates, typically supplied through
// configuration for hosts without a real positioning device.
type StaticLocator struct {
	coords Coordinates
}

// NewStaticLocator creates a locator pinned to the given coordinates.
func NewStaticLocator(lat, lon float64) *StaticLocator {
	return &StaticLocator{coords: Coordinates{Latitude: lat, Longitude: lon}}
}

func (l *StaticLocator) Locate(ctx context.Context) (Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return Coordinates{}, err
	}
	return l.coords, nil
}

// NoLocator reports the absence of any positioning capability.
type NoLocator struct{}

func (NoLocator) Locate(ctx context.Context) (Coordinates, error) {
	return Coordinates{}, ErrNoCapability
}
