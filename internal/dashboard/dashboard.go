// Package dashboard owns the one transient display the UI shows: which
// pipeline run is current, its rendered view models, and its error text.
package dashboard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/skyglass/skyglass/internal/geo"
	"github.com/skyglass/skyglass/internal/view"
	"github.com/skyglass/skyglass/internal/weather"
)

// State is the orchestrator's lifecycle phase. Any user action re-enters
// loading from any prior state.
type State string

const (
	StateIdle      State = "idle"
	StateLoading   State = "loading"
	StateDisplayed State = "displayed"
	StateErrored   State = "errored"
)

// Display is everything the UI needs to paint the three regions. On an
// inline error only the current region is replaced; hourly and daily keep
// their previous content.
type Display struct {
	State     State             `json:"state"`
	Current   *view.CurrentView `json:"current,omitempty"`
	Hourly    []view.HourView   `json:"hourly,omitempty"`
	Daily     []view.DayView    `json:"daily,omitempty"`
	Error     string            `json:"error,omitempty"`
	UpdatedAt time.Time         `json:"updatedAt,omitempty"`
}

// Geocoder resolves place names to coordinates.
type Geocoder interface {
	ResolveByName(ctx context.Context, query string) (geo.Location, error)
}

// Fetcher retrieves a forecast snapshot for coordinates.
type Fetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (weather.ForecastSnapshot, error)
}

// Service runs the resolve → fetch → render pipeline and owns the display.
type Service struct {
	geocoder Geocoder
	fetcher  Fetcher
	locator  geo.DeviceLocator
	log      zerolog.Logger

	seq atomic.Uint64

	mu       sync.Mutex
	disp     Display
	location *geo.Location
}

// NewService creates the orchestrator. locator may be nil when the host has
// no positioning capability.
func NewService(geocoder Geocoder, fetcher Fetcher, locator geo.DeviceLocator, log zerolog.Logger) *Service {
	if locator == nil {
		locator = geo.NoLocator{}
	}
	return &Service{
		geocoder: geocoder,
		fetcher:  fetcher,
		locator:  locator,
		log:      log,
		disp:     Display{State: StateIdle},
	}
}

// Display returns a copy of the current display state.
func (s *Service) Display() Display {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disp
}

// begin claims a new pipeline run and shows the loading placeholder in the
// current region. Hourly and daily keep their content until the run lands.
func (s *Service) begin() uint64 {
	n := s.seq.Add(1)
	s.mu.Lock()
	s.disp.State = StateLoading
	s.disp.Current = nil
	s.disp.Error = ""
	s.mu.Unlock()
	return n
}

// latest reports whether run n is still the newest pipeline run. A stale
// run must not clobber a fresher display.
func (s *Service) latest(n uint64) bool {
	return n == s.seq.Load()
}

func (s *Service) commit(n uint64, loc geo.Location, snap weather.ForecastSnapshot) Display {
	current := view.RenderCurrent(snap, loc.Label)
	hourly := view.RenderHourly(snap)
	daily := view.RenderDaily(snap)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.latest(n) {
		s.log.Debug().Uint64("run", n).Msg("discarding superseded pipeline run")
		return s.disp
	}
	s.location = &loc
	s.disp = Display{
		State:     StateDisplayed,
		Current:   &current,
		Hourly:    hourly,
		Daily:     daily,
		UpdatedAt: time.Now(),
	}
	return s.disp
}

func (s *Service) fail(n uint64, err error) Display {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.latest(n) {
		return s.disp
	}
	s.disp.State = StateErrored
	s.disp.Current = nil
	s.disp.Error = "Error: " + err.Error()
	return s.disp
}

// Search resolves a place name and displays its forecast. Empty or
// whitespace-only input is a no-op. All failures on this path, including
// unknown places, land as inline error text.
func (s *Service) Search(ctx context.Context, query string) Display {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.Display()
	}

	n := s.begin()

	loc, err := s.geocoder.ResolveByName(ctx, query)
	if err != nil {
		s.log.Warn().Err(err).Str("query", query).Msg("geocoding failed")
		return s.fail(n, err)
	}

	return s.run(ctx, n, loc)
}

// Locate positions via the device capability and displays the forecast for
// the result under the fixed "Your location" label. Positioning failures
// are returned to the caller for the alert surface and leave the display
// untouched; failures after a successful fix land inline like Search.
func (s *Service) Locate(ctx context.Context) (Display, error) {
	coords, err := s.locator.Locate(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("device positioning failed")
		return s.Display(), err
	}
	return s.LocateAt(ctx, coords.Latitude, coords.Longitude), nil
}

// LocateAt displays the forecast for device-supplied coordinates.
func (s *Service) LocateAt(ctx context.Context, lat, lon float64) Display {
	n := s.begin()
	return s.run(ctx, n, geo.Location{Latitude: lat, Longitude: lon, Label: geo.DeviceLabel})
}

// Refresh re-fetches the forecast for the currently displayed location.
// It is a no-op until something has been displayed. A user action started
// after the refresh wins by the sequence guard.
func (s *Service) Refresh(ctx context.Context) Display {
	s.mu.Lock()
	loc := s.location
	s.mu.Unlock()
	if loc == nil {
		return s.Display()
	}

	n := s.seq.Add(1)

	snap, err := s.fetcher.Fetch(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		s.log.Warn().Err(err).Str("place", loc.Label).Msg("scheduled refresh failed")
		// A failed background refresh keeps the last good display.
		return s.Display()
	}
	return s.commit(n, *loc, snap)
}

// run fetches and renders for a resolved location under run number n.
func (s *Service) run(ctx context.Context, n uint64, loc geo.Location) Display {
	snap, err := s.fetcher.Fetch(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		s.log.Warn().Err(err).Str("place", loc.Label).Msg("forecast fetch failed")
		return s.fail(n, err)
	}
	return s.commit(n, loc, snap)
}

// IsPositionError reports whether err belongs to the device-positioning
// failure modes that get the blocking alert surface instead of inline text.
func IsPositionError(err error) bool {
	return errors.Is(err, geo.ErrNoCapability) ||
		errors.Is(err, geo.ErrPermissionDenied) ||
		errors.Is(err, geo.ErrPositionUnavailable)
}
