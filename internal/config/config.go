package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port string

	// HTTPTimeout bounds each outbound call to the geocoding and forecast
	// services.
	HTTPTimeout time.Duration

	// RefreshInterval controls how often the displayed forecast is
	// re-fetched; 0 disables the refresh job.
	RefreshInterval time.Duration

	// Base URLs are overridable so tests can point at stub servers.
	GeocodingBaseURL string
	ForecastBaseURL  string

	// Optional fixed device position. When both are set the service has a
	// geolocation capability and auto-locates at startup.
	DeviceLatitude  *float64
	DeviceLongitude *float64
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.GeocodingBaseURL = os.Getenv("GEOCODING_BASE_URL")
	cfg.ForecastBaseURL = os.Getenv("FORECAST_BASE_URL")

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	refreshStr := getenvDefault("REFRESH_INTERVAL", "15m")
	refresh, err := time.ParseDuration(refreshStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = refresh

	lat, err := getenvFloat("DEVICE_LATITUDE")
	if err != nil {
		return nil, err
	}
	lon, err := getenvFloat("DEVICE_LONGITUDE")
	if err != nil {
		return nil, err
	}
	if (lat == nil) != (lon == nil) {
		return nil, fmt.Errorf("DEVICE_LATITUDE and DEVICE_LONGITUDE must be set together")
	}
	cfg.DeviceLatitude = lat
	cfg.DeviceLongitude = lon

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string) (*float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return &f, nil
}
