package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	httpapi "github.com/skyglass/skyglass/internal/api/http"
	"github.com/skyglass/skyglass/internal/config"
	"github.com/skyglass/skyglass/internal/dashboard"
	"github.com/skyglass/skyglass/internal/geo"
	"github.com/skyglass/skyglass/internal/scheduler"
	"github.com/skyglass/skyglass/internal/weather"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// Shared HTTP client for outbound calls to the geocoding and forecast
	// services.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	geocoder := geo.NewGeocoder(httpClient, cfg.GeocodingBaseURL)
	forecasts := weather.NewClient(httpClient, cfg.ForecastBaseURL)

	// The host's positioning capability, when configured.
	var locator geo.DeviceLocator
	if cfg.DeviceLatitude != nil && cfg.DeviceLongitude != nil {
		locator = geo.NewStaticLocator(*cfg.DeviceLatitude, *cfg.DeviceLongitude)
	}

	// Core service orchestrating the resolve → fetch → render pipeline.
	service := dashboard.NewService(geocoder, forecasts, locator, log)

	// Try the device position once at startup, quietly.
	if locator != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if _, err := service.Locate(ctx); err != nil {
				log.Warn().Err(err).Msg("startup geolocation failed")
			}
		}()
	}

	// Scheduler that keeps the displayed forecast fresh.
	sched := scheduler.New(service, cfg.RefreshInterval, log)
	if err := sched.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start scheduler")
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "skyglass",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "skyglass",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error().Err(err).Msg("fiber server stopped")
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
}
