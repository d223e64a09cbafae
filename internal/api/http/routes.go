package httpapi

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/skyglass/skyglass/internal/dashboard"
	"github.com/skyglass/skyglass/internal/geo"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
//
// Search and locate both answer with the resulting display state; an inline
// pipeline failure is part of that state, not an HTTP error. Only device
// positioning failures map to HTTP errors, mirroring the alert surface the
// UI gives them.
func RegisterRoutes(app *fiber.App, service *dashboard.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/dashboard", func(c *fiber.Ctx) error {
		return c.JSON(service.Display())
	})

	v1.Get("/dashboard/search", func(c *fiber.Ctx) error {
		var q searchQuery
		q.Query = c.Query("q")
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(service.Search(c.Context(), q.Query))
	})

	v1.Get("/dashboard/locate", func(c *fiber.Ctx) error {
		var q locateQuery
		if err := q.bind(c); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		// Coordinates supplied by the caller's own positioning device.
		if q.Latitude != nil && q.Longitude != nil {
			return c.JSON(service.LocateAt(c.Context(), *q.Latitude, *q.Longitude))
		}

		disp, err := service.Locate(c.Context())
		if err != nil {
			if dashboard.IsPositionError(err) {
				code := fiber.StatusServiceUnavailable
				if errors.Is(err, geo.ErrPermissionDenied) {
					code = fiber.StatusForbidden
				}
				return fiber.NewError(code, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(disp)
	})
}

// searchQuery holds the place-name search input.
type searchQuery struct {
	Query string `validate:"required"`
}

// locateQuery holds optional caller-supplied coordinates. Both must be
// present or both absent.
type locateQuery struct {
	Latitude  *float64 `validate:"omitempty,latitude"`
	Longitude *float64 `validate:"omitempty,longitude"`
}

func (l *locateQuery) bind(c *fiber.Ctx) error {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if (latStr == "") != (lonStr == "") {
		return errors.New("lat and lon must be provided together")
	}
	if latStr == "" {
		return nil
	}

	var lat, lon float64
	if err := parseFloat(latStr, &lat); err != nil {
		return err
	}
	if err := parseFloat(lonStr, &lon); err != nil {
		return err
	}
	l.Latitude = &lat
	l.Longitude = &lon

	return validate.Struct(l)
}

func parseFloat(s string, out *float64) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.New("invalid coordinate: " + s)
	}
	*out = f
	return nil
}
