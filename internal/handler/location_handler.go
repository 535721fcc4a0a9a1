package handler

import (
	"errors"
	"net/http"

	locationsvc "github.com/enumulasashank/rideon-bike-rental/internal/service/location"
	"github.com/enumulasashank/rideon-bike-rental/pkg/logger"
	"github.com/enumulasashank/rideon-bike-rental/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// LocationHandler serves the rental location pages
type LocationHandler struct {
	locations locationsvc.Service
}

// NewLocationHandler creates the location handler
func NewLocationHandler(locations locationsvc.Service) *LocationHandler {
	return &LocationHandler{locations: locations}
}

// List shows all locations
func (h *LocationHandler) List(c echo.Context) error {
	prometheus.RecordResourceOperation("location", "list")

	items, err := h.locations.List(c.Request().Context())
	if err != nil {
		logger.FromContext(c).Error("Failed to list locations", zap.Error(err))
		return err
	}
	return c.Render(http.StatusOK, "locations.html", echo.Map{
		"Locations": items,
		"Flash":     popFlash(c),
	})
}

// CreatePage renders the location creation form
func (h *LocationHandler) CreatePage(c echo.Context) error {
	return c.Render(http.StatusOK, "location_edit.html", echo.Map{"Flash": popFlash(c)})
}

// Create adds a location
func (h *LocationHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("location", "create")

	loc, err := h.locations.Create(c.Request().Context(), c.FormValue("location_name"), c.FormValue("address"))
	if err != nil {
		if errors.Is(err, locationsvc.ErrBadInput) {
			setFlash(c, "danger", "Location name is required")
			return c.Redirect(http.StatusFound, "/locations/create")
		}
		log.Error("Failed to create location", zap.Error(err))
		return err
	}

	log.Info("Location created", zap.Uint("location_id", loc.LocationID), zap.String("name", loc.LocationName))
	setFlash(c, "success", "Location created")
	return c.Redirect(http.StatusFound, "/locations")
}
