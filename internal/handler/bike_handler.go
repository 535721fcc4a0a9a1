package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	bikesvc "github.com/enumulasashank/rideon-bike-rental/internal/service/bike"
	locationsvc "github.com/enumulasashank/rideon-bike-rental/internal/service/location"
	"github.com/enumulasashank/rideon-bike-rental/pkg/logger"
	"github.com/enumulasashank/rideon-bike-rental/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// BikeHandler serves the bike inventory pages
type BikeHandler struct {
	bikes     bikesvc.Service
	locations locationsvc.Service
}

// NewBikeHandler creates the bike handler
func NewBikeHandler(bikes bikesvc.Service, locations locationsvc.Service) *BikeHandler {
	return &BikeHandler{bikes: bikes, locations: locations}
}

func bikeInput(c echo.Context) bikesvc.Input {
	return bikesvc.Input{
		Model:      c.FormValue("model"),
		Type:       c.FormValue("type"),
		Status:     c.FormValue("status"),
		RentalRate: c.FormValue("rental_rate"),
		LocationID: c.FormValue("location_id"),
	}
}

// List shows all bikes, unfiltered
func (h *BikeHandler) List(c echo.Context) error {
	prometheus.RecordResourceOperation("bike", "list")

	items, err := h.bikes.List(c.Request().Context())
	if err != nil {
		logger.FromContext(c).Error("Failed to list bikes", zap.Error(err))
		return err
	}
	return c.Render(http.StatusOK, "bikes.html", echo.Map{
		"Bikes": items,
		"Flash": popFlash(c),
	})
}

// CreatePage renders the bike creation form
func (h *BikeHandler) CreatePage(c echo.Context) error {
	locs, err := h.locations.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "bike_edit.html", echo.Map{
		"Bike":      nil,
		"Locations": locs,
		"Flash":     popFlash(c),
	})
}

// Create adds a bike to the inventory
func (h *BikeHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("bike", "create")

	bike, err := h.bikes.Create(c.Request().Context(), bikeInput(c))
	if err != nil {
		if errors.Is(err, bikesvc.ErrBadInput) {
			setFlash(c, "danger", "Rental rate and location must be numeric")
			return c.Redirect(http.StatusFound, "/bikes/create")
		}
		log.Error("Failed to create bike", zap.Error(err))
		return err
	}

	log.Info("Bike created", zap.Uint("bike_id", bike.BikeID), zap.String("model", bike.Model))
	setFlash(c, "success", "Bike created")
	return c.Redirect(http.StatusFound, "/bikes")
}

// EditPage renders the edit form for one bike
func (h *BikeHandler) EditPage(c echo.Context) error {
	id, err := paramID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	bike, err := h.bikes.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, bikesvc.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}

	locs, err := h.locations.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "bike_edit.html", echo.Map{
		"Bike":      bike,
		"Locations": locs,
		"Flash":     popFlash(c),
	})
}

// Edit overwrites the mutable fields of one bike
func (h *BikeHandler) Edit(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("bike", "update")

	id, err := paramID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	bike, err := h.bikes.Update(c.Request().Context(), id, bikeInput(c))
	if err != nil {
		switch {
		case errors.Is(err, bikesvc.ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound)
		case errors.Is(err, bikesvc.ErrBadInput):
			setFlash(c, "danger", "Rental rate and location must be numeric")
			return c.Redirect(http.StatusFound, fmt.Sprintf("/bikes/edit/%d", id))
		default:
			log.Error("Failed to update bike", zap.Uint("bike_id", id), zap.Error(err))
			return err
		}
	}

	log.Info("Bike updated", zap.Uint("bike_id", bike.BikeID))
	setFlash(c, "success", "Bike updated")
	return c.Redirect(http.StatusFound, "/bikes")
}

// Delete permanently removes one bike
func (h *BikeHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("bike", "delete")

	id, err := paramID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	if err := h.bikes.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, bikesvc.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		log.Error("Failed to delete bike", zap.Uint("bike_id", id), zap.Error(err))
		return err
	}

	log.Info("Bike deleted", zap.Uint("bike_id", id))
	setFlash(c, "info", "Bike deleted")
	return c.Redirect(http.StatusFound, "/bikes")
}

func paramID(c echo.Context) (uint, error) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
