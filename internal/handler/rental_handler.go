package handler

import (
	"errors"
	"net/http"

	authsvc "github.com/enumulasashank/rideon-bike-rental/internal/service/auth"
	bikesvc "github.com/enumulasashank/rideon-bike-rental/internal/service/bike"
	locationsvc "github.com/enumulasashank/rideon-bike-rental/internal/service/location"
	rentalsvc "github.com/enumulasashank/rideon-bike-rental/internal/service/rental"
	"github.com/enumulasashank/rideon-bike-rental/pkg/logger"
	"github.com/enumulasashank/rideon-bike-rental/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RentalHandler serves the rental record pages
type RentalHandler struct {
	rentals   rentalsvc.Service
	bikes     bikesvc.Service
	locations locationsvc.Service
	auth      authsvc.Service
}

// NewRentalHandler creates the rental handler
func NewRentalHandler(rentals rentalsvc.Service, bikes bikesvc.Service, locations locationsvc.Service, auth authsvc.Service) *RentalHandler {
	return &RentalHandler{rentals: rentals, bikes: bikes, locations: locations, auth: auth}
}

// List shows all rental records, unfiltered
func (h *RentalHandler) List(c echo.Context) error {
	prometheus.RecordResourceOperation("rental", "list")

	items, err := h.rentals.List(c.Request().Context())
	if err != nil {
		logger.FromContext(c).Error("Failed to list rentals", zap.Error(err))
		return err
	}
	return c.Render(http.StatusOK, "rentals.html", echo.Map{
		"Rentals": items,
		"Flash":   popFlash(c),
	})
}

// CreatePage renders the rental creation form
func (h *RentalHandler) CreatePage(c echo.Context) error {
	ctx := c.Request().Context()

	bikes, err := h.bikes.List(ctx)
	if err != nil {
		return err
	}
	customers, err := h.auth.ListCustomers(ctx)
	if err != nil {
		return err
	}
	locs, err := h.locations.List(ctx)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "rental_edit.html", echo.Map{
		"Bikes":     bikes,
		"Customers": customers,
		"Locations": locs,
		"Flash":     popFlash(c),
	})
}

// Create records a rental
func (h *RentalHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("rental", "create")

	rental, err := h.rentals.Create(c.Request().Context(), rentalsvc.Input{
		CustomerID:  c.FormValue("customer_id"),
		BikeID:      c.FormValue("bike_id"),
		LocationID:  c.FormValue("location_id"),
		RentalStart: c.FormValue("rental_start"),
		RentalEnd:   c.FormValue("rental_end"),
		TotalCost:   c.FormValue("total_cost"),
	})
	if err != nil {
		if errors.Is(err, rentalsvc.ErrBadInput) {
			setFlash(c, "danger", "Customer, bike and location are required")
			return c.Redirect(http.StatusFound, "/rentals/create")
		}
		log.Error("Failed to create rental", zap.Error(err))
		return err
	}

	log.Info("Rental created",
		zap.Uint("rental_id", rental.RentalID),
		zap.Uint("customer_id", rental.CustomerID),
		zap.Uint("bike_id", rental.BikeID))
	setFlash(c, "success", "Rental created")
	return c.Redirect(http.StatusFound, "/rentals")
}
