package handler

import (
	"net/http"

	reportsvc "github.com/enumulasashank/rideon-bike-rental/internal/service/report"
	"github.com/enumulasashank/rideon-bike-rental/pkg/logger"
	"github.com/enumulasashank/rideon-bike-rental/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ReportHandler serves the dashboard page and the JSON reporting endpoint.
// Both are backed by the same service call, so they always agree.
type ReportHandler struct {
	reports reportsvc.Service
}

// NewReportHandler creates the report handler
func NewReportHandler(reports reportsvc.Service) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Dashboard renders the rentals-per-location chart
func (h *ReportHandler) Dashboard(c echo.Context) error {
	prometheus.RecordResourceOperation("report", "dashboard")

	rows, err := h.rows(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "dashboard.html", echo.Map{
		"Rows":  rows,
		"Flash": popFlash(c),
	})
}

// RentalsByLocation returns the report as JSON
func (h *ReportHandler) RentalsByLocation(c echo.Context) error {
	prometheus.RecordResourceOperation("report", "api")

	rows, err := h.rows(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) rows(c echo.Context) ([]reportsvc.LocationCount, error) {
	rows, err := h.reports.RentalsByLocation(c.Request().Context())
	if err != nil {
		logger.FromContext(c).Error("Failed to run rentals-by-location report", zap.Error(err))
		return nil, err
	}
	if rows == nil {
		rows = []reportsvc.LocationCount{}
	}
	return rows, nil
}
