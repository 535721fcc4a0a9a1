package handler

import (
	"errors"
	"net/http"

	paymentsvc "github.com/enumulasashank/rideon-bike-rental/internal/service/payment"
	rentalsvc "github.com/enumulasashank/rideon-bike-rental/internal/service/rental"
	"github.com/enumulasashank/rideon-bike-rental/pkg/logger"
	"github.com/enumulasashank/rideon-bike-rental/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PaymentHandler serves the payment record pages
type PaymentHandler struct {
	payments paymentsvc.Service
	rentals  rentalsvc.Service
}

// NewPaymentHandler creates the payment handler
func NewPaymentHandler(payments paymentsvc.Service, rentals rentalsvc.Service) *PaymentHandler {
	return &PaymentHandler{payments: payments, rentals: rentals}
}

// List shows all payment records, unfiltered
func (h *PaymentHandler) List(c echo.Context) error {
	prometheus.RecordResourceOperation("payment", "list")

	items, err := h.payments.List(c.Request().Context())
	if err != nil {
		logger.FromContext(c).Error("Failed to list payments", zap.Error(err))
		return err
	}
	return c.Render(http.StatusOK, "payments.html", echo.Map{
		"Payments": items,
		"Flash":    popFlash(c),
	})
}

// CreatePage renders the payment recording form
func (h *PaymentHandler) CreatePage(c echo.Context) error {
	rentals, err := h.rentals.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "payment_edit.html", echo.Map{
		"Rentals": rentals,
		"Flash":   popFlash(c),
	})
}

// Create records a payment against a rental
func (h *PaymentHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordResourceOperation("payment", "create")

	payment, err := h.payments.Create(c.Request().Context(), paymentsvc.Input{
		RentalID:      c.FormValue("rental_id"),
		Amount:        c.FormValue("amount"),
		PaymentDate:   c.FormValue("payment_date"),
		PaymentMethod: c.FormValue("payment_method"),
	})
	if err != nil {
		if errors.Is(err, paymentsvc.ErrBadInput) {
			setFlash(c, "danger", "Rental and a numeric amount are required")
			return c.Redirect(http.StatusFound, "/payments/create")
		}
		log.Error("Failed to record payment", zap.Error(err))
		return err
	}

	log.Info("Payment recorded",
		zap.Uint("payment_id", payment.PaymentID),
		zap.Uint("rental_id", payment.RentalID),
		zap.Float64("amount", payment.Amount))
	setFlash(c, "success", "Payment recorded")
	return c.Redirect(http.StatusFound, "/payments")
}
