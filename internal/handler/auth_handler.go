package handler

import (
	"errors"
	"net/http"

	authsvc "github.com/enumulasashank/rideon-bike-rental/internal/service/auth"
	"github.com/enumulasashank/rideon-bike-rental/pkg/logger"
	"github.com/enumulasashank/rideon-bike-rental/pkg/session"
	"github.com/enumulasashank/rideon-bike-rental/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AuthHandler serves registration, login and logout
type AuthHandler struct {
	auth     authsvc.Service
	sessions *session.Manager
}

// NewAuthHandler creates the authentication handler
func NewAuthHandler(auth authsvc.Service, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

type registerForm struct {
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
	Email     string `form:"email" validate:"required,email"`
	Phone     string `form:"phone"`
	Password  string `form:"password" validate:"required"`
}

type loginForm struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// RegisterPage renders the registration form
func (h *AuthHandler) RegisterPage(c echo.Context) error {
	return c.Render(http.StatusOK, "register.html", echo.Map{"Flash": popFlash(c)})
}

// Register creates a Customer and logs the new identity in
func (h *AuthHandler) Register(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RegisterCounter.Inc()

	var form registerForm
	if err := c.Bind(&form); err != nil {
		log.Error("Failed to parse registration form", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		setFlash(c, "danger", "Invalid registration data")
		return c.Redirect(http.StatusFound, "/register")
	}
	if err := c.Validate(&form); err != nil {
		log.Debug("Registration form validation failed", zap.Error(err))
		prometheus.RecordAuthError("incomplete_registration")
		setFlash(c, "danger", "A valid email and a password are required")
		return c.Redirect(http.StatusFound, "/register")
	}

	customer, token, err := h.auth.Register(c.Request().Context(), authsvc.RegisterInput{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Phone:     form.Phone,
		Password:  form.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, authsvc.ErrEmailTaken):
			log.Info("Registration with taken email", zap.String("email", form.Email))
			prometheus.RecordAuthError("duplicate_email")
			setFlash(c, "danger", "Email already registered")
			return c.Redirect(http.StatusFound, "/register")
		case errors.Is(err, authsvc.ErrBadInput):
			prometheus.RecordAuthError("incomplete_registration")
			setFlash(c, "danger", "A valid email and a password are required")
			return c.Redirect(http.StatusFound, "/register")
		default:
			log.Error("Failed to register customer", zap.Error(err))
			return err
		}
	}

	h.sessions.SetCookie(c, token)
	prometheus.IncreaseActiveSessions()

	log.Info("Customer registered", zap.String("email", customer.Email), zap.Uint("customer_id", customer.CustomerID))
	setFlash(c, "success", "Registered and logged in")
	return c.Redirect(http.StatusFound, "/bikes")
}

// LoginPage renders the login form
func (h *AuthHandler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login.html", echo.Map{"Flash": popFlash(c)})
}

// Login authenticates a customer and establishes a session
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginCounter.Inc()

	var form loginForm
	if err := c.Bind(&form); err != nil {
		log.Error("Failed to parse login form", zap.Error(err))
		prometheus.RecordAuthError("invalid_request")
		setFlash(c, "danger", "Invalid credentials")
		return c.Redirect(http.StatusFound, "/login")
	}

	customer, token, err := h.auth.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, authsvc.ErrInvalidCreds) {
			log.Info("Login failed", zap.String("email", form.Email))
			prometheus.RecordAuthError("invalid_credentials")
			setFlash(c, "danger", "Invalid credentials")
			return c.Redirect(http.StatusFound, "/login")
		}
		log.Error("Login error", zap.Error(err))
		return err
	}

	h.sessions.SetCookie(c, token)
	prometheus.IncreaseActiveSessions()

	log.Info("Customer logged in", zap.String("email", customer.Email), zap.Uint("customer_id", customer.CustomerID))
	setFlash(c, "success", "Logged in")
	return c.Redirect(http.StatusFound, "/bikes")
}

// Logout invalidates the session unconditionally
func (h *AuthHandler) Logout(c echo.Context) error {
	h.sessions.ClearCookie(c)
	prometheus.DecreaseActiveSessions()
	setFlash(c, "info", "Logged out")
	return c.Redirect(http.StatusFound, "/login")
}
