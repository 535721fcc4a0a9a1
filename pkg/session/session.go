package session

import (
	"net/http"
	"time"

	"github.com/enumulasashank/rideon-bike-rental/pkg/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// Claims represents the signed session claims for an authenticated customer
type Claims struct {
	Email      string `json:"email"`
	CustomerID uint   `json:"customer_id"`
	jwt.RegisteredClaims
}

// Manager issues and verifies signed session tokens and moves them in and
// out of the session cookie. Sessions are stateless: logout clears the
// cookie and tokens expire on their own.
type Manager struct {
	signingKey []byte
	expiration time.Duration
	cookieName string
	secure     bool
}

// NewManager creates a session manager from configuration
func NewManager(cfg *config.SessionConfig) *Manager {
	return &Manager{
		signingKey: []byte(cfg.SigningKey),
		expiration: time.Duration(cfg.ExpirationHours) * time.Hour,
		cookieName: cfg.CookieName,
		secure:     cfg.CookieSecure,
	}
}

// Issue creates a signed session token bound to the customer identity
func (m *Manager) Issue(email string, customerID uint) (string, error) {
	claims := Claims{
		Email:      email,
		CustomerID: customerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.signingKey)
}

// Verify validates and parses a session token
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.signingKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}

// TokenFromRequest extracts the session token from the session cookie
func (m *Manager) TokenFromRequest(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// SetCookie writes the session cookie on the response
func (m *Manager) SetCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(m.expiration),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie invalidates the session cookie unconditionally
func (m *Manager) ClearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
