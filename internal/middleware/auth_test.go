package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/enumulasashank/rideon-bike-rental/internal/middleware"
	"github.com/enumulasashank/rideon-bike-rental/internal/model"
	"github.com/enumulasashank/rideon-bike-rental/internal/repository"
	"github.com/enumulasashank/rideon-bike-rental/pkg/config"
	"github.com/enumulasashank/rideon-bike-rental/pkg/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type loaderMock struct {
	byIDFn func(ctx context.Context, id uint) (*model.Customer, error)
}

func (m *loaderMock) CustomerByID(ctx context.Context, id uint) (*model.Customer, error) {
	return m.byIDFn(ctx, id)
}

func testSessions() *session.Manager {
	return session.NewManager(&config.SessionConfig{
		SigningKey:      "test-key",
		ExpirationHours: 1,
		CookieName:      "rideon_session",
	})
}

func run(t *testing.T, sessions *session.Manager, loader middleware.CustomerLoader, req *http.Request) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerRan := false
	h := middleware.SessionAuth(sessions, loader)(func(c echo.Context) error {
		handlerRan = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, handlerRan
}

func TestSessionAuth_NoSessionRedirects(t *testing.T) {
	loader := &loaderMock{byIDFn: func(ctx context.Context, id uint) (*model.Customer, error) {
		t.Fatal("customer must not be loaded without a session")
		return nil, nil
	}}

	req := httptest.NewRequest(http.MethodGet, "/bikes", nil)
	rec, ran := run(t, testSessions(), loader, req)

	require.False(t, ran, "handler body must not execute unauthenticated")
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestSessionAuth_NoSessionAPIGets401(t *testing.T) {
	loader := &loaderMock{}

	req := httptest.NewRequest(http.MethodGet, "/api/rentals_by_location", nil)
	rec, ran := run(t, testSessions(), loader, req)

	require.False(t, ran)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuth_ValidCookie(t *testing.T) {
	sessions := testSessions()
	token, err := sessions.Issue("ada@example.com", 7)
	require.NoError(t, err)

	loader := &loaderMock{byIDFn: func(ctx context.Context, id uint) (*model.Customer, error) {
		require.Equal(t, uint(7), id)
		return &model.Customer{CustomerID: 7, Email: "ada@example.com"}, nil
	}}

	req := httptest.NewRequest(http.MethodGet, "/bikes", nil)
	req.AddCookie(&http.Cookie{Name: "rideon_session", Value: token})
	rec, ran := run(t, sessions, loader, req)

	require.True(t, ran)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionAuth_ValidBearerToken(t *testing.T) {
	sessions := testSessions()
	token, err := sessions.Issue("ada@example.com", 7)
	require.NoError(t, err)

	loader := &loaderMock{byIDFn: func(ctx context.Context, id uint) (*model.Customer, error) {
		return &model.Customer{CustomerID: 7, Email: "ada@example.com"}, nil
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/rentals_by_location", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec, ran := run(t, sessions, loader, req)

	require.True(t, ran)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionAuth_TamperedToken(t *testing.T) {
	other := session.NewManager(&config.SessionConfig{
		SigningKey:      "different-key",
		ExpirationHours: 1,
		CookieName:      "rideon_session",
	})
	token, err := other.Issue("ada@example.com", 7)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/bikes", nil)
	req.AddCookie(&http.Cookie{Name: "rideon_session", Value: token})
	rec, ran := run(t, testSessions(), &loaderMock{}, req)

	require.False(t, ran)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
}

func TestSessionAuth_DeletedCustomer(t *testing.T) {
	sessions := testSessions()
	token, err := sessions.Issue("gone@example.com", 99)
	require.NoError(t, err)

	loader := &loaderMock{byIDFn: func(ctx context.Context, id uint) (*model.Customer, error) {
		return nil, repository.ErrNotFound
	}}

	req := httptest.NewRequest(http.MethodGet, "/bikes", nil)
	req.AddCookie(&http.Cookie{Name: "rideon_session", Value: token})
	rec, ran := run(t, sessions, loader, req)

	require.False(t, ran)
	require.Equal(t, http.StatusFound, rec.Code)
}
