package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/enumulasashank/rideon-bike-rental/internal/handler"
	"github.com/enumulasashank/rideon-bike-rental/internal/model"
	authsvc "github.com/enumulasashank/rideon-bike-rental/internal/service/auth"
	"github.com/enumulasashank/rideon-bike-rental/internal/validation"
	"github.com/enumulasashank/rideon-bike-rental/pkg/config"
	"github.com/enumulasashank/rideon-bike-rental/pkg/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type authMock struct {
	registerFn func(ctx context.Context, in authsvc.RegisterInput) (*model.Customer, string, error)
	loginFn    func(ctx context.Context, email, password string) (*model.Customer, string, error)
}

func (m *authMock) Register(ctx context.Context, in authsvc.RegisterInput) (*model.Customer, string, error) {
	return m.registerFn(ctx, in)
}
func (m *authMock) Login(ctx context.Context, email, password string) (*model.Customer, string, error) {
	return m.loginFn(ctx, email, password)
}
func (m *authMock) CustomerByID(ctx context.Context, id uint) (*model.Customer, error) {
	return nil, nil
}
func (m *authMock) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return nil, nil
}

func postForm(t *testing.T, e *echo.Echo, path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "rideon_session" {
			return cookie
		}
	}
	return nil
}

func newAuthHandler(svc authsvc.Service) (*handler.AuthHandler, *echo.Echo) {
	sessions := session.NewManager(&config.SessionConfig{
		SigningKey:      "test-key",
		ExpirationHours: 1,
		CookieName:      "rideon_session",
	})
	e := echo.New()
	e.Validator = validation.New()
	return handler.NewAuthHandler(svc, sessions), e
}

func TestRegister_SetsSessionAndRedirects(t *testing.T) {
	h, e := newAuthHandler(&authMock{
		registerFn: func(ctx context.Context, in authsvc.RegisterInput) (*model.Customer, string, error) {
			require.Equal(t, "ada@example.com", in.Email)
			return &model.Customer{CustomerID: 7, Email: in.Email}, "token-123", nil
		},
	})

	c, rec := postForm(t, e, "/register", url.Values{
		"first_name": {"Ada"},
		"email":      {"ada@example.com"},
		"password":   {"s3cret"},
	})
	require.NoError(t, h.Register(c))

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/bikes", rec.Header().Get(echo.HeaderLocation))

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie, "registration must establish a session")
	require.Equal(t, "token-123", cookie.Value)
}

func TestRegister_DuplicateEmailRedirectsBack(t *testing.T) {
	h, e := newAuthHandler(&authMock{
		registerFn: func(ctx context.Context, in authsvc.RegisterInput) (*model.Customer, string, error) {
			return nil, "", authsvc.ErrEmailTaken
		},
	})

	c, rec := postForm(t, e, "/register", url.Values{
		"email":    {"ada@example.com"},
		"password": {"s3cret"},
	})
	require.NoError(t, h.Register(c))

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/register", rec.Header().Get(echo.HeaderLocation))
	require.Nil(t, sessionCookie(rec), "no session on failed registration")
}

func TestRegister_InvalidFormNeverHitsService(t *testing.T) {
	h, e := newAuthHandler(&authMock{
		registerFn: func(ctx context.Context, in authsvc.RegisterInput) (*model.Customer, string, error) {
			t.Fatal("service must not be called for an invalid form")
			return nil, "", nil
		},
	})

	c, rec := postForm(t, e, "/register", url.Values{
		"email":    {"not-an-email"},
		"password": {"s3cret"},
	})
	require.NoError(t, h.Register(c))
	require.Equal(t, "/register", rec.Header().Get(echo.HeaderLocation))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h, e := newAuthHandler(&authMock{
		loginFn: func(ctx context.Context, email, password string) (*model.Customer, string, error) {
			return nil, "", authsvc.ErrInvalidCreds
		},
	})

	c, rec := postForm(t, e, "/login", url.Values{
		"email":    {"ada@example.com"},
		"password": {"wrong"},
	})
	require.NoError(t, h.Login(c))

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	require.Nil(t, sessionCookie(rec), "no session on failed login")
}

func TestLogin_Success(t *testing.T) {
	h, e := newAuthHandler(&authMock{
		loginFn: func(ctx context.Context, email, password string) (*model.Customer, string, error) {
			return &model.Customer{CustomerID: 7, Email: email}, "token-123", nil
		},
	})

	c, rec := postForm(t, e, "/login", url.Values{
		"email":    {"ada@example.com"},
		"password": {"s3cret"},
	})
	require.NoError(t, h.Login(c))

	require.Equal(t, "/bikes", rec.Header().Get(echo.HeaderLocation))
	require.NotNil(t, sessionCookie(rec))
}

func TestLogout_ClearsSession(t *testing.T) {
	h, e := newAuthHandler(&authMock{})

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h.Logout(c))

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	require.Empty(t, cookie.Value)
	require.Negative(t, cookie.MaxAge)
}
