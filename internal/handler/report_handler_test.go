package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/enumulasashank/rideon-bike-rental/internal/handler"
	reportsvc "github.com/enumulasashank/rideon-bike-rental/internal/service/report"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type reportsMock struct {
	rowsFn func(ctx context.Context) ([]reportsvc.LocationCount, error)
}

func (m *reportsMock) RentalsByLocation(ctx context.Context) ([]reportsvc.LocationCount, error) {
	return m.rowsFn(ctx)
}

// recordingRenderer captures the data handed to the template layer
type recordingRenderer struct {
	name string
	data echo.Map
}

func (r *recordingRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	r.name = name
	r.data = data.(echo.Map)
	return nil
}

func TestRentalsByLocation_JSON(t *testing.T) {
	rows := []reportsvc.LocationCount{
		{Location: "Downtown", Count: 3},
		{Location: "Harbor", Count: 0},
	}
	h := handler.NewReportHandler(&reportsMock{
		rowsFn: func(ctx context.Context) ([]reportsvc.LocationCount, error) { return rows, nil },
	})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/rentals_by_location", nil), rec)

	require.NoError(t, h.RentalsByLocation(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var got []reportsvc.LocationCount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, rows, got, "zero-rental locations must be reported with count 0, not omitted")
}

func TestRentalsByLocation_EmptyIsArray(t *testing.T) {
	h := handler.NewReportHandler(&reportsMock{
		rowsFn: func(ctx context.Context) ([]reportsvc.LocationCount, error) { return nil, nil },
	})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/rentals_by_location", nil), rec)

	require.NoError(t, h.RentalsByLocation(c))
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestDashboardAndJSONAgree(t *testing.T) {
	rows := []reportsvc.LocationCount{
		{Location: "Downtown", Count: 3},
		{Location: "Harbor", Count: 0},
	}
	h := handler.NewReportHandler(&reportsMock{
		rowsFn: func(ctx context.Context) ([]reportsvc.LocationCount, error) { return rows, nil },
	})

	e := echo.New()
	renderer := &recordingRenderer{}
	e.Renderer = renderer

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/dashboard", nil), rec)
	require.NoError(t, h.Dashboard(c))
	require.Equal(t, "dashboard.html", renderer.name)
	rendered := renderer.data["Rows"]

	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/api/rentals_by_location", nil), rec)
	require.NoError(t, h.RentalsByLocation(c))

	var got []reportsvc.LocationCount
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, rendered, got, "page and JSON views must present the same rows and counts")
}
