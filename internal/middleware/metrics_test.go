package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/journalup/journal-up/internal/apperr"
)

func instrumentedRequest(path string, next echo.HandlerFunc) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = Instrument()(next)(c)
}

func counterValue(path, status string) float64 {
	return testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, path, status))
}

func TestInstrumentCountsSuccess(t *testing.T) {
	instrumentedRequest("/instrument-ok", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.Equal(t, 1.0, counterValue("/instrument-ok", "200"))
}

func TestInstrumentLabelsTypedErrorStatus(t *testing.T) {
	instrumentedRequest("/instrument-denied", func(c echo.Context) error {
		return apperr.Authentication("nope")
	})
	assert.Equal(t, 1.0, counterValue("/instrument-denied", "401"))
	assert.Equal(t, 0.0, counterValue("/instrument-denied", "0"))

	instrumentedRequest("/instrument-missing", func(c echo.Context) error {
		return apperr.NotFound("journal")
	})
	assert.Equal(t, 1.0, counterValue("/instrument-missing", "404"))
}

func TestInstrumentLabelsEchoErrorStatus(t *testing.T) {
	instrumentedRequest("/instrument-echo", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusMethodNotAllowed)
	})
	assert.Equal(t, 1.0, counterValue("/instrument-echo", "405"))
}

func TestInstrumentLabelsUnknownErrorAs500(t *testing.T) {
	instrumentedRequest("/instrument-boom", func(c echo.Context) error {
		return assert.AnError
	})
	assert.Equal(t, 1.0, counterValue("/instrument-boom", "500"))
}
