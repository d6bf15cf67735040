package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Use(Middleware())
	e.Use(middleware.Recover())
	e.GET("/metrics-test/ok", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics-test/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})
	e.GET("/metrics-test/boom", func(c echo.Context) error {
		panic(errors.New("boom"))
	})
	e.GET("/metrics", Handler())
	return e
}

func serve(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestMiddlewareCountsRequests(t *testing.T) {
	e := newTestEcho()
	tests := []struct {
		path   string
		status int
	}{
		{path: "/metrics-test/ok", status: http.StatusOK},
		{path: "/metrics-test/fail", status: http.StatusNotFound},
		{path: "/metrics-test/boom", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			counter := RequestsTotal.WithLabelValues(http.MethodGet, tt.path, strconv.Itoa(tt.status))
			before := testutil.ToFloat64(counter)

			rec := serve(e, tt.path)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestHandlerExposesMetrics(t *testing.T) {
	e := newTestEcho()
	serve(e, "/metrics-test/ok")

	rec := serve(e, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "tweetbox_requests_total"))
}
