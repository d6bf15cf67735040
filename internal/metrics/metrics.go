package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "tweetbox_requests_total",
	Help: "Total number of HTTP requests by route and status",
}, []string{"method", "route", "status"})

var RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "tweetbox_request_duration_seconds",
	Help:    "Histogram of HTTP request durations in seconds",
	Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
}, []string{"method", "route"})

var ErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "tweetbox_errors_total",
	Help: "Total number of error responses by kind",
}, []string{"error_kind"})

var MediaUploadBytes = promauto.NewCounter(prometheus.CounterOpts{
	Name: "tweetbox_media_upload_bytes_total",
	Help: "Total bytes of media accepted on upload",
})

// Middleware records count and latency of every request, labelled by the
// matched route pattern
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let the error handler settle the status before it is recorded
				c.Error(err)
			}
			route := c.Path()
			method := c.Request().Method
			status := strconv.Itoa(c.Response().Status)
			RequestsTotal.WithLabelValues(method, route, status).Inc()
			RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

// Handler exposes the default registry
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
