package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/journalup/journal-up/internal/apperr"
)

var (
	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "http_in_flight_requests",
		Help: "In-flight HTTP requests.",
	})

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	prometheus.MustRegister(httpInFlight, httpRequestsTotal, httpRequestDuration)
}

// Instrument records request count, latency and in-flight gauge per
// route. The label uses the registered route pattern, not the raw URL,
// so path parameters do not explode the cardinality.
func Instrument() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			httpInFlight.Inc()
			start := time.Now()

			err := next(c)

			duration := time.Since(start).Seconds()
			// an error has not been written yet; derive the status the
			// error handler will respond with
			status := c.Response().Status
			if err != nil {
				if e := apperr.From(err); e != nil {
					status = e.Status
				} else if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			labels := []string{c.Request().Method, path, strconv.Itoa(status)}

			httpRequestDuration.WithLabelValues(labels...).Observe(duration)
			httpRequestsTotal.WithLabelValues(labels...).Inc()
			httpInFlight.Dec()
			return err
		}
	}
}
