// Package middleware provides the Echo middleware chain for the
// stampdesk API server.
package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stampdesk/stampdesk/internal/metrics"
)

// probePaths are the operational endpoints excluded from request
// metrics and request logs. Prometheus scrapes and health probes hit
// them constantly and would drown out the listing traffic.
var probePaths = map[string]struct{}{
	"/metrics": {},
	"/healthz": {},
	"/readyz":  {},
}

// healthGauge returns the up/down gauge for a probe path, nil for
// paths that have none.
func healthGauge(path string) prometheus.Gauge {
	switch path {
	case "/healthz":
		return metrics.HealthzUp
	case "/readyz":
		return metrics.ReadyzUp
	}
	return nil
}

// Metrics returns Echo middleware recording per-route duration and
// status counts under the stampdesk namespace. Probe paths skip the
// histogram and counter; the health endpoints instead flip an up/down
// gauge from their response status.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			if _, skip := probePaths[path]; skip {
				err := next(c)
				if gauge := healthGauge(path); gauge != nil {
					if status := c.Response().Status; status >= 200 && status < 300 {
						gauge.Set(1)
					} else {
						gauge.Set(0)
					}
				}
				return err
			}

			start := time.Now()

			err := next(c)

			status := strconv.Itoa(c.Response().Status)
			metrics.HTTPRequestDuration.
				WithLabelValues(c.Request().Method, path, status).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(c.Request().Method, path, status).
				Inc()

			return err
		}
	}
}
