package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mw "github.com/stampdesk/stampdesk/internal/api/middleware"
	"github.com/stampdesk/stampdesk/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		handler    echo.HandlerFunc
		wantStatus int
	}{
		{
			name:   "records GET listing query",
			method: http.MethodGet,
			path:   "/api/v1/listings",
			handler: func(c echo.Context) error {
				return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "records POST submission",
			method: http.MethodPost,
			path:   "/api/v1/listings",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusCreated)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "records 404 response",
			method: http.MethodGet,
			path:   "/missing",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.Add(tt.method, tt.path, tt.handler)

			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			statusStr := strconv.Itoa(tt.wantStatus)

			counter, err := metrics.HTTPRequestsTotal.GetMetricWithLabelValues(
				tt.method, tt.path, statusStr,
			)
			require.NoError(t, err)

			m := &io_prometheus_client.Metric{}
			require.NoError(t, counter.Write(m))
			assert.Greater(t, m.GetCounter().GetValue(), float64(0))

			observer, err := metrics.HTTPRequestDuration.GetMetricWithLabelValues(
				tt.method, tt.path, statusStr,
			)
			require.NoError(t, err)

			hm := &io_prometheus_client.Metric{}
			require.NoError(t, observer.(prometheus.Metric).Write(hm))
			assert.Positive(t, hm.GetHistogram().GetSampleCount())
		})
	}
}

func TestMetricsMiddleware_HealthGauges(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		status    int
		gauge     prometheus.Gauge
		wantValue float64
	}{
		{
			name:      "healthy probe sets gauge to 1",
			path:      "/healthz",
			status:    http.StatusOK,
			gauge:     metrics.HealthzUp,
			wantValue: 1,
		},
		{
			name:      "failing readiness sets gauge to 0",
			path:      "/readyz",
			status:    http.StatusServiceUnavailable,
			gauge:     metrics.ReadyzUp,
			wantValue: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(mw.Metrics())
			e.GET(tt.path, func(c echo.Context) error {
				return c.NoContent(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			m := &io_prometheus_client.Metric{}
			require.NoError(t, tt.gauge.Write(m))
			assert.Equal(t, tt.wantValue, m.GetGauge().GetValue())
		})
	}
}
