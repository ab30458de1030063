// Package metrics defines Prometheus metrics for stampdesk.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "stampdesk"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
)

// Health probe gauges, set by the metrics middleware.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "1 if the last liveness probe succeeded, 0 otherwise.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "1 if the last readiness probe succeeded, 0 otherwise.",
	})
)

// Listing pipeline metrics.
var (
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_total",
		Help:      "Total listing submissions by listing type and outcome.",
	}, []string{"listing_type", "outcome"})

	SubmissionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "submission_duration_seconds",
		Help:      "End-to-end duration of listing submissions in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	ValidationRejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_rejections_total",
		Help:      "Submissions rejected before any network call, by field.",
	}, []string{"field"})
)

// Trading API metrics.
var (
	TradingCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trading_calls_total",
		Help:      "Total eBay Trading API calls by call name.",
	}, []string{"call"})

	TradingCallDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "trading_call_duration_seconds",
		Help:      "Duration of eBay Trading API calls in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"call"})

	TradingDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trading_daily_limit_hits_total",
		Help:      "Number of Trading API calls blocked by the daily quota.",
	})

	TradingDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "trading_daily_usage",
		Help:      "Trading API calls used in the current 24-hour window.",
	})
)

// Image upload metrics.
var (
	ImageUploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_uploads_total",
		Help:      "Image upload attempts by host and outcome.",
	}, []string{"host", "outcome"})

	ImagePlaceholdersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "image_placeholders_total",
		Help:      "Listings submitted with the placeholder image after all hosts failed.",
	})
)

// Tracking store metrics.
var (
	AttemptWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "attempt_writes_total",
		Help:      "Tracking store writes by outcome.",
	}, []string{"outcome"})
)
