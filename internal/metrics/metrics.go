// Package metrics provides Prometheus collectors for the advisor service.
//
// Metrics categories:
//   - HTTP: request counts and latency by route
//   - Core: compatibility verdicts, upgrade selections and plans by source
//   - Text generation: calls by operation and outcome
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts HTTP requests by method, route and status code
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamepulse_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks HTTP request latency by route
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gamepulse_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// ClassificationsTotal counts compatibility verdicts
	ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamepulse_classifications_total",
			Help: "Total number of compatibility classifications by status",
		},
		[]string{"status"},
	)

	// UpgradeRecommendationsTotal counts budget-tier upgrade selections
	UpgradeRecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamepulse_upgrade_recommendations_total",
			Help: "Total number of upgrade selections by budget tier",
		},
		[]string{"budget"},
	)

	// UpgradePlansTotal counts smart upgrade plans by source (external, fallback)
	UpgradePlansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamepulse_upgrade_plans_total",
			Help: "Total number of smart upgrade plans by source",
		},
		[]string{"source"},
	)

	// TextGenerationTotal counts text generation calls by operation and outcome
	TextGenerationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamepulse_text_generation_total",
			Help: "Total number of text generation calls",
		},
		[]string{"operation", "outcome"},
	)

	// TextGenerationDuration tracks text generation latency
	TextGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gamepulse_text_generation_duration_seconds",
			Help:    "Duration of text generation calls in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30},
		},
		[]string{"operation"},
	)
)

// Text generation outcomes
const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeInvalid  = "invalid"
	OutcomeDisabled = "disabled"
)

// RecordClassification records a compatibility verdict
func RecordClassification(status string) {
	ClassificationsTotal.WithLabelValues(status).Inc()
}

// RecordUpgradeRecommendation records an upgrade selection
func RecordUpgradeRecommendation(budget string) {
	UpgradeRecommendationsTotal.WithLabelValues(budget).Inc()
}

// RecordUpgradePlan records where a smart upgrade plan came from
func RecordUpgradePlan(source string) {
	UpgradePlansTotal.WithLabelValues(source).Inc()
}

// RecordTextGeneration records a text generation call. Disabled calls
// have no duration.
func RecordTextGeneration(operation, outcome string, duration time.Duration) {
	TextGenerationTotal.WithLabelValues(operation, outcome).Inc()
	if outcome != OutcomeDisabled {
		TextGenerationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	}
}

// Middleware records request count and latency per matched route
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		HTTPRequestsTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		HTTPRequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
