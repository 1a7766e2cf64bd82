package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// counterValue extracts the value from a Prometheus counter
func counterValue(counter prometheus.Counter) float64 {
	var m io_prometheus_client.Metric
	if err := counter.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func TestRecordCounters(t *testing.T) {
	before := counterValue(UpgradePlansTotal.WithLabelValues("fallback"))
	RecordUpgradePlan("fallback")
	if got := counterValue(UpgradePlansTotal.WithLabelValues("fallback")); got != before+1 {
		t.Errorf("Expected %v fallback plans, got %v", before+1, got)
	}

	before = counterValue(ClassificationsTotal.WithLabelValues("good"))
	RecordClassification("good")
	if got := counterValue(ClassificationsTotal.WithLabelValues("good")); got != before+1 {
		t.Errorf("Expected %v good classifications, got %v", before+1, got)
	}

	before = counterValue(TextGenerationTotal.WithLabelValues("plan", OutcomeDisabled))
	RecordTextGeneration("plan", OutcomeDisabled, 0)
	if got := counterValue(TextGenerationTotal.WithLabelValues("plan", OutcomeDisabled)); got != before+1 {
		t.Errorf("Expected %v disabled calls, got %v", before+1, got)
	}
	RecordTextGeneration("plan", OutcomeSuccess, 120*time.Millisecond)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware())
	router.GET("/games", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	before := counterValue(HTTPRequestsTotal.WithLabelValues("GET", "/games", "200"))
	unmatched := counterValue(HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/games", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	if got := counterValue(HTTPRequestsTotal.WithLabelValues("GET", "/games", "200")); got != before+1 {
		t.Errorf("Expected %v requests to /games, got %v", before+1, got)
	}
	if got := counterValue(HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")); got != unmatched+1 {
		t.Errorf("Expected %v unmatched requests, got %v", unmatched+1, got)
	}
}
