package metrics

import (
	"net/http"
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	registry     *prom.Registry
	genDuration  *prom.HistogramVec
	genResults   *prom.CounterVec
	buildSeconds prom.Histogram
	buildOutcome *prom.CounterVec
	httpRequests *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers the siteforge metrics on
// the given registry (a fresh one when nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{registry: reg}
	pr.genDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: "siteforge",
		Name:      "generation_duration_seconds",
		Help:      "Duration of sitemap/feed generation by artifact",
		Buckets:   prom.DefBuckets,
	}, []string{"artifact"})
	pr.genResults = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "siteforge",
		Name:      "generation_results_total",
		Help:      "Generation results by artifact and outcome",
	}, []string{"artifact", "result"})
	pr.buildSeconds = prom.NewHistogram(prom.HistogramOpts{
		Namespace: "siteforge",
		Name:      "build_duration_seconds",
		Help:      "Total static build duration",
		Buckets:   prom.DefBuckets,
	})
	pr.buildOutcome = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "siteforge",
		Name:      "build_outcomes_total",
		Help:      "Build outcomes by final status",
	}, []string{"outcome"})
	pr.httpRequests = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "siteforge",
		Name:      "http_requests_total",
		Help:      "HTTP requests by path and status code",
	}, []string{"path", "status"})
	reg.MustRegister(pr.genDuration, pr.genResults, pr.buildSeconds, pr.buildOutcome, pr.httpRequests)
	return pr
}

func (pr *PrometheusRecorder) ObserveGeneration(artifact string, d time.Duration, success bool) {
	pr.genDuration.WithLabelValues(artifact).Observe(d.Seconds())
	result := "success"
	if !success {
		result = "failed"
	}
	pr.genResults.WithLabelValues(artifact, result).Inc()
}

func (pr *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	pr.buildSeconds.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncBuildOutcome(outcome string) {
	pr.buildOutcome.WithLabelValues(outcome).Inc()
}

func (pr *PrometheusRecorder) IncHTTPRequest(path string, status int) {
	pr.httpRequests.WithLabelValues(path, strconv.Itoa(status)).Inc()
}

// Handler returns the /metrics HTTP handler for this recorder's registry.
func (pr *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(pr.registry, promhttp.HandlerOpts{})
}
