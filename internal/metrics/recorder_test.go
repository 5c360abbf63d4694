package metrics

import (
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder_CountsGenerations(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObserveGeneration("sitemap", 5*time.Millisecond, true)
	pr.ObserveGeneration("sitemap", 5*time.Millisecond, false)
	pr.ObserveGeneration("rss", time.Millisecond, true)

	require.Equal(t, 1.0, testutil.ToFloat64(pr.genResults.WithLabelValues("sitemap", "success")))
	require.Equal(t, 1.0, testutil.ToFloat64(pr.genResults.WithLabelValues("sitemap", "failed")))
	require.Equal(t, 1.0, testutil.ToFloat64(pr.genResults.WithLabelValues("rss", "success")))
}

func TestPrometheusRecorder_HTTPRequests(t *testing.T) {
	pr := NewPrometheusRecorder(prom.NewRegistry())
	pr.IncHTTPRequest("/sitemap.xml", 200)
	pr.IncHTTPRequest("/sitemap.xml", 200)
	pr.IncHTTPRequest("/rss.xml", 500)

	require.Equal(t, 2.0, testutil.ToFloat64(pr.httpRequests.WithLabelValues("/sitemap.xml", "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(pr.httpRequests.WithLabelValues("/rss.xml", "500")))
}

func TestNoopRecorder_IsSafe(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.ObserveGeneration("sitemap", time.Second, true)
	r.ObserveBuildDuration(time.Second)
	r.IncBuildOutcome("success")
	r.IncHTTPRequest("/", 200)
}
