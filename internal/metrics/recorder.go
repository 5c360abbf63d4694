package metrics

import "time"

// Recorder defines observability hooks for generation and HTTP serving.
// The NoopRecorder makes metrics optional at every call site.
type Recorder interface {
	ObserveGeneration(artifact string, d time.Duration, success bool)
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome string) // success|failed
	IncHTTPRequest(path string, status int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are
// not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveGeneration(string, time.Duration, bool) {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)            {}
func (NoopRecorder) IncBuildOutcome(string)                        {}
func (NoopRecorder) IncHTTPRequest(string, int)                    {}
