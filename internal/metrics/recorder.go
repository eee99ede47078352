package metrics

import "time"

// Recorder defines observability hooks for inbound HTTP requests. Implementations
// must be safe for concurrent use.
type Recorder interface {
	ObserveRequestDuration(endpoint string, d time.Duration)
	IncRequest(method, endpoint, status string)
	IncError()
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveRequestDuration(string, time.Duration) {}
func (NoopRecorder) IncRequest(string, string, string)            {}
func (NoopRecorder) IncError()                                    {}
