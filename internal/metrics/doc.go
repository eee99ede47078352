// Package metrics provides the request instruments for itemsvc.
//
// # Design Philosophy
//
// Components receive a Recorder through dependency injection. The default is
// NoopRecorder, which implements every method as a no-op so callers never need
// nil checks. PrometheusRecorder registers its instruments on a caller-supplied
// *prometheus.Registry, so tests construct a fresh registry per test and the
// process wires exactly one registry at startup.
//
// # Instruments
//
//   - api_requests_total{method,endpoint,status}: counter, one increment per request
//   - api_request_duration_seconds{endpoint}: histogram of request latency
//   - api_errors_total: counter of responses with status >= 500
//
// All instruments are pre-registered and in-memory; recording performs no I/O and
// cannot fail.
//
// # Exposition
//
// HTTPHandler serves the registry in the Prometheus text exposition format.
package metrics
