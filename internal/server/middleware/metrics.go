package middleware

import (
	"net/http"
	"strconv"
	"time"

	"git.home.luguber.info/inful/itemsvc/internal/metrics"
)

// Metrics records one latency observation and one request count per request, plus
// an error count when the final status is 5xx. A panicking handler is recorded as a
// 500 and the panic is re-raised unchanged for Recovery to handle. Paths in excluded
// are not recorded.
func Metrics(recorder metrics.Recorder, excluded []string) func(http.Handler) http.Handler {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	skip := make(map[string]struct{}, len(excluded))
	for _, p := range excluded {
		skip[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if _, ok := skip[path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			wrapped := wrap(w)
			status := http.StatusInternalServerError
			defer func() {
				rec := recover()
				if rec == nil {
					status = wrapped.statusCode
				}
				recorder.ObserveRequestDuration(path, time.Since(start))
				recorder.IncRequest(r.Method, path, strconv.Itoa(status))
				if status >= http.StatusInternalServerError {
					recorder.IncError()
				}
				if rec != nil {
					panic(rec)
				}
			}()
			next.ServeHTTP(wrapped, r)
		})
	}
}
