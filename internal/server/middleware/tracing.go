package middleware

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Tracing starts a server span per request, continuing any trace carried by the
// incoming headers through the global propagator. Spans come from the global
// tracer provider, which is a no-op until tracing is configured.
func Tracing(next http.Handler) http.Handler {
	return otelhttp.NewHandler(next, "itemsvc",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}))
}
