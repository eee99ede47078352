// Package middleware provides HTTP middleware for request logging, panic recovery and
// request metrics for the itemsvc server.
package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	ferrors "git.home.luguber.info/inful/itemsvc/internal/foundation/errors"
	"git.home.luguber.info/inful/itemsvc/internal/logfields"
	"git.home.luguber.info/inful/itemsvc/internal/metrics"
	"git.home.luguber.info/inful/itemsvc/internal/observability"
)

// RequestIDHeader carries the per-request correlation ID.
const RequestIDHeader = "X-Request-ID"

// Chain returns a middleware wrapper that applies, outermost first, tracing, request
// logging, panic recovery and request metrics around a handler.
func Chain(logger *slog.Logger, adapter *ferrors.HTTPErrorAdapter, recorder metrics.Recorder, excluded []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return Tracing(RequestLogging(logger, Recovery(logger, adapter, Metrics(recorder, excluded)(next))))
	}
}

// RequestLogging logs method, path, status, duration, user agent, and remote addr,
// and tags each response with a request ID.
func RequestLogging(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := r.Context()
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, reqID)
		r = r.WithContext(observability.WithRequestID(ctx, reqID))

		wrapped := wrap(w)
		next.ServeHTTP(wrapped, r)
		// ctx carries the server span but not the request ID, which is logged explicitly.
		logger.InfoContext(ctx, "HTTP request",
			logfields.RequestID(reqID),
			logfields.Method(r.Method),
			logfields.Path(r.URL.Path),
			logfields.Status(wrapped.statusCode),
			logfields.DurationMS(float64(time.Since(start).Microseconds())/1000),
			logfields.ResponseSize(wrapped.size),
			logfields.UserAgent(r.UserAgent()),
			logfields.RemoteAddr(r.RemoteAddr))
	})
}

// Recovery recovers from handler panics and writes the uniform internal error body via
// the HTTPErrorAdapter. http.ErrAbortHandler is re-raised so net/http can abort the
// connection.
func Recovery(logger *slog.Logger, adapter *ferrors.HTTPErrorAdapter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wrapped := wrap(w)
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}
			logger.Error("HTTP handler panic",
				logfields.Panic(rec),
				logfields.Method(r.Method),
				logfields.Path(r.URL.Path),
				logfields.RemoteAddr(r.RemoteAddr))
			if wrapped.wroteHeader {
				return
			}
			adapter.WriteErrorResponse(wrapped, r, ferrors.FromPanic(rec))
		}()
		next.ServeHTTP(wrapped, r)
	})
}
