package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/work-diary/internal/logger"
	"github.com/go-chi/chi/v5"
)

// withLogging writes one access log line per request through the
// request-scoped logger set up by withTraceID.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		uri := r.RequestURI

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		logger.FromRequest(r).Info().
			Str("uri", uri).
			Str("method", r.Method).
			Str("route", routePattern(r)).
			Int("status", rec.Status()).
			Dur("duration", time.Since(start)).
			Int("size", rec.size).
			Send()
	})
}

// routePattern returns the matched chi pattern, or "unmatched" for requests
// that fell through to the not found handler.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
