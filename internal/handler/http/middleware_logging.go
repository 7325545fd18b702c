package http

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/MKhiriev/cbs-gateway/internal/logger"
)

// withLogging writes one access log line per request and records the
// inbound request metrics. trace_id, span_id and request_id come from the
// request-scoped logger.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		path := r.URL.Path
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
			start:          start,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)
		status := lw.statusOrOK()

		h.metrics.ObserveHTTP(method, routePattern(r), status, duration)

		span := trace.SpanFromContext(r.Context())
		span.SetAttributes(attribute.Int("http.response.status_code", status))
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}

		log.Info().
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Str("cbs_status", headerOrDash(lw.Header(), HeaderCBSStatus, "")).
			Str("cbs_time", headerOrDash(lw.Header(), HeaderCBSResponseTime, "ms")).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}

func headerOrDash(h http.Header, name, suffix string) string {
	if v := h.Get(name); v != "" {
		return v + suffix
	}
	return "-"
}
