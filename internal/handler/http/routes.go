package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/cbs-gateway/internal/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withRequestID,
		h.withTracing,
		h.withLogging,
		h.withRecovery,
		withGZip,
		cors.Middleware(h.corsPolicy),
	)

	// monitoring and documentation
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/api-docs", h.docsPage)
		r.Get("/api-docs/openapi.json", h.docsSpec)
		if h.metrics != nil {
			r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
		}
	})

	// CBS simulator proxy routes
	router.Group(func(r chi.Router) {
		for _, route := range proxyRoutes {
			r.Method(route.method, route.pattern, h.proxy(route))
		}
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}
