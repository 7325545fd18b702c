package cors

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/MKhiriev/cbs-gateway/internal/app"
	"github.com/MKhiriev/cbs-gateway/internal/logger"
	"github.com/MKhiriev/cbs-gateway/internal/utils"
	"github.com/MKhiriev/cbs-gateway/models"
)

// CORS response settings.
var (
	AllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	AllowedHeaders = []string{"Content-Type", "Authorization", "X-Requested-With"}
	ExposedHeaders = []string{"X-Response-Time", "X-CBS-Status", "X-CBS-Response-Time", "X-Trace-ID", "X-Request-ID"}
)

const maxAgeSeconds = 86400

// Middleware rejects requests from disallowed origins with 403 before any
// handler runs and adds CORS headers to the allowed ones.
func Middleware(p *Policy) func(http.Handler) http.Handler {
	headers := cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return p.Decide(origin).Allowed
		},
		AllowedMethods:   AllowedMethods,
		AllowedHeaders:   AllowedHeaders,
		ExposedHeaders:   ExposedHeaders,
		AllowCredentials: true,
		MaxAge:           maxAgeSeconds,
	})

	return func(next http.Handler) http.Handler {
		withHeaders := headers(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			decision := p.Decide(origin)

			if !decision.Allowed {
				logger.FromRequest(r).Warn().
					Str("origin", origin).
					Msg("request rejected by CORS policy")

				utils.WriteJSON(w, models.ErrorResponse{
					Error:   app.MsgCORSViolation,
					Message: app.MsgOriginNotAllowed,
				}, http.StatusForbidden)
				return
			}

			if decision.Warning != "" {
				logger.FromRequest(r).Warn().Str("origin", origin).Msg(decision.Warning)
			}

			withHeaders.ServeHTTP(w, r)
		})
	}
}
