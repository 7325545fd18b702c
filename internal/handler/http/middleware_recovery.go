package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/cbs-gateway/internal/app"
	"github.com/MKhiriev/cbs-gateway/internal/logger"
	"github.com/MKhiriev/cbs-gateway/internal/utils"
	"github.com/MKhiriev/cbs-gateway/models"
)

// withRecovery turns a handler panic into the 500 envelope. The panic value
// and stack only go to the log.
func (h *Handler) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Err(fmt.Errorf("%w: %v", errPanicRecovered, rec)).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")

			utils.WriteJSON(w, models.ErrorResponse{
				Error:   app.MsgInternalServerError,
				Message: app.MsgUnexpectedError,
			}, http.StatusInternalServerError)
		}()

		next.ServeHTTP(w, r)
	})
}
