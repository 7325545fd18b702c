package http

import (
	"net/http"

	"github.com/MKhiriev/cbs-gateway/internal/app"
	"github.com/MKhiriev/cbs-gateway/internal/logger"
	"github.com/MKhiriev/cbs-gateway/internal/utils"
	"github.com/MKhiriev/cbs-gateway/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := h.services.AppInfoService.Health(r.Context())

	if _, err := utils.WriteJSON(w, status, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health response")
	}
}

// notFound serves unknown routes and unsupported methods alike.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.NotFoundResponse{
		Error:   app.MsgNotFound,
		Path:    r.URL.Path,
		Message: app.MsgEndpointDoesNotExist,
	}, http.StatusNotFound)
}
