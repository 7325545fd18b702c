package http

import (
	_ "embed"
	"net/http"

	"github.com/MKhiriev/cbs-gateway/internal/logger"
	"github.com/MKhiriev/cbs-gateway/internal/utils"
)

//go:embed docs/openapi.json
var openAPISpec []byte

//go:embed docs/index.html
var docsHTML []byte

// docsPage serves the Swagger UI viewer, which loads docsSpec.
func (h *Handler) docsPage(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteRaw(w, "text/html; charset=utf-8", docsHTML, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing docs page")
	}
}

// docsSpec serves the embedded OpenAPI 3 document.
func (h *Handler) docsSpec(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteRaw(w, "application/json; charset=utf-8", openAPISpec, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing OpenAPI document")
	}
}
