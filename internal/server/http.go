package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/MKhiriev/cbs-gateway/internal/config"
	"github.com/MKhiriev/cbs-gateway/internal/logger"
)

type httpServer struct {
	server    *http.Server
	immediate bool
	logger    *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		},
		immediate: cfg.ImmediateShutdown,
		logger:    logger,
	}
}

// listen binds the configured address so that bind errors surface before
// the server is reported as started.
func (h *httpServer) listen() (net.Listener, error) {
	return net.Listen("tcp", h.server.Addr)
}

// serve blocks until the server is shut down. A regular shutdown is not
// reported as an error.
func (h *httpServer) serve(ln net.Listener) error {
	if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// shutdown drains in-flight requests until ctx expires, or drops every
// connection at once when immediate shutdown is configured.
func (h *httpServer) shutdown(ctx context.Context) error {
	if h.immediate {
		h.logger.Info().Msg("closing HTTP server immediately")
		return h.server.Close()
	}

	h.logger.Info().Msg("HTTP server Shutdown")
	if err := h.server.Shutdown(ctx); err != nil {
		// grace period expired; drop the remaining connections
		_ = h.server.Close()
		return err
	}
	return nil
}
