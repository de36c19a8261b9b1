package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
)

// readHeaderTimeout bounds slow clients before the handler runs.
const readHeaderTimeout = 5 * time.Second

type httpServer struct {
	name   string
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(name, addr string, handler http.Handler, requestTimeout time.Duration, logger *logger.Logger) *httpServer {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	if requestTimeout > 0 {
		srv.ReadTimeout = requestTimeout
		srv.WriteTimeout = requestTimeout
		srv.IdleTimeout = 2 * requestTimeout
	}

	return &httpServer{
		name:   name,
		server: srv,
		logger: logger.WithComponent(name),
	}
}

// RunServer blocks until the listener fails or Shutdown is called. A
// shutdown is not an error.
func (h *httpServer) RunServer() error {
	h.logger.Info().Str("address", h.server.Addr).Msg("listening")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server ListenAndServe: %w: %w", h.name, errListenerFailed, err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Msg("shutting down")

	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s server Shutdown: %w: %w", h.name, errShutdownFailed, err)
	}
	return nil
}
