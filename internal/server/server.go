package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/heartbreaksandvodka/project-plusminus/internal/config"
	"github.com/heartbreaksandvodka/project-plusminus/internal/handler"
	"github.com/heartbreaksandvodka/project-plusminus/internal/logger"
	"github.com/heartbreaksandvodka/project-plusminus/internal/metrics"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds the graceful shutdown of all listeners.
const shutdownTimeout = 10 * time.Second

type server struct {
	servers []*httpServer
	runners []Runner
	logger  *logger.Logger
}

// NewServer creates the API listener and, when cfg.MetricsAddress is set, a
// separate listener serving m. runners are started alongside the listeners
// and stopped with them.
func NewServer(handlers *handler.Handlers, m *metrics.Metrics, cfg config.Server, logger *logger.Logger, runners ...Runner) (Server, error) {
	logger.Info().Msg("creating new server...")
	s := &server{runners: runners, logger: logger}

	if handlers != nil && handlers.HTTP != nil && cfg.HTTPAddress != "" {
		s.servers = append(s.servers, newHTTPServer("http", cfg.HTTPAddress, handlers.HTTP.Init(), cfg.RequestTimeout, logger))
	}
	if len(s.servers) == 0 {
		return nil, errNoServersAreCreated
	}

	if cfg.MetricsAddress != "" {
		s.servers = append(s.servers, newHTTPServer("metrics", cfg.MetricsAddress, m.Handler(), cfg.RequestTimeout, logger))
	}

	return s, nil
}

// RunServer runs until SIGINT, SIGTERM or SIGQUIT arrives.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	for _, srv := range s.servers {
		errs = append(errs, srv.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

// run serves until ctx is cancelled or any listener or runner fails, then
// shuts everything down. The first failure is returned.
func (s *server) run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range s.servers {
		g.Go(srv.RunServer)
	}
	for _, r := range s.runners {
		g.Go(func() error {
			if err := r.Run(gctx); err != nil {
				return fmt.Errorf("%w: %w", errRunnerFailed, err)
			}
			return nil
		})
	}

	// listen for stop signals
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		return s.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	if err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
