package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/solid-pod/internal/config"
	"github.com/MKhiriev/solid-pod/internal/handler"
	"github.com/MKhiriev/solid-pod/internal/logger"
)

// readinessSetter is implemented by the HTTP handler; readiness is dropped
// before the listeners stop so the admin /readyz reflects the shutdown.
type readinessSetter interface {
	SetReady(bool)
}

type server struct {
	httpServer  *httpServer
	adminServer *httpServer

	readiness       readinessSetter
	shutdownTimeout time.Duration
	shutdownOnce    sync.Once

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	servers := &server{
		httpServer:      newHTTPServer("http", cfg.HTTPAddress, handlers.HTTP.Init(), cfg, logger),
		readiness:       handlers.HTTP,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}

	if cfg.AdminAddress != "" {
		servers.adminServer = newHTTPServer("admin", cfg.AdminAddress, handlers.HTTP.InitAdmin(), cfg, logger)
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
		return
	}
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Run(ctx context.Context) error {
	if err := s.listen(); err != nil {
		return err
	}
	return s.serve(ctx)
}

func (s *server) listen() error {
	if err := s.httpServer.listen(); err != nil {
		return err
	}

	if s.adminServer != nil {
		if err := s.adminServer.listen(); err != nil {
			s.httpServer.listener.Close()
			return err
		}
	}

	return nil
}

// serve runs every bound listener until ctx is done or one of them fails.
func (s *server) serve(ctx context.Context) error {
	running := []*httpServer{s.httpServer}
	if s.adminServer != nil {
		running = append(running, s.adminServer)
	}

	errCh := make(chan error, len(running))
	var wg sync.WaitGroup
	for _, srv := range running {
		wg.Add(1)
		go func(srv *httpServer) {
			defer wg.Done()
			if err := srv.serve(); err != nil {
				errCh <- err
			}
		}(srv)
	}

	stopped := make(chan struct{})
	go func() {
		wg.Wait()
		close(stopped)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-errCh:
		s.logger.Err(runErr).Msg("listener failed")
	case <-stopped:
		// every listener was shut down from elsewhere
	}

	s.Shutdown()
	wg.Wait()

	if runErr == nil {
		select {
		case runErr = <-errCh:
		default:
		}
	}

	return runErr
}

func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		s.readiness.SetReady(false)

		ctx := context.Background()
		if s.shutdownTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
			defer cancel()
		}

		// the admin listener stops last
		s.httpServer.shutdown(ctx)
		if s.adminServer != nil {
			s.adminServer.shutdown(ctx)
		}
	})
}
