package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/eventtickets/eventtickets/internal/version"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	config      *Config
	httpServer  *http.Server
	httpsServer *http.Server
}

func New(config *Config) (*Server, error) {
	if config == nil {
		return nil, errors.New("server config is nil")
	}

	handler := SetupRoutes(config)

	s := &Server{
		config:     config,
		httpServer: newHTTPServer(config.HTTP.Addr, handler),
	}
	if config.TLSEnabled() {
		s.httpsServer = newHTTPServer(config.HTTP.TLSAddr, handler)
	}
	return s, nil
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:    addr,
		Handler: handler,
		// Timeouts to prevent slow client attacks
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1 MB
	}
}

// Start serves until ctx is done, then shuts down gracefully.
// Listener errors are returned right away.
func (s *Server) Start(ctx context.Context) error {
	slog.Info("server start", "version", version.Short(), "env", s.config.Env, "origins", s.config.AllowedOrigins)
	defer slog.Info("server stop")

	httpLn, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen http: %w", err)
	}

	var httpsLn net.Listener
	if s.httpsServer != nil {
		httpsLn, err = net.Listen("tcp", s.httpsServer.Addr)
		if err != nil {
			httpLn.Close()
			return fmt.Errorf("listen https: %w", err)
		}
	}

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		slog.Info("http server start", "addr", httpLn.Addr().String())
		if err := s.httpServer.Serve(httpLn); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})

	if httpsLn != nil {
		eg.Go(func() error {
			slog.Info("https server start", "addr", httpsLn.Addr().String(), "cert", s.config.HTTP.CertFile, "key", s.config.HTTP.KeyFile)
			if err := s.httpsServer.ServeTLS(httpsLn, s.config.HTTP.CertFile, s.config.HTTP.KeyFile); err != nil && !errors.Is(err, http.ErrServerClosed) {
				httpsLn.Close()
				return fmt.Errorf("serve https: %w", err)
			}
			return nil
		})
	}

	eg.Go(func() error {
		<-egCtx.Done()
		slog.Info("server shutdown signal")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Stop(shutdownCtx)
	})

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("server failure", "error", err)
		return err
	}
	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	var errs []error
	if err := s.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http: %w", err))
	}
	if s.httpsServer != nil {
		if err := s.httpsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown https: %w", err))
		}
	}
	return errors.Join(errs...)
}
