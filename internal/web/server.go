package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/eventtickets/eventtickets/internal/logging"
	"github.com/eventtickets/eventtickets/internal/server/handlers/api"
	"github.com/eventtickets/eventtickets/internal/server/middlewares"
)

const (
	DefaultAddr     = ":3000"
	shutdownTimeout = 5 * time.Second
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	Addr string         `mapstructure:"addr" validate:"required,hostname_port"`
	Log  logging.Config `mapstructure:"log"`
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

type Server struct {
	config     *Config
	httpServer *http.Server
}

func New(config *Config) (*Server, error) {
	if config == nil {
		return nil, errors.New("web config is nil")
	}

	handler, err := SetupRoutes()
	if err != nil {
		return nil, fmt.Errorf("setup routes: %w", err)
	}

	return &Server{
		config: config,
		httpServer: &http.Server{
			Addr:              config.Addr,
			Handler:           handler,
			ReadTimeout:       30 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       120 * time.Second,
			ReadHeaderTimeout: 10 * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}, nil
}

// SetupRoutes serves the landing page at "/" and a 404 page for everything else.
func SetupRoutes() (http.Handler, error) {
	landing, err := NewLanding()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.RedirectTrailingSlash = false
	r.Use(middlewares.Logger())
	r.Use(gin.CustomRecovery(api.Recovery))
	r.Use(middlewares.GZIP())
	r.Use(middlewares.SecurityHeaders())

	r.GET("/", landing.Index)
	r.NoRoute(landing.NotFound)

	return r.Handler(), nil
}

func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen http: %w", err)
	}
	slog.Info("landing page start", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	case <-ctx.Done():
		slog.Info("landing page shutdown signal")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Stop(shutdownCtx)
	}
}

func (s *Server) Stop(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http: %w", err)
	}
	return nil
}

func init() {
	gin.SetMode(gin.ReleaseMode)
}
