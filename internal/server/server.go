package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/everydayventures/website/internal/api/handlers"
	"github.com/everydayventures/website/internal/config"
	"github.com/everydayventures/website/internal/logging"
	"github.com/everydayventures/website/internal/server/routes"
	"github.com/everydayventures/website/internal/service"
	"github.com/everydayventures/website/internal/web"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// ServiceName identifies this process in traces and logs
const ServiceName = "evsite"

const shutdownTimeout = 15 * time.Second

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	logger *logging.Logger
}

// NewServer creates a new server instance wired to the given mailer
func NewServer(cfg *config.Config, mailer service.Mailer, logger *logging.Logger) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Gin's default logger is replaced by our own request logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(otelgin.Middleware(ServiceName))
	routes.SetupGlobalMiddleware(router, logger, cfg.IsProduction())

	h := &routes.Handlers{
		Health:  handlers.NewHealthHandler(),
		Contact: handlers.NewContactHandler(mailer, cfg.Mail(), logger),
	}
	m := &routes.Middleware{
		MaxBodyBytes: cfg.MaxBodyBytes,
	}
	routes.Setup(router, h, m, web.Static())

	return &Server{
		router: router,
		cfg:    cfg,
		logger: logger,
	}
}

// Handler exposes the router for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort("", s.cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
