package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/piresc/wheelshare/internal/pkg/logger"
	"github.com/piresc/wheelshare/internal/pkg/models"
)

const defaultShutdownTimeout = 30 * time.Second

// GracefulServer runs echo until SIGINT or SIGTERM, then drains requests and
// releases registered components in reverse order
type GracefulServer struct {
	echo     *echo.Echo
	logger   *logger.ZapLogger
	addr     string
	timeout  time.Duration
	shutdown *ShutdownManager
}

// NewGracefulServer creates a server bound to cfg.Host:cfg.Port
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, cfg models.ServerConfig) *GracefulServer {
	timeout := time.Duration(cfg.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	if cfg.ReadTimeout > 0 {
		e.Server.ReadTimeout = time.Duration(cfg.ReadTimeout) * time.Second
	}
	if cfg.WriteTimeout > 0 {
		e.Server.WriteTimeout = time.Duration(cfg.WriteTimeout) * time.Second
	}
	e.HideBanner = true

	return &GracefulServer{
		echo:     e,
		logger:   zapLogger,
		addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		timeout:  timeout,
		shutdown: NewShutdownManager(zapLogger),
	}
}

// OnShutdown registers a cleanup run after the HTTP server stopped
func (s *GracefulServer) OnShutdown(name string, fn func(context.Context) error) {
	s.shutdown.Register(name, fn)
}

// Start serves until a termination signal arrives, then shuts down
func (s *GracefulServer) Start() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	return s.Run(quit)
}

// Run serves until stop yields, then shuts down. A listener failure ends Run early.
func (s *GracefulServer) Run(stop <-chan os.Signal) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case sig := <-stop:
		s.logger.Info("Received shutdown signal", logger.String("signal", sig.String()))
	case err := <-errCh:
		s.logger.Error("HTTP server failed", logger.Err(err))
		s.runCleanup()
		return err
	}

	return s.Shutdown()
}

// Shutdown drains in-flight requests and runs the registered cleanups
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully", logger.Duration("timeout", s.timeout))

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	err := s.echo.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
	}
	s.shutdown.Shutdown(ctx)

	s.logger.Info("Server shutdown completed")
	return err
}

func (s *GracefulServer) runCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	s.shutdown.Shutdown(ctx)
}

type component struct {
	name string
	fn   func(context.Context) error
}

// ShutdownManager releases components such as database pools and broker connections
type ShutdownManager struct {
	logger     *logger.ZapLogger
	components []component
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.components = append(sm.components, component{name: name, fn: fn})
}

// Shutdown runs the cleanups last registered first. A failing cleanup is logged and the
// rest still run.
func (sm *ShutdownManager) Shutdown(ctx context.Context) {
	for i := len(sm.components) - 1; i >= 0; i-- {
		c := sm.components[i]
		if err := c.fn(ctx); err != nil {
			sm.logger.Error("Error during component shutdown",
				logger.String("component", c.name),
				logger.Err(err))
			continue
		}
		sm.logger.Info("Component closed", logger.String("component", c.name))
	}
}
