package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"officesite/internal/models"
	"officesite/internal/redirect"
)

// LocationReader is the read side of the store used by the API.
type LocationReader interface {
	ListLocations(ctx context.Context) ([]models.Location, error)
	LocationDetail(ctx context.Context, slug string) (*models.Location, error)
}

type Server struct {
	echo   *echo.Echo
	logger *zap.Logger
}

// New wires middleware and routes. Dormant URLs are redirected before routing.
func New(locations LocationReader, redirects *redirect.Table, logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Pre(redirect.Middleware(redirects, logger))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Debug("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))

	h := &handlers{locations: locations, logger: logger, now: time.Now}
	e.GET("/health", h.health)
	api := e.Group("/api")
	api.GET("/locations", h.listLocations)
	api.GET("/locations/:slug", h.locationDetail)

	return &Server{echo: e, logger: logger}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", zap.String("addr", addr))
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(shutdownCtx)
}
