package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server is the liveness/metrics sidecar. Bot updates do not flow
// through it; the Telegram webhook (when enabled) is served by the bot
// poller itself.
type Server struct {
	echo   *echo.Echo
	logger *zap.Logger
}

// New creates the health server
func New(logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "CancelItNowBot is running 🎯")
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "I am alive")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return &Server{echo: e, logger: logger}
}

// Start blocks serving HTTP until Shutdown is called
func (s *Server) Start(addr string) error {
	s.logger.Info("Health server listening", zap.String("addr", addr))

	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
