package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"fitbot/config"
	"fitbot/internal/delivery"
	httpmiddleware "fitbot/internal/delivery/http/middleware"
	"fitbot/internal/delivery/http/router"
	"fitbot/internal/delivery/http/validator"
	"fitbot/internal/delivery/middleware"
	"fitbot/internal/domain/lifecycle"
	"fitbot/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// HTTPParams holds dependencies for the HTTP server, injected by Fx.
type HTTPParams struct {
	fx.In

	Lc           fx.Lifecycle
	Config       *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer builds the echo server with its middleware chain and routes.
func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := NewEcho(params.Config, params.Logger)

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(echoServer)

	srv := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho creates an echo instance with the shared middleware, validator and error handler.
func NewEcho(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Recover first so panics in later middleware are caught
	echoServer.Use(echomiddleware.Recover())

	// Request ID before any logging
	echoServer.Use(middleware.NewRequestIDMiddleware(logger).Process)
	echoServer.Use(slogecho.New(logger))
	echoServer.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	echoServer.Use(echomiddleware.CORS())
	if cfg.HTTP.MaxRequestBodySize != "" {
		echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	}

	echoServer.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError
	echoServer.Validator = validator.New()

	return echoServer
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
