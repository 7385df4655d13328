package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"achaperto/config"
	"achaperto/internal/delivery"
	apimiddleware "achaperto/internal/delivery/api/middleware"
	"achaperto/internal/delivery/api/response"
	"achaperto/internal/delivery/api/router"
	"achaperto/internal/delivery/api/validator"
	"achaperto/internal/delivery/middleware"
	"achaperto/internal/domain/lifecycle"
	"achaperto/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
	"golang.org/x/time/rate"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := NewEcho(params.Cfg, params.Logger, params.RouterParams)

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho builds the configured echo instance with middlewares and routes.
func NewEcho(cfg *config.Config, logger *slog.Logger, routerParams router.RouterParams) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	r := router.NewRouter(routerParams)

	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before loggers to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(logger)
	echoServer.Use(requestIDMiddleware.Process)

	// 3. Access log, then the debug-only detail log
	quietPaths := []string{router.HealthPath}
	if path := r.MetricsPath(); path != "" {
		quietPaths = append(quietPaths, path)
	}
	echoServer.Use(middleware.NewAccessLog(logger, cfg, quietPaths...))
	loggerMiddleware := middleware.NewLoggerMiddleware(logger, cfg)
	echoServer.Use(loggerMiddleware.Handle)

	// 4. CORS middleware
	echoServer.Use(echomiddleware.CORS())

	// 5. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	errorMiddleware := apimiddleware.NewErrorMiddleware(logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	echoServer.Validator = validator.New()

	var apiMiddlewares []echo.MiddlewareFunc
	if limiter := newRateLimiter(cfg.HTTP.RateLimit); limiter != nil {
		apiMiddlewares = append(apiMiddlewares, limiter)
	}
	r.RegisterRoutes(echoServer, apiMiddlewares...)

	return echoServer
}

// newRateLimiter returns a per-client-IP token bucket, or nil when rate limiting is off.
func newRateLimiter(cfg *config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg == nil || !cfg.Enabled || cfg.RequestsPerSecond <= 0 {
		return nil
	}

	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RequestsPerSecond),
		Burst:     cfg.Burst,
		ExpiresIn: cfg.ExpiresIn,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		ErrorHandler: func(c echo.Context, err error) error {
			return response.Error(c, http.StatusForbidden, "CLIENT_UNIDENTIFIED", "Não foi possível identificar o cliente", nil)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return response.TooManyRequests(c, "RATE_LIMITED", "Muitas buscas em sequência, aguarde um instante")
		},
	})
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
