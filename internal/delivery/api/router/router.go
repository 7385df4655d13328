// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"achaperto/config"
	"achaperto/internal/delivery/api/router/handler"
	"achaperto/internal/delivery/middleware"
	"achaperto/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthPath is served outside the API group so health checks bypass rate limiting and the country gate.
const HealthPath = "/health"

type RouterParams struct {
	fx.In

	SearchHandler *handler.SearchHandler
	CountryGate   *middleware.CountryGateMiddleware
	Config        *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	searchHandler *handler.SearchHandler
	countryGate   *middleware.CountryGateMiddleware
	config        *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		searchHandler: params.SearchHandler,
		countryGate:   params.CountryGate,
		config:        params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// API-only middlewares (rate limiting) are applied to the v1 group before the country gate.
func (r *router) RegisterRoutes(e *echo.Echo, apiMiddlewares ...echo.MiddlewareFunc) {
	e.GET(HealthPath, handler.HealthCheck)

	if path := r.MetricsPath(); path != "" {
		e.GET(path, echo.WrapHandler(metrics.Handler()))
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(apiMiddlewares...)
	apiV1.Use(r.countryGate.Handle)
	{
		apiV1.POST("/search", r.searchHandler.Search)
		apiV1.GET("/categories", r.searchHandler.Categories)
	}
}

// MetricsPath returns the metrics route, or "" when metrics are disabled.
func (r *router) MetricsPath() string {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return ""
	}

	return r.config.Metrics.Path
}
