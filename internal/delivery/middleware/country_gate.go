package middleware

import (
	"log/slog"
	"net"
	"strings"

	"achaperto/config"
	deliverycontext "achaperto/internal/delivery/context"
	domainerrors "achaperto/internal/domain/errors"
	"achaperto/internal/domain/service"
	"achaperto/internal/errors"
	"achaperto/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CountryGateParams holds dependencies for CountryGateMiddleware, injected by Fx.
type CountryGateParams struct {
	fx.In

	Resolver service.CountryResolver
	Config   *config.Config
	Logger   *slog.Logger
}

// CountryGateMiddleware rejects clients whose IP resolves to a country outside the allow list.
// Addresses the database cannot place are let through.
type CountryGateMiddleware struct {
	resolver service.CountryResolver
	allowed  map[string]struct{}
	logger   *slog.Logger
}

// NewCountryGateMiddleware creates the gate. With the gate disabled or an empty allow list
// every request passes.
func NewCountryGateMiddleware(params CountryGateParams) *CountryGateMiddleware {
	m := &CountryGateMiddleware{
		resolver: params.Resolver,
		logger:   params.Logger,
	}

	gate := params.Config.CountryGate
	if gate == nil || !gate.Enabled || params.Resolver == nil {
		return m
	}

	m.allowed = make(map[string]struct{}, len(gate.AllowedCountries))
	for _, code := range gate.AllowedCountries {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" {
			m.allowed[code] = struct{}{}
		}
	}

	return m
}

// Handle is the echo middleware function.
func (m *CountryGateMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if len(m.allowed) == 0 {
			return next(c)
		}

		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		ip := net.ParseIP(c.RealIP())
		code, err := m.resolver.CountryCode(ip)
		if err != nil {
			logger.Warn("Country lookup failed, letting request through",
				slog.String("remote_ip", c.RealIP()),
				slog.Any("error", err),
			)

			return next(c)
		}
		if code == "" {
			return next(c)
		}

		code = strings.ToUpper(code)
		if _, ok := m.allowed[code]; !ok {
			metrics.CountryGateRejectionsTotal.WithLabelValues(code).Inc()
			logger.Info("Request rejected by country gate", slog.String("country", code))

			return errors.WithStack(domainerrors.ErrCountryNotAllowed)
		}

		ctx = deliverycontext.WithClientCountry(ctx, code)
		ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("country", code)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
