// Package geoip resolves client IP addresses to ISO country codes from a MaxMind database.
package geoip

import (
	"context"
	"log/slog"
	"net"

	"achaperto/config"
	"achaperto/internal/domain/service"
	"achaperto/internal/util"

	"github.com/oschwald/geoip2-golang"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type countryResolver struct {
	reader *geoip2.Reader
}

// Open loads a GeoIP2 or GeoLite2 Country/City database.
func Open(path string) (service.CountryResolver, error) {
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open geoip database %s", path)
	}

	return &countryResolver{reader: reader}, nil
}

// CountryCode returns the ISO 3166-1 code of ip, or "" when the database has no record.
func (r *countryResolver) CountryCode(ip net.IP) (string, error) {
	if ip == nil {
		return "", nil
	}

	record, err := r.reader.Country(ip)
	if err != nil {
		return "", errors.Wrapf(err, "lookup %s", ip)
	}

	return record.Country.IsoCode, nil
}

func (r *countryResolver) Close() error {
	return errors.WithStack(r.reader.Close())
}

// unknownResolver is used when the gate is disabled; every address is unknown.
type unknownResolver struct{}

func (unknownResolver) CountryCode(net.IP) (string, error) { return "", nil }

func (unknownResolver) Close() error { return nil }

// ResolverParams holds dependencies for CountryResolver, injected by Fx
type ResolverParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCountryResolver opens the configured database when the country gate is enabled.
func NewCountryResolver(params ResolverParams) (service.CountryResolver, error) {
	gate := params.Config.CountryGate
	if gate == nil || !gate.Enabled {
		return unknownResolver{}, nil
	}
	if gate.DatabasePath == "" {
		return nil, errors.New("countryGate.databasePath is required when the gate is enabled")
	}

	resolver, err := Open(gate.DatabasePath)
	if err != nil {
		return nil, err
	}

	attrs := []any{
		slog.String("database", gate.DatabasePath),
		slog.Any("allowed", gate.AllowedCountries),
	}
	if fp, err := util.FileFingerprint(gate.DatabasePath); err == nil {
		attrs = append(attrs, slog.String("size", util.FormatBytes(fp.Size)), slog.String("sha256", fp.Short()))
	}
	params.Logger.Info("Country gate enabled", attrs...)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return resolver.Close()
		},
	})

	return resolver, nil
}

// Module provides the CountryResolver
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCountryResolver),
)
