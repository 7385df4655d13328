// Package google adapts the Google Maps geocoding and places web services to the search ports.
package google

import (
	"net/http"

	"achaperto/config"
	"achaperto/internal/infra/metrics"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"googlemaps.github.io/maps"
)

// NewClient builds the Maps client shared by the geocoder and the places provider.
func NewClient(cfg *config.Config) (*maps.Client, error) {
	gcfg := cfg.Google
	if gcfg == nil || gcfg.APIKey == "" {
		return nil, errors.New("google.apiKey is required")
	}

	options := []maps.ClientOption{
		maps.WithAPIKey(gcfg.APIKey),
		maps.WithHTTPClient(&http.Client{Timeout: gcfg.Timeout}),
		maps.WithMetricReporter(metrics.MapsReporter{}),
	}
	if gcfg.BaseURL != "" {
		options = append(options, maps.WithBaseURL(gcfg.BaseURL))
	}

	client, err := maps.NewClient(options...)
	if err != nil {
		return nil, errors.Wrap(err, "create maps client")
	}

	return client, nil
}

// Module provides the Google-backed Geocoder and PlacesProvider
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClient,
		NewGeocoder,
		NewPlacesProvider,
	),
)
