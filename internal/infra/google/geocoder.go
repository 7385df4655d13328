package google

import (
	"context"

	"achaperto/config"
	"achaperto/internal/domain/entity"
	"achaperto/internal/domain/service"

	"github.com/pkg/errors"
	"googlemaps.github.io/maps"
)

// Address component types, most specific first.
var (
	neighborhoodTypes = []string{"sublocality_level_1", "sublocality", "neighborhood"}
	cityTypes         = []string{"locality", "administrative_area_level_2"}
	stateTypes        = []string{"administrative_area_level_1"}
	countryTypes      = []string{"country"}
)

type geocoder struct {
	client   *maps.Client
	language string
	region   string
}

// NewGeocoder creates a Geocoder backed by the Geocoding API.
func NewGeocoder(client *maps.Client, cfg *config.Config) service.Geocoder {
	g := &geocoder{client: client}
	if cfg.Google != nil {
		g.language = cfg.Google.Language
		g.region = cfg.Google.Region
	}

	return g
}

func (g *geocoder) ResolvePosition(ctx context.Context, address string) (*service.GeocodedAddress, error) {
	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  address,
		Region:   g.region,
		Language: g.language,
	})
	if err != nil {
		return nil, errors.Wrap(err, "geocode address")
	}
	if len(results) == 0 {
		return nil, errors.WithStack(service.ErrGeocodeNotFound)
	}

	best := results[0]

	return &service.GeocodedAddress{
		Location: entity.Coordinate{
			Lat: best.Geometry.Location.Lat,
			Lng: best.Geometry.Location.Lng,
		},
		FormattedAddress: best.FormattedAddress,
	}, nil
}

func (g *geocoder) ReverseLookup(ctx context.Context, coord entity.Coordinate) (entity.AddressComponents, error) {
	results, err := g.client.ReverseGeocode(ctx, &maps.GeocodingRequest{
		LatLng:   &maps.LatLng{Lat: coord.Lat, Lng: coord.Lng},
		Language: g.language,
	})
	if err != nil {
		return entity.AddressComponents{}, errors.Wrap(err, "reverse geocode")
	}

	return entity.AddressComponents{
		Neighborhood: findComponent(results, neighborhoodTypes, false),
		City:         findComponent(results, cityTypes, false),
		State:        findComponent(results, stateTypes, true),
		Country:      findComponent(results, countryTypes, true),
	}, nil
}

// findComponent returns the first component, across all results, of the most specific type present.
func findComponent(results []maps.GeocodingResult, types []string, short bool) string {
	for _, wanted := range types {
		for _, result := range results {
			for _, component := range result.AddressComponents {
				if !hasType(component.Types, wanted) {
					continue
				}
				if short {
					return component.ShortName
				}

				return component.LongName
			}
		}
	}

	return ""
}

func hasType(types []string, wanted string) bool {
	for _, t := range types {
		if t == wanted {
			return true
		}
	}

	return false
}
