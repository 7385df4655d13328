package google

import (
	"context"

	"achaperto/config"
	"achaperto/internal/domain/entity"
	"achaperto/internal/domain/service"

	"github.com/pkg/errors"
	"googlemaps.github.io/maps"
)

// defaultRadiusMeters applies when a search is not ranked by distance.
const defaultRadiusMeters = 5000

var detailFields = []maps.PlaceDetailsFieldMask{
	maps.PlaceDetailsFieldMaskName,
	maps.PlaceDetailsFieldMaskFormattedAddress,
	maps.PlaceDetailsFieldMaskFormattedPhoneNumber,
	maps.PlaceDetailsFieldMaskGeometryLocation,
	maps.PlaceDetailsFieldMaskOpeningHours,
}

type placesProvider struct {
	client   *maps.Client
	language string
}

// NewPlacesProvider creates a PlacesProvider backed by the Places API.
func NewPlacesProvider(client *maps.Client, cfg *config.Config) service.PlacesProvider {
	p := &placesProvider{client: client}
	if cfg.Google != nil {
		p.language = cfg.Google.Language
	}

	return p
}

func (p *placesProvider) NearbySearch(ctx context.Context, query service.NearbyQuery) ([]entity.Candidate, error) {
	req := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: query.Location.Lat, Lng: query.Location.Lng},
		Language: p.language,
		OpenNow:  query.OpenNow,
	}

	if query.RankByDistance {
		req.RankBy = maps.RankByDistance
	} else {
		req.Radius = defaultRadiusMeters
	}

	if query.Type != "" {
		placeType, err := maps.ParsePlaceType(query.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "unsupported place type %q", query.Type)
		}
		req.Type = placeType
	} else {
		req.Keyword = query.Keyword
	}

	resp, err := p.client.NearbySearch(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "nearby search")
	}

	candidates := make([]entity.Candidate, 0, len(resp.Results))
	for _, result := range resp.Results {
		candidates = append(candidates, entity.Candidate{
			Name:       result.Name,
			ProviderID: result.PlaceID,
			Types:      result.Types,
			Location:   toCoordinate(result.Geometry.Location),
		})
	}

	return candidates, nil
}

func (p *placesProvider) PlaceDetails(ctx context.Context, providerID string) (*entity.PlaceDetails, error) {
	result, err := p.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID:  providerID,
		Language: p.language,
		Fields:   detailFields,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "place details %s", providerID)
	}

	return &entity.PlaceDetails{
		Name:             result.Name,
		FormattedAddress: result.FormattedAddress,
		Phone:            result.FormattedPhoneNumber,
		Location:         toCoordinate(result.Geometry.Location),
		OpeningHours:     toOpeningHours(result.OpeningHours),
	}, nil
}

// toCoordinate treats the zero location as missing geometry.
func toCoordinate(location maps.LatLng) *entity.Coordinate {
	if location.Lat == 0 && location.Lng == 0 {
		return nil
	}

	return &entity.Coordinate{Lat: location.Lat, Lng: location.Lng}
}

// toOpeningHours maps provider hours; a period without a close time is open around the clock.
func toOpeningHours(hours *maps.OpeningHours) *entity.OpeningHours {
	if hours == nil {
		return nil
	}

	converted := &entity.OpeningHours{
		OpenNow: hours.OpenNow,
		Periods: make([]entity.OpeningPeriod, 0, len(hours.Periods)),
	}

	for _, period := range hours.Periods {
		mapped := entity.OpeningPeriod{
			Open: entity.DayTime{Day: period.Open.Day, Time: period.Open.Time},
		}
		if period.Close.Time != "" {
			mapped.Close = &entity.DayTime{Day: period.Close.Day, Time: period.Close.Time}
		}
		converted.Periods = append(converted.Periods, mapped)
	}

	return converted
}
