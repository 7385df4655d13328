package impl

import (
	"context"
	"log/slog"
	"strings"

	"achaperto/internal/domain/entity"
	"achaperto/internal/domain/search"
	"achaperto/internal/domain/service"
)

// enrich turns the selected candidate into the final recommendation.
func (s *searchService) enrich(ctx context.Context, r *resolution) (*entity.ResolutionResult, error) {
	details, err := s.places.PlaceDetails(ctx, r.candidate.ProviderID)
	if err != nil {
		return nil, s.providerFailure(ctx, "place_details", err)
	}

	name := details.Name
	if name == "" {
		name = r.candidate.Name
	}

	location := details.Location
	if location == nil {
		location = r.candidate.Location
	}
	distance := search.FormatKm(search.HaversineKm(r.origin, location))

	reason := s.justify(ctx, service.JustificationInput{
		PlaceName: name,
		Distance:  distance,
		Query:     r.request.Query,
	})

	return entity.NewPlaceResult(entity.PlaceResult{
		Name:         name,
		Address:      details.FormattedAddress,
		Status:       openStatus(details.OpeningHours),
		ClosingTime:  search.ClosingTime(details.OpeningHours, s.now().In(s.zone)),
		Distance:     distance,
		Phone:        details.Phone,
		Reason:       reason,
		Neighborhood: r.position.Neighborhood,
	}), nil
}

// openStatus trusts the open-now search unless details say otherwise.
func openStatus(hours *entity.OpeningHours) string {
	if hours != nil && hours.OpenNow != nil && !*hours.OpenNow {
		return entity.StatusClosedOrOut
	}

	return entity.StatusOpenNow
}

// justify never fails; any generator problem yields the fixed sentence.
func (s *searchService) justify(ctx context.Context, input service.JustificationInput) string {
	if s.justifier == nil {
		return entity.FallbackJustification
	}

	text, err := s.justifier.Justify(ctx, input)
	if err != nil {
		s.log(ctx).Warn("Justification unavailable, using fallback", slog.Any("error", err))

		return entity.FallbackJustification
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return entity.FallbackJustification
	}

	return text
}
