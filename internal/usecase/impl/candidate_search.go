package impl

import (
	"context"
	"log/slog"

	"achaperto/internal/domain/entity"
	"achaperto/internal/domain/search"
	"achaperto/internal/domain/service"
)

// nearbyQuery builds an open-now search ranked by distance. Requests with a known provider
// type are searched by type, everything else by keyword.
func nearbyQuery(origin entity.Coordinate, category search.Category, query string) service.NearbyQuery {
	nearby := service.NearbyQuery{
		Location:       origin,
		OpenNow:        true,
		RankByDistance: true,
	}

	if providerType := search.MapToProviderType(query); providerType != "" {
		nearby.Type = providerType
	} else {
		nearby.Keyword = search.SearchKeyword(category, query)
	}

	return nearby
}

// searchCandidates queries the places provider, drops noise and orders the rest by distance.
func (s *searchService) searchCandidates(ctx context.Context, r *resolution) ([]entity.Candidate, error) {
	query := nearbyQuery(r.origin, r.category, r.request.Query)

	candidates, err := s.places.NearbySearch(ctx, query)
	if err != nil {
		return nil, s.providerFailure(ctx, "nearby_search", err)
	}

	kept := s.catalog.Noise.Apply(r.category, candidates)
	s.log(ctx).Debug("Nearby candidates",
		slog.String("type", query.Type),
		slog.String("keyword", query.Keyword),
		slog.Int("found", len(candidates)),
		slog.Int("kept", len(kept)),
	)

	return search.SortByDistance(r.origin, kept), nil
}
