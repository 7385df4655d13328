package service

import (
	"context"

	"achaperto/internal/domain/entity"
)

// NearbyQuery describes one nearby search. Exactly one of Type or Keyword drives the search;
// Type wins when both are set.
type NearbyQuery struct {
	Location       entity.Coordinate
	Type           string
	Keyword        string
	OpenNow        bool
	RankByDistance bool
}

// PlacesProvider wraps the external places service.
type PlacesProvider interface {
	// NearbySearch returns candidates in provider order.
	NearbySearch(ctx context.Context, query NearbyQuery) ([]entity.Candidate, error)

	// PlaceDetails fetches name, address, phone, geometry and opening hours of one place.
	PlaceDetails(ctx context.Context, providerID string) (*entity.PlaceDetails, error)
}
